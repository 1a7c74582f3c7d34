package store

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"eventhorizon/shared/go/models"
)

var eventRowColumns = []string{
	"id", "slug", "title", "description", "type", "tags", "venue",
	"start_date", "end_date", "start_time", "end_time",
	"cost", "hero_image", "star", "created_at",
}

// ListEvents must hand every stored encoding of tags and venue to callers
// already normalized; nothing downstream re-parses the raw columns.
func TestListEventsNormalizesMixedEncodings(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(eventRowColumns).
		AddRow(int64(1), "rooftop", "Rooftop Sessions", "desc", "Concert",
			`["live music","rooftop"]`, `{"name":"The Gardner Roof","city":"Riverton"}`,
			"2026-09-12", "", "19:30", "23:00", "$15", "/img/1.jpg", true, created).
		AddRow(int64(2), "found-light", "Found Light", "desc", "Exhibition",
			"art, gallery, opening night", `"Corner Gallery"`,
			"2026-09-05", "2026-10-03", "18:00", "", "Free", "/img/2.jpg", true, created).
		AddRow(int64(3), "open-verse", "Open Verse", "desc", "Reading",
			`"[\"poetry\",\"open mic\"]"`, "",
			"2026-09-26", "", "18:30", "", "Free", "/img/3.jpg", false, created).
		AddRow(int64(4), "basement", "Basement Laughs", "desc", "Comedy",
			nil, "The Cellar Door",
			"2026-09-19", "", "20:00", "22:30", "$10", "/img/4.jpg", false, created)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM events e`)).WillReturnRows(rows)

	events, err := s.ListEvents(context.Background())
	if err != nil {
		t.Fatalf("ListEvents error: %v", err)
	}
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}

	wantTags := [][]string{
		{"live music", "rooftop"},
		{"art", "gallery", "opening night"},
		{"poetry", "open mic"},
		{},
	}
	wantVenues := []models.Venue{
		{Name: "The Gardner Roof", City: "Riverton"},
		{Name: "Corner Gallery"},
		{Name: models.VenueTBA},
		{Name: "The Cellar Door"},
	}

	for i, event := range events {
		if !reflect.DeepEqual(event.Tags, wantTags[i]) {
			t.Errorf("event %d tags = %#v, want %#v", event.ID, event.Tags, wantTags[i])
		}
		if event.Venue != wantVenues[i] {
			t.Errorf("event %d venue = %+v, want %+v", event.ID, event.Venue, wantVenues[i])
		}
	}
}

func TestFeaturedEventsPassesLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE e.star = TRUE`)).
		WithArgs(6).
		WillReturnRows(sqlmock.NewRows(eventRowColumns))

	events, err := s.FeaturedEvents(context.Background(), 6)
	if err != nil {
		t.Fatalf("FeaturedEvents error: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEventBySlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE e.slug = $1`)).
		WithArgs("rooftop").
		WillReturnRows(sqlmock.NewRows(eventRowColumns).
			AddRow(int64(1), "rooftop", "Rooftop Sessions", "desc", "Concert",
				`["indie"]`, `"The Gardner Roof"`,
				"2026-09-12", "", "19:30", "23:00", "$15", "/img/1.jpg", true, created))

	mock.ExpectQuery(regexp.QuoteMeta(`FROM artist_events ae`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "name", "type", "profile_image"}).
			AddRow(int64(5), "the-midnight-sparrows", "The Midnight Sparrows", "Musician / Band", "/img/a.jpg"))

	event, err := s.EventBySlug(context.Background(), "rooftop")
	if err != nil {
		t.Fatalf("EventBySlug error: %v", err)
	}
	if event.Slug != "rooftop" {
		t.Fatalf("unexpected event: %+v", event)
	}
	if len(event.Artists) != 1 || event.Artists[0].Name != "The Midnight Sparrows" {
		t.Fatalf("unexpected artists: %+v", event.Artists)
	}
}

func TestEventBySlugNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE e.slug = $1`)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(eventRowColumns))

	if _, err := s.EventBySlug(context.Background(), "missing"); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}
