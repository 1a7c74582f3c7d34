package store

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var artistRowColumns = []string{
	"id", "slug", "name", "type", "genre", "bio",
	"profile_image", "gallery", "youtube_links", "created_at",
}

func TestArtistBySlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE a.slug = $1`)).
		WithArgs("the-midnight-sparrows").
		WillReturnRows(sqlmock.NewRows(artistRowColumns).
			AddRow(int64(1), "the-midnight-sparrows", "The Midnight Sparrows", "Musician / Band",
				"Indie Rock", "Four-piece indie rock outfit.", "/img/a.jpg",
				[]byte(`{"/img/g1.jpg","/img/g2.jpg"}`), []byte(`{}`), created))

	mock.ExpectQuery(regexp.QuoteMeta(`FROM artist_events ae`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(eventRowColumns).
			AddRow(int64(9), "rooftop", "Rooftop Sessions", "desc", "Concert",
				`["indie"]`, `"The Gardner Roof"`,
				"2026-09-12", "", "19:30", "", "$15", "/img/e.jpg", true, created))

	artist, err := s.ArtistBySlug(context.Background(), "the-midnight-sparrows")
	if err != nil {
		t.Fatalf("ArtistBySlug error: %v", err)
	}
	if artist.Name != "The Midnight Sparrows" || artist.Genre != "Indie Rock" {
		t.Fatalf("unexpected artist: %+v", artist)
	}
	if !reflect.DeepEqual(artist.Gallery, []string{"/img/g1.jpg", "/img/g2.jpg"}) {
		t.Fatalf("unexpected gallery: %#v", artist.Gallery)
	}
	if len(artist.Events) != 1 || artist.Events[0].Slug != "rooftop" {
		t.Fatalf("expected linked events attached, got %+v", artist.Events)
	}
}

func TestArtistBySlugNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE a.slug = $1`)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(artistRowColumns))

	if _, err := s.ArtistBySlug(context.Background(), "missing"); !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}
}

func TestArtistIDBySlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id
		FROM artists
		WHERE slug = $1
	`)).
		WithArgs("glass-harbor").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	id, err := s.ArtistIDBySlug(context.Background(), "glass-harbor")
	if err != nil {
		t.Fatalf("ArtistIDBySlug error: %v", err)
	}
	if id != 4 {
		t.Fatalf("expected id 4, got %d", id)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id`)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := s.ArtistIDBySlug(context.Background(), "missing"); !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}
}

func TestRandomArtistsPassesLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY random()`)).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows(artistRowColumns))

	if _, err := s.RandomArtists(context.Background(), 4); err != nil {
		t.Fatalf("RandomArtists error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
