package directory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhorizon/shared/go/models"
)

func sampleArtists() []models.Artist {
	return []models.Artist{
		{ID: 1, Name: "The Midnight Sparrows", Type: models.ArtistTypeMusician, Genre: "Indie Rock"},
		{ID: 2, Name: "Vera Okafor", Type: models.ArtistTypeVisual},
		{ID: 3, Name: "Danny Uptown", Type: models.ArtistTypeComedian},
		{ID: 4, Name: "Glass Harbor", Type: models.ArtistTypeMusician, Genre: "Jazz"},
		{ID: 5, Name: "Rosa Maldonado", Type: models.ArtistTypeAuthor},
		{ID: 6, Name: "Night Sparrow Trio", Type: models.ArtistTypeMusician, Genre: "Jazz"},
	}
}

func artistIDs(artists []models.Artist) []int64 {
	ids := make([]int64, 0, len(artists))
	for _, a := range artists {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestFilterArtistsComposesWithAND(t *testing.T) {
	artists := sampleArtists()

	got := FilterArtists(artists, ArtistFilter{Search: "sparrow", Type: "Band", Genre: "Jazz"})
	assert.Equal(t, []int64{6}, artistIDs(got))
}

func TestFilterArtistsNeutralFilterKeepsEverything(t *testing.T) {
	artists := sampleArtists()

	got := FilterArtists(artists, ArtistFilter{Type: FilterAll, Genre: FilterAll})
	assert.Equal(t, artistIDs(artists), artistIDs(got), "order must be preserved")
}

func TestFilterArtistsByTypeLabel(t *testing.T) {
	artists := sampleArtists()

	tests := []struct {
		label string
		want  []int64
	}{
		{"Band", []int64{1, 4, 6}},
		{"Visual", []int64{2}},
		{"Performance", []int64{3}},
		{"Literature", []int64{5}},
	}

	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			got := FilterArtists(artists, ArtistFilter{Type: tc.label})
			assert.Equal(t, tc.want, artistIDs(got))
		})
	}
}

func TestFilterArtistsGenreOnlyAppliesToBands(t *testing.T) {
	artists := sampleArtists()

	// Genre is a Band-only facet; under any other type it is inert.
	got := FilterArtists(artists, ArtistFilter{Type: "Visual", Genre: "Jazz"})
	assert.Equal(t, []int64{2}, artistIDs(got))
}

func TestFilterArtistsSearchIsCaseInsensitive(t *testing.T) {
	artists := sampleArtists()

	got := FilterArtists(artists, ArtistFilter{Search: "GLASS"})
	assert.Equal(t, []int64{4}, artistIDs(got))
}

func TestWithTypeResetsGenre(t *testing.T) {
	f := ArtistFilter{Search: "x", Type: "Band", Genre: "Jazz"}

	got := f.WithType("Visual")

	assert.Equal(t, "Visual", got.Type)
	assert.Equal(t, FilterAll, got.Genre, "changing type must reset genre in the same transition")
	assert.Equal(t, "x", got.Search)
}

func TestAvailableGenres(t *testing.T) {
	genres := AvailableGenres(sampleArtists())

	// "All" first, then distinct Band genres in first-seen order.
	assert.Equal(t, []string{FilterAll, "Indie Rock", "Jazz"}, genres)
}

func TestAvailableGenresIgnoresNonBandGenres(t *testing.T) {
	artists := []models.Artist{
		{Name: "A", Type: models.ArtistTypeVisual, Genre: "Abstract"},
		{Name: "B", Type: models.ArtistTypeMusician, Genre: ""},
	}

	assert.Equal(t, []string{FilterAll}, AvailableGenres(artists))
}

func sampleEvents() []models.Event {
	return []models.Event{
		{ID: 1, Title: "Rooftop Sessions Vol. 3", Description: "Indie rock above the city.", Type: "Concert", Tags: []string{"live music", "rooftop", "indie"}, StartDate: "2026-09-12"},
		{ID: 2, Title: "Found Light: Opening Night", Description: "Opening reception.", Type: "Exhibition", Tags: []string{"art", "gallery"}, StartDate: "2026-09-05"},
		{ID: 3, Title: "Basement Laughs", Description: "Stand-up showcase.", Type: "Comedy", Tags: []string{"comedy", "stand-up"}, StartDate: "2026-09-19"},
		{ID: 4, Title: "Harbor Nights", Description: "Late jazz sets.", Type: "Concert", Tags: []string{"jazz", "late night", "live music"}, StartDate: "2026-10-02"},
	}
}

func eventIDs(events []models.Event) []int64 {
	ids := make([]int64, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestFilterEventsByType(t *testing.T) {
	got := FilterEvents(sampleEvents(), EventFilter{Type: "Concert"})
	assert.Equal(t, []int64{1, 4}, eventIDs(got))
}

func TestFilterEventsTagsRequireEveryActiveTag(t *testing.T) {
	events := sampleEvents()

	got := FilterEvents(events, EventFilter{ActiveTags: []string{"live music"}})
	assert.Equal(t, []int64{1, 4}, eventIDs(got))

	got = FilterEvents(events, EventFilter{ActiveTags: []string{"live music", "jazz"}})
	assert.Equal(t, []int64{4}, eventIDs(got))

	got = FilterEvents(events, EventFilter{ActiveTags: []string{"live music", "comedy"}})
	assert.Empty(t, got)
}

func TestFilterEventsSearchMatchesTitleOrDescription(t *testing.T) {
	events := sampleEvents()

	got := FilterEvents(events, EventFilter{Search: "jazz"})
	assert.Equal(t, []int64{4}, eventIDs(got))

	got = FilterEvents(events, EventFilter{Search: "reception"})
	assert.Equal(t, []int64{2}, eventIDs(got))
}

func TestToggleTag(t *testing.T) {
	active := []string{"jazz", "rooftop"}

	added := ToggleTag(active, "indie")
	assert.Equal(t, []string{"jazz", "rooftop", "indie"}, added)

	removed := ToggleTag(active, "jazz")
	assert.Equal(t, []string{"rooftop"}, removed)

	cleared := ToggleTag(active, FilterAll)
	assert.Nil(t, cleared)

	// The input slice is never mutated.
	assert.Equal(t, []string{"jazz", "rooftop"}, active)
}

func TestUpcomingEventsFiltersAndSorts(t *testing.T) {
	ref := time.Date(2026, time.September, 10, 12, 0, 0, 0, time.UTC)
	events := []models.Event{
		{ID: 1, StartDate: "2026-10-02"},
		{ID: 2, StartDate: "2026-09-05"}, // past
		{ID: 3, StartDate: "2026-09-12"},
		{ID: 4, StartDate: ""}, // unparseable, never upcoming
		{ID: 5, StartDate: "2026-09-12"},
	}

	got := UpcomingEvents(events, ref)

	require.Len(t, got, 3)
	// Ascending by date, stable for equal dates.
	assert.Equal(t, []int64{3, 5, 1}, eventIDs(got))
}

func TestUpcomingCount(t *testing.T) {
	ref := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
	events := []models.Event{
		{StartDate: "2026-09-10"},
		{StartDate: "2026-09-09"},
		{StartDate: "2026-11-01"},
		{StartDate: "not a date"},
	}

	assert.Equal(t, 2, UpcomingCount(events, ref))
}
