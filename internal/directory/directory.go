// Package directory implements the filtering and faceting behind the
// artist and event directory pages. Everything here is a pure function of
// (data, filter state): no hidden state, safe to re-run on every change,
// and filters never re-order their input.
package directory

import (
	"sort"
	"strings"
	"time"

	"eventhorizon/internal/normalize"
	"eventhorizon/shared/go/models"
)

// FilterAll is the neutral value for every selector.
const FilterAll = "All"

// artistTypeByLabel maps the display labels the filter bar shows to the
// stored artist types.
var artistTypeByLabel = map[string]models.ArtistType{
	"Band":        models.ArtistTypeMusician,
	"Visual":      models.ArtistTypeVisual,
	"Performance": models.ArtistTypeComedian,
	"Literature":  models.ArtistTypeAuthor,
}

// ArtistTypeLabels lists the selectable type labels in display order.
var ArtistTypeLabels = []string{FilterAll, "Band", "Visual", "Performance", "Literature"}

// ArtistFilter is the filter state of the artist directory.
type ArtistFilter struct {
	Search string
	Type   string // display label, e.g. "Band"
	Genre  string
}

// WithType returns the filter with the type selector changed. Moving the
// type selector always resets the genre selector in the same transition;
// otherwise a stale genre could silently hide every result.
func (f ArtistFilter) WithType(label string) ArtistFilter {
	f.Type = label
	f.Genre = FilterAll
	return f
}

// FilterArtists returns the artists visible under f, preserving input
// order. The individual filters compose as a logical AND.
func FilterArtists(artists []models.Artist, f ArtistFilter) []models.Artist {
	storedType, restrict := artistTypeByLabel[f.Type]
	search := strings.ToLower(f.Search)

	out := make([]models.Artist, 0, len(artists))
	for _, artist := range artists {
		if restrict && artist.Type != storedType {
			continue
		}
		if f.Type == "Band" && f.Genre != "" && f.Genre != FilterAll && artist.Genre != f.Genre {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(artist.Name), search) {
			continue
		}
		out = append(out, artist)
	}
	return out
}

// AvailableGenres derives the genre facet from the current data: "All"
// followed by the distinct genres of Musician / Band artists, in
// first-seen order.
func AvailableGenres(artists []models.Artist) []string {
	genres := []string{FilterAll}
	seen := make(map[string]struct{})
	for _, artist := range artists {
		if artist.Type != models.ArtistTypeMusician || artist.Genre == "" {
			continue
		}
		if _, ok := seen[artist.Genre]; ok {
			continue
		}
		seen[artist.Genre] = struct{}{}
		genres = append(genres, artist.Genre)
	}
	return genres
}

// EventFilter is the filter state of the event directory.
type EventFilter struct {
	Search     string
	Type       string
	ActiveTags []string
}

// FilterEvents returns the events visible under f, preserving input
// order. Selected tags combine with AND semantics: an event must carry
// every active tag.
func FilterEvents(events []models.Event, f EventFilter) []models.Event {
	search := strings.ToLower(f.Search)

	out := make([]models.Event, 0, len(events))
	for _, event := range events {
		if f.Type != "" && f.Type != FilterAll && event.Type != f.Type {
			continue
		}
		if !hasAllTags(event.Tags, f.ActiveTags) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(event.Title), search) &&
			!strings.Contains(strings.ToLower(event.Description), search) {
			continue
		}
		out = append(out, event)
	}
	return out
}

// ToggleTag applies one tag click to the active set: "All" clears the
// selection, anything else toggles membership. The input slice is not
// mutated.
func ToggleTag(active []string, tag string) []string {
	if tag == FilterAll {
		return nil
	}
	out := make([]string, 0, len(active)+1)
	found := false
	for _, t := range active {
		if t == tag {
			found = true
			continue
		}
		out = append(out, t)
	}
	if !found {
		out = append(out, tag)
	}
	return out
}

// UpcomingEvents filters events down to those starting on or after ref's
// calendar date and sorts them ascending by start date. The sort is
// stable: events sharing a date keep their relative order.
func UpcomingEvents(events []models.Event, ref time.Time) []models.Event {
	upcoming := make([]models.Event, 0, len(events))
	for _, event := range events {
		if normalize.IsUpcoming(event.StartDate, ref) {
			upcoming = append(upcoming, event)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		a, _ := normalize.ParseDate(upcoming[i].StartDate)
		b, _ := normalize.ParseDate(upcoming[j].StartDate)
		return a.Before(b)
	})
	return upcoming
}

// UpcomingCount is the derived per-artist badge count. It is always
// computed from the event list, never cached on the artist.
func UpcomingCount(events []models.Event, ref time.Time) int {
	n := 0
	for _, event := range events {
		if normalize.IsUpcoming(event.StartDate, ref) {
			n++
		}
	}
	return n
}

func hasAllTags(tags, wanted []string) bool {
	for _, w := range wanted {
		found := false
		for _, t := range tags {
			if t == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
