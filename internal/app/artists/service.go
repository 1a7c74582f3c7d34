package artists

import (
	"context"
	"time"

	"eventhorizon/internal/directory"
	"eventhorizon/shared/go/models"
)

// Store defines persistence operations required for artist workflows.
type Store interface {
	ListArtists(ctx context.Context) ([]models.Artist, error)
	ArtistBySlug(ctx context.Context, slug string) (*models.Artist, error)
	ArtistIDBySlug(ctx context.Context, slug string) (int64, error)
	RandomArtists(ctx context.Context, limit int) ([]models.Artist, error)
}

// DirectoryEntry is an artist plus its derived upcoming-event count. The
// count is computed per request and never persisted.
type DirectoryEntry struct {
	models.Artist
	UpcomingEvents int `json:"upcoming_events"`
}

// DirectoryPage is the full payload of the artist directory: the visible
// artists and the genre facet derived from the complete data set.
type DirectoryPage struct {
	Artists []DirectoryEntry `json:"artists"`
	Genres  []string         `json:"genres"`
}

// Service provides artist-centric operations.
type Service interface {
	Directory(ctx context.Context, filter directory.ArtistFilter, now time.Time) (DirectoryPage, error)
	BySlug(ctx context.Context, slug string, now time.Time) (*models.Artist, error)
	// IDBySlug is the cheap lookup for callers that only need the id,
	// such as review reads and writes.
	IDBySlug(ctx context.Context, slug string) (int64, error)
	Random(ctx context.Context, limit int) ([]models.Artist, error)
}

type service struct {
	store Store
}

// New constructs an artist Service backed by the given store.
func New(st Store) Service {
	return &service{store: st}
}

func (s *service) Directory(ctx context.Context, filter directory.ArtistFilter, now time.Time) (DirectoryPage, error) {
	if err := ctx.Err(); err != nil {
		return DirectoryPage{}, err
	}

	all, err := s.store.ListArtists(ctx)
	if err != nil {
		return DirectoryPage{}, err
	}

	// The genre facet comes from the full data set, not the filtered
	// view, so narrowing by genre never empties its own control.
	genres := directory.AvailableGenres(all)

	visible := directory.FilterArtists(all, filter)
	entries := make([]DirectoryEntry, 0, len(visible))
	for _, artist := range visible {
		entries = append(entries, DirectoryEntry{
			Artist:         artist,
			UpcomingEvents: directory.UpcomingCount(artist.Events, now),
		})
	}

	return DirectoryPage{Artists: entries, Genres: genres}, nil
}

func (s *service) BySlug(ctx context.Context, slug string, now time.Time) (*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	artist, err := s.store.ArtistBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// Detail pages only show what is still ahead.
	artist.Events = directory.UpcomingEvents(artist.Events, now)

	return artist, nil
}

func (s *service) IDBySlug(ctx context.Context, slug string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.store.ArtistIDBySlug(ctx, slug)
}

func (s *service) Random(ctx context.Context, limit int) ([]models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.RandomArtists(ctx, limit)
}
