package dashboard

import (
	"context"
	"time"

	"eventhorizon/internal/directory"
	"eventhorizon/shared/go/models"
)

// Store defines persistence operations required to build a dashboard.
type Store interface {
	FollowedArtists(ctx context.Context, userID int64) ([]models.Artist, error)
	FavoritedEvents(ctx context.Context, userID int64) ([]models.Event, error)
	ReviewsByUser(ctx context.Context, userID int64) ([]models.Review, error)
}

// FollowedArtist is a followed artist plus its derived upcoming count.
type FollowedArtist struct {
	models.Artist
	UpcomingEvents int `json:"upcoming_events"`
}

// Overview aggregates everything the dashboard shows for one user.
type Overview struct {
	FollowedArtists []FollowedArtist `json:"followed_artists"`
	FavoritedEvents []models.Event   `json:"favorited_events"`
	Reviews         []models.Review  `json:"reviews"`
}

// Service assembles the per-user dashboard.
type Service interface {
	Overview(ctx context.Context, userID int64, now time.Time) (Overview, error)
}

type service struct {
	store Store
}

// New constructs a dashboard Service backed by the given store.
func New(st Store) Service {
	return &service{store: st}
}

func (s *service) Overview(ctx context.Context, userID int64, now time.Time) (Overview, error) {
	if err := ctx.Err(); err != nil {
		return Overview{}, err
	}

	artists, err := s.store.FollowedArtists(ctx, userID)
	if err != nil {
		return Overview{}, err
	}
	followed := make([]FollowedArtist, 0, len(artists))
	for _, artist := range artists {
		followed = append(followed, FollowedArtist{
			Artist:         artist,
			UpcomingEvents: directory.UpcomingCount(artist.Events, now),
		})
	}

	events, err := s.store.FavoritedEvents(ctx, userID)
	if err != nil {
		return Overview{}, err
	}

	reviews, err := s.store.ReviewsByUser(ctx, userID)
	if err != nil {
		return Overview{}, err
	}

	return Overview{
		FollowedArtists: followed,
		FavoritedEvents: events,
		Reviews:         reviews,
	}, nil
}
