package follows

import (
	"context"
	"errors"

	"eventhorizon/internal/store"
	"eventhorizon/internal/toggle"
)

// Store defines persistence operations required for follow workflows.
type Store interface {
	FollowArtist(ctx context.Context, userID, artistID int64) error
	UnfollowArtist(ctx context.Context, userID, artistID int64) error
	IsFollowing(ctx context.Context, userID, artistID int64) (bool, error)
}

// Service coordinates follow toggles and status checks.
type Service interface {
	// Toggle flips the follow state and returns the resulting state.
	// A second toggle for the same (user, artist) pair while one is in
	// flight fails with toggle.ErrInFlight.
	Toggle(ctx context.Context, userID, artistID int64) (bool, error)
	Status(ctx context.Context, userID, artistID int64) (bool, error)
}

type service struct {
	store Store
	guard *toggle.Guard
}

// New constructs a follows Service backed by the given store.
func New(st Store) Service {
	return &service{store: st, guard: toggle.NewGuard()}
}

func (s *service) Toggle(ctx context.Context, userID, artistID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var following bool
	err := s.guard.Do(toggle.Key("follow", userID, artistID), func() error {
		current, err := s.store.IsFollowing(ctx, userID, artistID)
		if err != nil {
			return err
		}
		if current {
			err = s.store.UnfollowArtist(ctx, userID, artistID)
			// A row already gone means some other session got there
			// first; the desired end state holds either way.
			if err != nil && !errors.Is(err, store.ErrNotFollowing) {
				return err
			}
			following = false
			return nil
		}
		err = s.store.FollowArtist(ctx, userID, artistID)
		if err != nil && !errors.Is(err, store.ErrAlreadyFollowing) {
			return err
		}
		following = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return following, nil
}

func (s *service) Status(ctx context.Context, userID, artistID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.store.IsFollowing(ctx, userID, artistID)
}
