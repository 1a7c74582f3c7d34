package favorites

import (
	"context"
	"errors"

	"eventhorizon/internal/store"
	"eventhorizon/internal/toggle"
)

// Store defines persistence operations required for favorite workflows.
type Store interface {
	FavoriteEvent(ctx context.Context, userID, eventID int64) error
	UnfavoriteEvent(ctx context.Context, userID, eventID int64) error
	IsFavorited(ctx context.Context, userID, eventID int64) (bool, error)
}

// Service coordinates favorite toggles and status checks.
type Service interface {
	Toggle(ctx context.Context, userID, eventID int64) (bool, error)
	Status(ctx context.Context, userID, eventID int64) (bool, error)
}

type service struct {
	store Store
	guard *toggle.Guard
}

// New constructs a favorites Service backed by the given store.
func New(st Store) Service {
	return &service{store: st, guard: toggle.NewGuard()}
}

func (s *service) Toggle(ctx context.Context, userID, eventID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var favorited bool
	err := s.guard.Do(toggle.Key("favorite", userID, eventID), func() error {
		current, err := s.store.IsFavorited(ctx, userID, eventID)
		if err != nil {
			return err
		}
		if current {
			err = s.store.UnfavoriteEvent(ctx, userID, eventID)
			if err != nil && !errors.Is(err, store.ErrNotFavorited) {
				return err
			}
			favorited = false
			return nil
		}
		err = s.store.FavoriteEvent(ctx, userID, eventID)
		if err != nil && !errors.Is(err, store.ErrAlreadyFavorited) {
			return err
		}
		favorited = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return favorited, nil
}

func (s *service) Status(ctx context.Context, userID, eventID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.store.IsFavorited(ctx, userID, eventID)
}
