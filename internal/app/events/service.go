package events

import (
	"context"

	"eventhorizon/internal/directory"
	"eventhorizon/shared/go/models"
)

// Store defines persistence operations required for event workflows.
type Store interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	EventBySlug(ctx context.Context, slug string) (*models.Event, error)
	FeaturedEvents(ctx context.Context, limit int) ([]models.Event, error)
}

// Service provides event-centric operations.
type Service interface {
	Directory(ctx context.Context, filter directory.EventFilter) ([]models.Event, error)
	BySlug(ctx context.Context, slug string) (*models.Event, error)
	Featured(ctx context.Context, limit int) ([]models.Event, error)
}

type service struct {
	store Store
}

// New constructs an event Service backed by the given store.
func New(st Store) Service {
	return &service{store: st}
}

func (s *service) Directory(ctx context.Context, filter directory.EventFilter) ([]models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all, err := s.store.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	return directory.FilterEvents(all, filter), nil
}

func (s *service) BySlug(ctx context.Context, slug string) (*models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.EventBySlug(ctx, slug)
}

func (s *service) Featured(ctx context.Context, limit int) ([]models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.FeaturedEvents(ctx, limit)
}
