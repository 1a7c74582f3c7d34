package reviews

import (
	"context"

	"eventhorizon/shared/go/models"
)

// Store defines persistence operations required for review workflows.
type Store interface {
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	ReviewsByArtist(ctx context.Context, artistID int64) ([]models.Review, error)
	LatestReviews(ctx context.Context, limit int) ([]models.Review, error)
}

// Service coordinates review submission and listing.
type Service interface {
	Create(ctx context.Context, userID int64, author string, artistID int64, rating int, text string) (models.Review, error)
	ByArtist(ctx context.Context, artistID int64) ([]models.Review, error)
	Latest(ctx context.Context, limit int) ([]models.Review, error)
}

type service struct {
	store Store
}

// New constructs a reviews Service backed by the given store.
func New(st Store) Service {
	return &service{store: st}
}

func (s *service) Create(ctx context.Context, userID int64, author string, artistID int64, rating int, text string) (models.Review, error) {
	if err := ctx.Err(); err != nil {
		return models.Review{}, err
	}
	return s.store.CreateReview(ctx, models.Review{
		ArtistID: artistID,
		UserID:   userID,
		Rating:   rating,
		Review:   text,
		Author:   author,
	})
}

func (s *service) ByArtist(ctx context.Context, artistID int64) ([]models.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ReviewsByArtist(ctx, artistID)
}

func (s *service) Latest(ctx context.Context, limit int) ([]models.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.LatestReviews(ctx, limit)
}
