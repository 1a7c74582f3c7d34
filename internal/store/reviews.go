package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventhorizon/shared/go/models"
)

// ErrInvalidReview indicates validation failure for review data.
var ErrInvalidReview = errors.New("invalid review")

func validateReview(review models.Review) error {
	if review.ArtistID == 0 {
		return fmt.Errorf("%w: artist is required", ErrInvalidReview)
	}
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidReview)
	}
	if strings.TrimSpace(review.Review) == "" {
		return fmt.Errorf("%w: review text is required", ErrInvalidReview)
	}
	return nil
}

// CreateReview inserts a review. Reviews are immutable once created; no
// update or delete path exists.
func (s *Store) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	if err := validateReview(review); err != nil {
		return models.Review{}, err
	}

	review.Review = strings.TrimSpace(review.Review)
	review.Author = strings.TrimSpace(review.Author)

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO reviews (artist_id, user_id, rating, review, author)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, review.ArtistID, review.UserID, review.Rating, review.Review, review.Author).
		Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return models.Review{}, fmt.Errorf("insert review: %w", err)
	}

	return review, nil
}

const reviewColumns = `
	r.id, r.artist_id, r.user_id, r.rating, r.review, r.author, r.created_at,
	a.id, a.slug, a.name, a.type, a.profile_image
`

// ReviewsByArtist lists an artist's reviews, newest first.
func (s *Store) ReviewsByArtist(ctx context.Context, artistID int64) ([]models.Review, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+reviewColumns+`
		FROM reviews r
		JOIN artists a ON a.id = r.artist_id
		WHERE r.artist_id = $1
		ORDER BY r.created_at DESC
	`, artistID)
	if err != nil {
		return nil, fmt.Errorf("select artist reviews: %w", err)
	}
	defer rows.Close()

	return scanReviewRows(rows)
}

// ReviewsByUser lists the reviews a user wrote, newest first.
func (s *Store) ReviewsByUser(ctx context.Context, userID int64) ([]models.Review, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+reviewColumns+`
		FROM reviews r
		JOIN artists a ON a.id = r.artist_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select user reviews: %w", err)
	}
	defer rows.Close()

	return scanReviewRows(rows)
}

// LatestReviews returns the newest reviews across all artists for the
// home page.
func (s *Store) LatestReviews(ctx context.Context, limit int) ([]models.Review, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+reviewColumns+`
		FROM reviews r
		JOIN artists a ON a.id = r.artist_id
		ORDER BY r.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("select latest reviews: %w", err)
	}
	defer rows.Close()

	return scanReviewRows(rows)
}

func scanReviewRows(rows *sql.Rows) ([]models.Review, error) {
	var reviews []models.Review
	for rows.Next() {
		var (
			review       models.Review
			artist       models.ArtistRef
			profileImage sql.NullString
		)
		err := rows.Scan(
			&review.ID, &review.ArtistID, &review.UserID, &review.Rating,
			&review.Review, &review.Author, &review.CreatedAt,
			&artist.ID, &artist.Slug, &artist.Name, &artist.Type, &profileImage,
		)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		artist.ProfileImage = profileImage.String
		review.Artist = &artist
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return reviews, nil
}
