package store

import (
	"context"
	"errors"
	"fmt"

	"eventhorizon/shared/go/models"
)

var (
	// ErrAlreadyFollowing signals the follow row already exists.
	ErrAlreadyFollowing = errors.New("already following artist")
	// ErrNotFollowing signals there was no follow row to remove.
	ErrNotFollowing = errors.New("not following artist")
)

// FollowArtist inserts a user-follows-artist join row.
func (s *Store) FollowArtist(ctx context.Context, userID, artistID int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_followed_artists (user_id, artist_id)
		VALUES ($1, $2)
	`, userID, artistID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyFollowing
		}
		// userID comes from a verified token, so a failed reference
		// means the artist row is missing.
		if isForeignKeyViolation(err) {
			return ErrArtistNotFound
		}
		return fmt.Errorf("insert follow: %w", err)
	}
	return nil
}

// UnfollowArtist removes a follow row.
func (s *Store) UnfollowArtist(ctx context.Context, userID, artistID int64) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM user_followed_artists
		WHERE user_id = $1 AND artist_id = $2
	`, userID, artistID)
	if err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFollowing
	}
	return nil
}

// IsFollowing reports whether the user follows the artist.
func (s *Store) IsFollowing(ctx context.Context, userID, artistID int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM user_followed_artists
			WHERE user_id = $1 AND artist_id = $2
		)
	`, userID, artistID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check follow: %w", err)
	}
	return exists, nil
}

// FollowedArtists returns the artists a user follows, newest follow first.
func (s *Store) FollowedArtists(ctx context.Context, userID int64) ([]models.Artist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+artistColumns+`
		FROM user_followed_artists f
		JOIN artists a ON a.id = f.artist_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select followed artists: %w", err)
	}
	defer rows.Close()

	artists, err := scanArtistRows(rows)
	if err != nil {
		return nil, err
	}

	for i := range artists {
		events, err := s.EventsForArtist(ctx, artists[i].ID)
		if err != nil {
			return nil, err
		}
		artists[i].Events = events
	}

	return artists, nil
}
