package store

import (
	"context"
	"errors"
	"fmt"

	"eventhorizon/shared/go/models"
)

var (
	// ErrAlreadyFavorited signals the favorite row already exists.
	ErrAlreadyFavorited = errors.New("event already favorited")
	// ErrNotFavorited signals there was no favorite row to remove.
	ErrNotFavorited = errors.New("event not favorited")
)

// FavoriteEvent inserts a user-favorites-event join row.
func (s *Store) FavoriteEvent(ctx context.Context, userID, eventID int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_favorited_events (user_id, event_id)
		VALUES ($1, $2)
	`, userID, eventID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyFavorited
		}
		// userID comes from a verified token, so a failed reference
		// means the event row is missing.
		if isForeignKeyViolation(err) {
			return ErrEventNotFound
		}
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

// UnfavoriteEvent removes a favorite row.
func (s *Store) UnfavoriteEvent(ctx context.Context, userID, eventID int64) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM user_favorited_events
		WHERE user_id = $1 AND event_id = $2
	`, userID, eventID)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFavorited
	}
	return nil
}

// IsFavorited reports whether the user favorited the event.
func (s *Store) IsFavorited(ctx context.Context, userID, eventID int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM user_favorited_events
			WHERE user_id = $1 AND event_id = $2
		)
	`, userID, eventID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return exists, nil
}

// FavoritedEvents returns the events a user favorited, newest first.
func (s *Store) FavoritedEvents(ctx context.Context, userID int64) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM user_favorited_events f
		JOIN events e ON e.id = f.event_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select favorited events: %w", err)
	}
	defer rows.Close()

	return scanEventRows(rows)
}
