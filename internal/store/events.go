package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventhorizon/internal/normalize"
	"eventhorizon/shared/go/models"
)

// ErrEventNotFound signals a missing event record.
var ErrEventNotFound = errors.New("event not found")

// eventColumns is the shared projection for event queries. tags and venue
// are stored exactly as the upstream producers wrote them (JSON array,
// JSON string or bare text) and are normalized at scan time; this is the
// single place raw shapes are interpreted.
const eventColumns = `
	e.id, e.slug, e.title, e.description, e.type, e.tags, e.venue,
	e.start_date, e.end_date, e.start_time, e.end_time,
	e.cost, e.hero_image, e.star, e.created_at
`

// ListEvents returns every event ordered by start date.
func (s *Store) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM events e
		ORDER BY e.start_date ASC, e.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}
	defer rows.Close()

	return scanEventRows(rows)
}

// FeaturedEvents returns starred events for the home page, soonest first.
func (s *Store) FeaturedEvents(ctx context.Context, limit int) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM events e
		WHERE e.star = TRUE
		ORDER BY e.start_date ASC, e.id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("select featured events: %w", err)
	}
	defer rows.Close()

	return scanEventRows(rows)
}

// EventBySlug returns one event with its featured artists attached.
func (s *Store) EventBySlug(ctx context.Context, slug string) (*models.Event, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+eventColumns+`
		FROM events e
		WHERE e.slug = $1
	`, slug)

	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("select event: %w", err)
	}

	artists, err := s.eventArtists(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	event.Artists = artists

	return &event, nil
}

// EventsForArtist returns the events linked to an artist through the
// artist_events junction, ordered by start date.
func (s *Store) EventsForArtist(ctx context.Context, artistID int64) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM artist_events ae
		JOIN events e ON e.id = ae.event_id
		WHERE ae.artist_id = $1
		ORDER BY e.start_date ASC, e.id ASC
	`, artistID)
	if err != nil {
		return nil, fmt.Errorf("select artist events: %w", err)
	}
	defer rows.Close()

	return scanEventRows(rows)
}

func (s *Store) eventArtists(ctx context.Context, eventID int64) ([]models.ArtistRef, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.slug, a.name, a.type, a.profile_image
		FROM artist_events ae
		JOIN artists a ON a.id = ae.artist_id
		WHERE ae.event_id = $1
		ORDER BY a.name ASC
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("select event artists: %w", err)
	}
	defer rows.Close()

	var refs []models.ArtistRef
	for rows.Next() {
		var (
			ref          models.ArtistRef
			profileImage sql.NullString
		)
		if err := rows.Scan(&ref.ID, &ref.Slug, &ref.Name, &ref.Type, &profileImage); err != nil {
			return nil, fmt.Errorf("scan event artist: %w", err)
		}
		ref.ProfileImage = profileImage.String
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event artists: %w", err)
	}
	return refs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (models.Event, error) {
	var (
		event       models.Event
		description sql.NullString
		eventType   sql.NullString
		tags        sql.NullString
		venue       sql.NullString
		startDate   sql.NullString
		endDate     sql.NullString
		startTime   sql.NullString
		endTime     sql.NullString
		cost        sql.NullString
		heroImage   sql.NullString
	)

	err := row.Scan(
		&event.ID, &event.Slug, &event.Title, &description, &eventType,
		&tags, &venue, &startDate, &endDate, &startTime, &endTime,
		&cost, &heroImage, &event.Star, &event.CreatedAt,
	)
	if err != nil {
		return models.Event{}, err
	}

	event.Description = description.String
	event.Type = eventType.String
	event.Tags = normalize.Tags([]byte(tags.String))
	event.Venue = normalize.Venue([]byte(venue.String))
	event.StartDate = startDate.String
	event.EndDate = endDate.String
	event.StartTime = startTime.String
	event.EndTime = endTime.String
	event.Cost = cost.String
	event.HeroImage = heroImage.String

	return event, nil
}

func scanEventRows(rows *sql.Rows) ([]models.Event, error) {
	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
