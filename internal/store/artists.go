package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eventhorizon/shared/go/models"
)

// ErrArtistNotFound signals a missing artist record.
var ErrArtistNotFound = errors.New("artist not found")

const artistColumns = `
	a.id, a.slug, a.name, a.type, a.genre, a.bio,
	a.profile_image, a.gallery, a.youtube_links, a.created_at
`

// ListArtists returns every artist ordered by name, each with its linked
// events materialized for directory badge counts.
func (s *Store) ListArtists(ctx context.Context) ([]models.Artist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+artistColumns+`
		FROM artists a
		ORDER BY a.name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select artists: %w", err)
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

// ArtistBySlug returns one artist with its linked events attached.
func (s *Store) ArtistBySlug(ctx context.Context, slug string) (*models.Artist, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+artistColumns+`
		FROM artists a
		WHERE a.slug = $1
	`, slug)

	artist, err := scanArtist(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, fmt.Errorf("select artist: %w", err)
	}

	events, err := s.EventsForArtist(ctx, artist.ID)
	if err != nil {
		return nil, err
	}
	artist.Events = events

	return &artist, nil
}

// ArtistIDBySlug resolves a slug to its artist id without loading the
// row or its linked events.
func (s *Store) ArtistIDBySlug(ctx context.Context, slug string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id
		FROM artists
		WHERE slug = $1
	`, slug).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrArtistNotFound
		}
		return 0, fmt.Errorf("lookup artist id: %w", err)
	}
	return id, nil
}

// RandomArtists returns a random selection for the home page showcase.
func (s *Store) RandomArtists(ctx context.Context, limit int) ([]models.Artist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+artistColumns+`
		FROM artists a
		ORDER BY random()
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("select random artists: %w", err)
	}
	defer rows.Close()

	return scanArtistRows(rows)
}

func scanArtist(row rowScanner) (models.Artist, error) {
	var (
		artist       models.Artist
		genre        sql.NullString
		bio          sql.NullString
		profileImage sql.NullString
	)

	err := row.Scan(
		&artist.ID, &artist.Slug, &artist.Name, &artist.Type, &genre, &bio,
		&profileImage, pq.Array(&artist.Gallery), pq.Array(&artist.YouTubeLinks),
		&artist.CreatedAt,
	)
	if err != nil {
		return models.Artist{}, err
	}

	artist.Genre = genre.String
	artist.Bio = bio.String
	artist.ProfileImage = profileImage.String

	return artist, nil
}

func scanArtistRows(rows *sql.Rows) ([]models.Artist, error) {
	var artists []models.Artist
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, artist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}
	return artists, nil
}
