package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eventhorizon/internal/store"
	"eventhorizon/shared/go/models"
)

func bootstrapDemoData(ctx context.Context, db *sql.DB, dataStore *store.Store) error {
	if err := ensureDemoUser(ctx, dataStore); err != nil {
		return err
	}
	if err := ensureSeedCatalog(ctx, db); err != nil {
		return err
	}
	return nil
}

func ensureDemoUser(ctx context.Context, dataStore *store.Store) error {
	if _, err := dataStore.CreateUser(ctx, "demo", "Demo User", "demo123"); err != nil && !errors.Is(err, store.ErrUserExists) {
		return fmt.Errorf("bootstrap demo user: %w", err)
	}
	return nil
}

// ensureSeedCatalog loads a small catalog on first boot. Tag and venue columns
// are seeded in the mixed encodings found in real imports so the read path is
// exercised against all of them.
func ensureSeedCatalog(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM artists`).Scan(&count); err != nil {
		return fmt.Errorf("count artists: %w", err)
	}
	if count > 0 {
		return nil
	}

	type seedArtist struct {
		Slug         string
		Name         string
		Type         models.ArtistType
		Genre        string
		Bio          string
		ProfileImage string
		Gallery      []string
		YouTubeLinks []string
	}

	type seedEvent struct {
		Slug        string
		Title       string
		Description string
		Type        string
		Tags        string // raw column value, deliberately mixed encodings
		Venue       string // raw column value, deliberately mixed encodings
		StartDate   string
		EndDate     string
		StartTime   string
		EndTime     string
		Cost        string
		HeroImage   string
		Star        bool
		ArtistSlugs []string
	}

	seedArtists := []seedArtist{
		{
			Slug:         "the-midnight-sparrows",
			Name:         "The Midnight Sparrows",
			Type:         models.ArtistTypeMusician,
			Genre:        "Indie Rock",
			Bio:          "Four-piece indie rock outfit known for late-night rooftop sets.",
			ProfileImage: "/images/artists/midnight-sparrows.jpg",
			Gallery:      []string{"/images/artists/midnight-sparrows-1.jpg", "/images/artists/midnight-sparrows-2.jpg"},
			YouTubeLinks: []string{"https://www.youtube.com/watch?v=sparrows-live"},
		},
		{
			Slug:         "vera-okafor",
			Name:         "Vera Okafor",
			Type:         models.ArtistTypeVisual,
			Genre:        "",
			Bio:          "Mixed-media painter working with found materials and city light.",
			ProfileImage: "/images/artists/vera-okafor.jpg",
			Gallery:      []string{"/images/artists/vera-okafor-1.jpg"},
		},
		{
			Slug:         "danny-uptown",
			Name:         "Danny Uptown",
			Type:         models.ArtistTypeComedian,
			Bio:          "Stand-up regular at the basement clubs, sharp on neighborhood life.",
			ProfileImage: "/images/artists/danny-uptown.jpg",
		},
		{
			Slug:         "rosa-maldonado",
			Name:         "Rosa Maldonado",
			Type:         models.ArtistTypeAuthor,
			Bio:          "Poet and essayist; hosts a monthly open reading series.",
			ProfileImage: "/images/artists/rosa-maldonado.jpg",
		},
		{
			Slug:         "glass-harbor",
			Name:         "Glass Harbor",
			Type:         models.ArtistTypeMusician,
			Genre:        "Jazz",
			Bio:          "Quartet blending modal jazz with tape loops.",
			ProfileImage: "/images/artists/glass-harbor.jpg",
			YouTubeLinks: []string{"https://www.youtube.com/watch?v=glass-harbor-session"},
		},
	}

	seedEvents := []seedEvent{
		{
			Slug:        "rooftop-sessions-vol-3",
			Title:       "Rooftop Sessions Vol. 3",
			Description: "An evening of live indie rock above the city.",
			Type:        "Concert",
			Tags:        `["live music","rooftop","indie"]`,
			Venue:       `{"name":"The Gardner Roof","address":"44 Pine St","city":"Riverton"}`,
			StartDate:   "2026-09-12",
			StartTime:   "19:30",
			EndTime:     "23:00",
			Cost:        "$15",
			HeroImage:   "/images/events/rooftop-sessions.jpg",
			Star:        true,
			ArtistSlugs: []string{"the-midnight-sparrows"},
		},
		{
			Slug:        "found-light-opening",
			Title:       "Found Light: Opening Night",
			Description: "Opening reception for Vera Okafor's new collection.",
			Type:        "Exhibition",
			Tags:        "art, gallery, opening night",
			Venue:       `"Corner Gallery"`,
			StartDate:   "2026-09-05",
			EndDate:     "2026-10-03",
			StartTime:   "18:00",
			Cost:        "Free",
			HeroImage:   "/images/events/found-light.jpg",
			Star:        true,
			ArtistSlugs: []string{"vera-okafor"},
		},
		{
			Slug:        "basement-laughs-september",
			Title:       "Basement Laughs: September",
			Description: "Monthly stand-up showcase with rotating local headliners.",
			Type:        "Comedy",
			Tags:        "comedy,stand-up",
			Venue:       "The Cellar Door",
			StartDate:   "2026-09-19",
			StartTime:   "20:00",
			EndTime:     "22:30",
			Cost:        "$10",
			HeroImage:   "/images/events/basement-laughs.jpg",
			ArtistSlugs: []string{"danny-uptown"},
		},
		{
			Slug:        "open-verse-reading",
			Title:       "Open Verse Reading",
			Description: "Monthly open mic for poetry and short prose.",
			Type:        "Reading",
			Tags:        `"[\"poetry\",\"open mic\"]"`,
			Venue:       "",
			StartDate:   "2026-09-26",
			StartTime:   "18:30",
			Cost:        "Free",
			HeroImage:   "/images/events/open-verse.jpg",
			ArtistSlugs: []string{"rosa-maldonado"},
		},
		{
			Slug:        "harbor-nights",
			Title:       "Harbor Nights",
			Description: "Late jazz sets, two nights only.",
			Type:        "Concert",
			Tags:        `["jazz","late night"]`,
			Venue:       `{"name":"Dockside Room","city":"Riverton"}`,
			StartDate:   "2026-10-02",
			EndDate:     "2026-10-03",
			StartTime:   "21:00",
			Cost:        "$20",
			HeroImage:   "/images/events/harbor-nights.jpg",
			Star:        true,
			ArtistSlugs: []string{"glass-harbor"},
		},
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	artistIDs := make(map[string]int64, len(seedArtists))
	for _, artist := range seedArtists {
		var id int64
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO artists (slug, name, type, genre, bio, profile_image, gallery, youtube_links)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`, artist.Slug, artist.Name, string(artist.Type), artist.Genre, artist.Bio, artist.ProfileImage,
			pq.Array(artist.Gallery), pq.Array(artist.YouTubeLinks)).Scan(&id); err != nil {
			return fmt.Errorf("seed artist %q: %w", artist.Slug, err)
		}
		artistIDs[artist.Slug] = id
	}

	for _, event := range seedEvents {
		var id int64
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO events (slug, title, description, type, tags, venue, start_date, end_date, start_time, end_time, cost, hero_image, star)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING id
		`, event.Slug, event.Title, event.Description, event.Type, event.Tags, event.Venue,
			event.StartDate, event.EndDate, event.StartTime, event.EndTime, event.Cost, event.HeroImage, event.Star).Scan(&id); err != nil {
			return fmt.Errorf("seed event %q: %w", event.Slug, err)
		}

		for _, slug := range event.ArtistSlugs {
			artistID, ok := artistIDs[slug]
			if !ok {
				return fmt.Errorf("seed event %q references unknown artist %q", event.Slug, slug)
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO artist_events (artist_id, event_id)
				VALUES ($1, $2)
			`, artistID, id); err != nil {
				return fmt.Errorf("link event %q to artist %q: %w", event.Slug, slug, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}

	return nil
}
