package models

import "time"

// ArtistType enumerates the display categories the directory filters on.
type ArtistType string

const (
	ArtistTypeMusician ArtistType = "Musician / Band"
	ArtistTypeVisual   ArtistType = "Visual Artist"
	ArtistTypeComedian ArtistType = "Comedian"
	ArtistTypeAuthor   ArtistType = "Author / Poet"
)

// Artist represents a local artist listed in the directory.
type Artist struct {
	ID           int64      `json:"id"`
	Slug         string     `json:"slug"`
	Name         string     `json:"name"`
	Type         ArtistType `json:"type"`
	Genre        string     `json:"genre,omitempty"` // only meaningful for Musician / Band
	Bio          string     `json:"bio,omitempty"`
	ProfileImage string     `json:"profile_image,omitempty"`
	Gallery      []string   `json:"gallery,omitempty"`
	YouTubeLinks []string   `json:"youtube_links,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`

	// Events is a materialized copy of the artist_events relation,
	// populated by JOIN queries and possibly stale.
	Events []Event `json:"events,omitempty"`
}

// ArtistRef is the slim artist shape embedded in reviews and event listings.
type ArtistRef struct {
	ID           int64      `json:"id"`
	Slug         string     `json:"slug"`
	Name         string     `json:"name"`
	Type         ArtistType `json:"type,omitempty"`
	ProfileImage string     `json:"profile_image,omitempty"`
}
