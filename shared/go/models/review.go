package models

import "time"

// Review is a star review a user left for an artist. Reviews are
// immutable once created.
type Review struct {
	ID        int64     `json:"id"`
	ArtistID  int64     `json:"artist_id"`
	UserID    int64     `json:"user_id"`
	Rating    int       `json:"rating"` // 1..5
	Review    string    `json:"review"`
	Author    string    `json:"author"` // display name captured at submission time
	CreatedAt time.Time `json:"created_at"`

	// Artist is populated by JOIN queries for review listings.
	Artist *ArtistRef `json:"artist,omitempty"`
}
