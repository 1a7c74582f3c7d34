package models

import "time"

// Follow is a user-follows-artist join row owned by the backend.
type Follow struct {
	UserID    int64     `json:"user_id"`
	ArtistID  int64     `json:"artist_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Favorite is a user-favorites-event join row owned by the backend.
type Favorite struct {
	UserID    int64     `json:"user_id"`
	EventID   int64     `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

// User is an account that can follow artists, favorite events and
// submit reviews.
type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}
