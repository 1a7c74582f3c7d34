package models

import "time"

// VenueTBA is the sentinel name a venue carries when the source record
// had no usable venue information.
const VenueTBA = "Venue TBA"

// Venue is the canonical venue shape. Source data stores venues as a JSON
// object, a JSON-encoded string, or occasionally a bare venue name; the
// normalizer collapses all of them into this struct.
type Venue struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
}

// Known reports whether the venue carries real data rather than the
// unknown sentinel.
func (v Venue) Known() bool {
	return v.Name != "" && v.Name != VenueTBA
}

// Event represents a local event. All schedule fields are optional;
// "to be announced" is a valid state.
type Event struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type,omitempty"`
	Tags        []string  `json:"tags"`
	Venue       Venue     `json:"venue"`
	StartDate   string    `json:"start_date,omitempty"` // ISO calendar date
	EndDate     string    `json:"end_date,omitempty"`
	StartTime   string    `json:"start_time,omitempty"` // free-form display text
	EndTime     string    `json:"end_time,omitempty"`
	Cost        string    `json:"cost,omitempty"`
	HeroImage   string    `json:"hero_image,omitempty"`
	Star        bool      `json:"star"` // featured on the home page
	CreatedAt   time.Time `json:"created_at"`

	// Artists is populated by JOIN queries for detail views.
	Artists []ArtistRef `json:"artists,omitempty"`
}
