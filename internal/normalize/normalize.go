// Package normalize collapses the heterogeneous field encodings found in
// source records into canonical shapes. Two upstream producers wrote tags
// and venues with different encodings (JSON arrays, JSON-encoded strings,
// comma lists, bare text), so every consumer goes through this boundary
// exactly once; nothing downstream re-sniffs shapes.
//
// Every function here is total: malformed input degrades to a documented
// default and never produces an error.
package normalize

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"eventhorizon/shared/go/models"
)

var jsonNull = []byte("null")

// Tags canonicalizes a raw tags value into an ordered list of trimmed,
// non-empty strings.
//
// Accepted shapes, in order:
//   - a JSON array: string elements are kept (trimmed, empties dropped),
//     non-string elements are dropped
//   - a JSON-encoded string: its content is parsed JSON-array-first, then
//     split on commas
//   - bare text (not valid JSON at all): same string policy
//   - null, empty or anything else: empty list
//
// The JSON-first-then-comma order is deliberate and must not change: the
// same column is populated by two producers using the two encodings.
func Tags(raw []byte) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return []string{}
	}

	var arr []any
	if err := json.Unmarshal(raw, &arr); err == nil {
		return stringElements(arr)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return TagsFromString(s)
	}

	if json.Valid(raw) {
		// Valid JSON but neither an array nor a string (number, object,
		// bool): no tags.
		return []string{}
	}

	// Not JSON at all: treat the whole value as text.
	return TagsFromString(string(raw))
}

// TagsFromString applies the string half of the tags policy: parse as a
// JSON array first, and only when that fails (or yields anything other
// than a clean string list) fall back to comma-splitting.
func TagsFromString(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}

	var arr []any
	if err := json.Unmarshal([]byte(s), &arr); err == nil {
		if tags, ok := allStrings(arr); ok {
			return tags
		}
		// A JSON array that is not purely strings is rejected and the
		// raw text goes through the comma splitter instead.
	}

	return splitCommaList(s)
}

// Venue canonicalizes a raw venue value. Unknown or unusable input yields
// the VenueTBA sentinel so callers can still distinguish it from a
// populated name.
func Venue(raw []byte) models.Venue {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return models.Venue{Name: models.VenueTBA}
	}

	var v models.Venue
	if err := json.Unmarshal(raw, &v); err == nil {
		return withVenueFallback(v)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return VenueFromString(s)
	}

	if json.Valid(raw) {
		return models.Venue{Name: models.VenueTBA}
	}

	return VenueFromString(string(raw))
}

// VenueFromString parses a venue stored as text: JSON object first, and a
// string that fails to parse is treated as a bare venue name.
func VenueFromString(s string) models.Venue {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Venue{Name: models.VenueTBA}
	}

	var v models.Venue
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		return withVenueFallback(v)
	}

	if json.Valid([]byte(s)) {
		// Parsed as JSON but carried no venue object; nothing to salvage.
		return models.Venue{Name: models.VenueTBA}
	}

	return models.Venue{Name: s}
}

// dateLayouts covers the formats the backend has been observed to store.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate parses a stored date value. The second return is false when
// the value is empty or in no known layout.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsUpcoming reports whether startDate falls on or after ref's calendar
// date, compared in ref's location. An event without a parseable start
// date is never upcoming.
func IsUpcoming(startDate string, ref time.Time) bool {
	t, ok := ParseDate(startDate)
	if !ok {
		return false
	}
	refY, refM, refD := ref.Date()
	refDay := time.Date(refY, refM, refD, 0, 0, 0, 0, ref.Location())
	evY, evM, evD := t.Date()
	evDay := time.Date(evY, evM, evD, 0, 0, 0, 0, ref.Location())
	return !evDay.Before(refDay)
}

func withVenueFallback(v models.Venue) models.Venue {
	v.Name = strings.TrimSpace(v.Name)
	if v.Name == "" {
		v.Name = models.VenueTBA
	}
	return v
}

func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

// stringElements keeps the string members of an already-decoded array,
// dropping anything else.
func stringElements(arr []any) []string {
	tags := make([]string, 0, len(arr))
	for _, el := range arr {
		s, ok := el.(string)
		if !ok {
			continue
		}
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

// allStrings converts arr when every element is a non-empty string.
func allStrings(arr []any) ([]string, bool) {
	tags := make([]string, 0, len(arr))
	for _, el := range arr {
		s, ok := el.(string)
		if !ok {
			return nil, false
		}
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			return nil, false
		}
		tags = append(tags, trimmed)
	}
	return tags, true
}
