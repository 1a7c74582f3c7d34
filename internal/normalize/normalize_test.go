package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhorizon/shared/go/models"
)

func TestTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "json array",
			raw:  `["live music","rooftop","indie"]`,
			want: []string{"live music", "rooftop", "indie"},
		},
		{
			name: "json array with whitespace and empties",
			raw:  `[" jazz ","","  "]`,
			want: []string{"jazz"},
		},
		{
			name: "json array with non-string elements",
			raw:  `["art",42,null,{"x":1},"gallery"]`,
			want: []string{"art", "gallery"},
		},
		{
			name: "json encoded string holding an array",
			raw:  `"[\"poetry\",\"open mic\"]"`,
			want: []string{"poetry", "open mic"},
		},
		{
			name: "json encoded string holding a comma list",
			raw:  `"comedy, stand-up"`,
			want: []string{"comedy", "stand-up"},
		},
		{
			name: "bare comma list",
			raw:  "art, gallery, opening night",
			want: []string{"art", "gallery", "opening night"},
		},
		{
			name: "bare single tag",
			raw:  "acoustic",
			want: []string{"acoustic"},
		},
		{
			name: "empty",
			raw:  "",
			want: []string{},
		},
		{
			name: "json null",
			raw:  "null",
			want: []string{},
		},
		{
			name: "json number",
			raw:  "5",
			want: []string{},
		},
		{
			name: "json object",
			raw:  `{"tags":["x"]}`,
			want: []string{},
		},
		{
			name: "whitespace only",
			raw:  "   ",
			want: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Tags([]byte(tc.raw)))
		})
	}
}

func TestTagsFromStringMixedArrayFallsBackToCommaSplit(t *testing.T) {
	// An array that is not purely non-empty strings is rejected as a
	// whole; its text goes through the comma splitter instead.
	got := TagsFromString(`["rock", 7]`)
	assert.Equal(t, []string{`["rock"`, `7]`}, got)
}

func TestTagsNeverReturnsNil(t *testing.T) {
	inputs := []string{"", "null", "not json", `[]`, `{}`, `""`}
	for _, raw := range inputs {
		require.NotNil(t, Tags([]byte(raw)), "input %q", raw)
	}
}

func TestVenue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want models.Venue
	}{
		{
			name: "json object",
			raw:  `{"name":"The Gardner Roof","address":"44 Pine St","city":"Riverton"}`,
			want: models.Venue{Name: "The Gardner Roof", Address: "44 Pine St", City: "Riverton"},
		},
		{
			name: "json object without name",
			raw:  `{"address":"44 Pine St"}`,
			want: models.Venue{Name: models.VenueTBA, Address: "44 Pine St"},
		},
		{
			name: "json encoded string name",
			raw:  `"Corner Gallery"`,
			want: models.Venue{Name: "Corner Gallery"},
		},
		{
			name: "json encoded string holding an object",
			raw:  `"{\"name\":\"Dockside Room\",\"city\":\"Riverton\"}"`,
			want: models.Venue{Name: "Dockside Room", City: "Riverton"},
		},
		{
			name: "bare name",
			raw:  "The Cellar Door",
			want: models.Venue{Name: "The Cellar Door"},
		},
		{
			name: "empty",
			raw:  "",
			want: models.Venue{Name: models.VenueTBA},
		},
		{
			name: "json null",
			raw:  "null",
			want: models.Venue{Name: models.VenueTBA},
		},
		{
			name: "json array",
			raw:  `["not","a","venue"]`,
			want: models.Venue{Name: models.VenueTBA},
		},
		{
			name: "whitespace only",
			raw:  "  ",
			want: models.Venue{Name: models.VenueTBA},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Venue([]byte(tc.raw)))
		})
	}
}

func TestVenueKnown(t *testing.T) {
	assert.False(t, Venue(nil).Known())
	assert.True(t, Venue([]byte(`"Corner Gallery"`)).Known())
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
		want   time.Time
	}{
		{
			name:   "date only",
			input:  "2026-09-12",
			wantOK: true,
			want:   time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "rfc3339",
			input:  "2026-09-12T19:30:00Z",
			wantOK: true,
			want:   time.Date(2026, time.September, 12, 19, 30, 0, 0, time.UTC),
		},
		{
			name:   "datetime without zone",
			input:  "2026-09-12T19:30:00",
			wantOK: true,
			want:   time.Date(2026, time.September, 12, 19, 30, 0, 0, time.UTC),
		},
		{
			name:  "empty",
			input: "",
		},
		{
			name:  "garbage",
			input: "next friday",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseDate(tc.input)
			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.True(t, got.Equal(tc.want), "got %v want %v", got, tc.want)
			}
		})
	}
}

func TestIsUpcoming(t *testing.T) {
	ref := time.Date(2026, time.September, 10, 15, 30, 0, 0, time.UTC)

	assert.True(t, IsUpcoming("2026-09-10", ref), "same day counts as upcoming")
	assert.True(t, IsUpcoming("2026-09-11", ref))
	assert.False(t, IsUpcoming("2026-09-09", ref))
	assert.False(t, IsUpcoming("", ref))
	assert.False(t, IsUpcoming("sometime soon", ref))
}
