package catalog

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaults(t *testing.T) {
	table := Normalize([]RawRow{{"name": "  Half-Life  "}})
	require.Len(t, table, 1)

	rec := table[0]
	assert.Equal(t, "Half-Life", rec.Name)
	assert.Nil(t, rec.ReleaseDate)
	assert.Nil(t, rec.ReleaseYear)
	assert.Nil(t, rec.MetacriticScore)
	assert.Equal(t, 0.0, rec.Price)
	assert.Equal(t, "Unknown", rec.Publishers)
	assert.Equal(t, "Unknown", rec.Developers)
	assert.Equal(t, "", rec.Genres)
	assert.False(t, rec.Windows)
	assert.Equal(t, 0, rec.PositiveReviews)
	assert.Equal(t, 0.0, rec.EstimatedOwners)
}

func TestNormalizeFullRow(t *testing.T) {
	table := Normalize([]RawRow{{
		"name":             "Portal 2",
		"release_date":     "Apr 18, 2011",
		"metacritic_score": "95",
		"price":            "9.99",
		"publishers":       "Valve",
		"developers":       "Valve",
		"genres":           "Action;Puzzle",
		"windows":          "True",
		"mac":              "True",
		"linux":            "True",
		"dlc_count":        "2",
		"positive_reviews": "1,024",
		"negative_reviews": "12",
		"screenshots":      "10",
		"movies":           "3",
		"estimated_owners": "10,000,000 - 20,000,000",
	}})
	require.Len(t, table, 1)

	rec := table[0]
	require.NotNil(t, rec.ReleaseDate)
	assert.Equal(t, time.Date(2011, time.April, 18, 0, 0, 0, 0, time.UTC), *rec.ReleaseDate)
	require.NotNil(t, rec.ReleaseYear)
	assert.Equal(t, 2011, *rec.ReleaseYear)
	require.NotNil(t, rec.MetacriticScore)
	assert.Equal(t, 95.0, *rec.MetacriticScore)
	assert.Equal(t, 9.99, rec.Price)
	assert.Equal(t, 1024, rec.PositiveReviews)
	assert.Equal(t, 12, rec.NegativeReviews)
	assert.True(t, rec.Windows)
	assert.True(t, rec.Linux)
	assert.Equal(t, 10000000.0, rec.EstimatedOwners)
}

func TestNormalizeDeterministic(t *testing.T) {
	rows := []RawRow{
		{"name": "A", "release_date": "Jan 1, 2020", "metacritic_score": "80", "price": "4.99"},
		{"name": "B", "genres": "RPG", "positive_reviews": "about 300"},
	}
	first := Normalize(rows)
	second := Normalize(rows)
	assert.True(t, reflect.DeepEqual(first, second))
	assert.Len(t, first, len(rows))
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"True", true},
		{"true", true},
		{"1", true},
		{"yes", true},
		{"TRUE ", true},
		{"", false},
		{"  ", false},
		{"0", false},
		{"False", false},
		{"no", false},
		{"None", false},
		{"nan", false},
	}
	for _, tt := range tests {
		if got := parseBool(tt.raw); got != tt.want {
			t.Errorf("parseBool(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseCounter(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"1,024", 1024},
		{"12 DLC", 12},
		{"300", 300},
		{"", 0},
		{"n/a", 0},
		{"-5", 5},
	}
	for _, tt := range tests {
		if got := parseCounter(tt.raw); got != tt.want {
			t.Errorf("parseCounter(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParseOwners(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"500,000 - 1,000,000", 500000},
		{"0 - 20,000", 0},
		{"1,000,000", 1000000},
		{"", 0},
		{"unknown", 0},
	}
	for _, tt := range tests {
		if got := parseOwners(tt.raw); got != tt.want {
			t.Errorf("parseOwners(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, ok := parseDate("Oct 21, 2008")
	require.True(t, ok)
	assert.Equal(t, time.Date(2008, time.October, 21, 0, 0, 0, 0, time.UTC), got)

	// single digit day
	got, ok = parseDate("Jan 2, 2020")
	require.True(t, ok)
	assert.Equal(t, 2020, got.Year())

	for _, raw := range []string{"", "21 Oct 2008", "2008-10-21", "October 21, 2008"} {
		if _, ok := parseDate(raw); ok {
			t.Errorf("parseDate(%q) unexpectedly parsed", raw)
		}
	}
}
