package catalog

import "time"

// GameRecord is one canonical catalog entry. Nullable fields are pointers;
// nil means the raw value was missing or unparseable. Everything else holds
// its documented default when the raw text could not be coerced.
type GameRecord struct {
	Name            string
	ReleaseDate     *time.Time
	ReleaseYear     *int
	MetacriticScore *float64
	Price           float64
	Publishers      string
	Developers      string

	// Raw delimiter-joined text (';' or ','), kept verbatim for substring
	// and token matching downstream.
	Genres     string
	Categories string
	Tags       string

	Windows bool
	Mac     bool
	Linux   bool

	DLCCount        int
	Achievements    int
	Recommendations int
	PositiveReviews int
	NegativeReviews int
	Screenshots     int
	Movies          int

	AveragePlaytimeForever  int
	AveragePlaytimeTwoWeeks int
	MedianPlaytimeForever   int
	MedianPlaytimeTwoWeeks  int

	EstimatedOwners float64
}

// Table is the canonical record set, in load order. It is built once by
// Normalize and must not be mutated afterwards; queries take read-only views.
type Table []GameRecord
