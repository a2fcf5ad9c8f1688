package catalog

import (
	"strconv"
	"strings"
	"time"
)

// releaseDateLayout matches the storefront export format, e.g. "Oct 21, 2008".
const releaseDateLayout = "Jan 2, 2006"

// counterColumns maps integer counter columns to their record fields. Each
// parses with parseCounter: strip non-digits, empty remainder means 0.
var counterColumns = []struct {
	column string
	assign func(*GameRecord, int)
}{
	{"dlc_count", func(r *GameRecord, v int) { r.DLCCount = v }},
	{"achievements", func(r *GameRecord, v int) { r.Achievements = v }},
	{"recommendations", func(r *GameRecord, v int) { r.Recommendations = v }},
	{"positive_reviews", func(r *GameRecord, v int) { r.PositiveReviews = v }},
	{"negative_reviews", func(r *GameRecord, v int) { r.NegativeReviews = v }},
	{"screenshots", func(r *GameRecord, v int) { r.Screenshots = v }},
	{"movies", func(r *GameRecord, v int) { r.Movies = v }},
	{"average_playtime_forever", func(r *GameRecord, v int) { r.AveragePlaytimeForever = v }},
	{"average_playtime_two_weeks", func(r *GameRecord, v int) { r.AveragePlaytimeTwoWeeks = v }},
	{"median_playtime_forever", func(r *GameRecord, v int) { r.MedianPlaytimeForever = v }},
	{"median_playtime_two_weeks", func(r *GameRecord, v int) { r.MedianPlaytimeTwoWeeks = v }},
}

// Normalize coerces raw rows into the canonical table. Output cardinality
// equals input cardinality and row order is preserved. Each field parses
// independently; a failed parse falls back to that field's default and never
// affects the rest of the row.
func Normalize(rows []RawRow) Table {
	table := make(Table, 0, len(rows))
	for _, row := range rows {
		table = append(table, normalizeRow(row))
	}
	return table
}

func normalizeRow(row RawRow) GameRecord {
	rec := GameRecord{
		Name:            strings.TrimSpace(row["name"]),
		Price:           parseFloatOr(row["price"], 0),
		Publishers:      stringOr(row["publishers"], "Unknown"),
		Developers:      stringOr(row["developers"], "Unknown"),
		Genres:          strings.TrimSpace(row["genres"]),
		Categories:      strings.TrimSpace(row["categories"]),
		Tags:            strings.TrimSpace(row["tags"]),
		Windows:         parseBool(row["windows"]),
		Mac:             parseBool(row["mac"]),
		Linux:           parseBool(row["linux"]),
		EstimatedOwners: parseOwners(row["estimated_owners"]),
	}

	for _, c := range counterColumns {
		c.assign(&rec, parseCounter(row[c.column]))
	}

	if t, ok := parseDate(row["release_date"]); ok {
		rec.ReleaseDate = &t
		year := t.Year()
		rec.ReleaseYear = &year
	}
	if score, ok := parseFloat(row["metacritic_score"]); ok {
		rec.MetacriticScore = &score
	}

	return rec
}

// parseBool treats any non-empty token as true except a small set of falsey
// spellings.
func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "false", "no", "none", "nan":
		return false
	}
	return true
}

func parseFloat(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseFloatOr(raw string, def float64) float64 {
	if v, ok := parseFloat(raw); ok {
		return v
	}
	return def
}

// parseCounter strips every non-digit rune before parsing, so "1,024" and
// "12 DLC" both coerce. An empty or still-unparseable remainder counts as 0.
func parseCounter(raw string) int {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	v, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return v
}

func parseDate(raw string) (time.Time, bool) {
	t, err := time.Parse(releaseDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseOwners reads the lower bound of a textual range like
// "500,000 - 1,000,000". Thousands separators are stripped first.
func parseOwners(raw string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0
	}
	low := strings.SplitN(s, " - ", 2)[0]
	v, err := strconv.ParseFloat(low, 64)
	if err != nil {
		return 0
	}
	return v
}

func stringOr(raw, def string) string {
	if v := strings.TrimSpace(raw); v != "" {
		return v
	}
	return def
}
