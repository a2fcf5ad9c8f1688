package analysis

import (
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/steamlens/steamlens/catalog"
)

// GenreSegmentReport holds the role-playing segment metrics. MatchedGames==0
// marks an empty selection; Metrics is nil in that case and callers must
// branch on it instead of reading zeroed numbers.
type GenreSegmentReport struct {
	MatchedGames int                    `json:"matched_games"`
	Metrics      map[string]MetricStats `json:"metrics,omitempty"`
}

// Empty reports whether the selection matched no games.
func (r GenreSegmentReport) Empty() bool { return r.MatchedGames == 0 }

// RolePlayingMetrics computes mean/max of DLC count, review counts and demo
// materials (screenshots+movies) over games whose genre text mentions "RPG"
// or "Role-playing" anywhere, case-insensitively. Substring matching is
// deliberate: "Action RPG" and "MMORPG" both qualify.
func RolePlayingMetrics(t catalog.Table) GenreSegmentReport {
	var dlc, pos, neg, demo []float64
	for i := range t {
		rec := &t[i]
		g := strings.ToLower(rec.Genres)
		if !strings.Contains(g, "rpg") && !strings.Contains(g, "role-playing") {
			continue
		}
		dlc = append(dlc, float64(rec.DLCCount))
		pos = append(pos, float64(rec.PositiveReviews))
		neg = append(neg, float64(rec.NegativeReviews))
		demo = append(demo, float64(rec.Screenshots+rec.Movies))
	}

	if len(dlc) == 0 {
		return GenreSegmentReport{}
	}

	return GenreSegmentReport{
		MatchedGames: len(dlc),
		Metrics: map[string]MetricStats{
			"dlc_count":        summarize(dlc),
			"positive_reviews": summarize(pos),
			"negative_reviews": summarize(neg),
			"demo_materials":   summarize(demo),
		},
	}
}

// GenreCorrelation is one row of the price/engagement study.
type GenreCorrelation struct {
	Genre                   string   `json:"genre"`
	AvgPrice                float64  `json:"avg_price"`
	AvgTotalRecommendations float64  `json:"avg_total_recommendations"`
	Correlation             *float64 `json:"correlation_price_recs"`
}

// PriceRecommendationsByGenre studies releases after 2019. Genre tokens are
// ranked by frequency across the filtered set; for each of the five most
// common tokens the subset is re-selected by case-insensitive substring
// against the raw genre text, which can be wider than the token count that
// ranked it. Each row reports mean price, mean total recommendations
// (positive+negative reviews) and the Pearson correlation between the two.
// Rows come back ordered by mean total recommendations, highest first.
func PriceRecommendationsByGenre(t catalog.Table) []GenreCorrelation {
	var recent []*catalog.GameRecord
	for i := range t {
		if t[i].ReleaseYear != nil && *t[i].ReleaseYear > 2019 {
			recent = append(recent, &t[i])
		}
	}

	rows := make([]GenreCorrelation, 0, 5)
	if len(recent) == 0 {
		return rows
	}

	for _, genre := range topGenreTokens(recent, 5) {
		needle := strings.ToLower(genre)
		var prices, recs []float64
		for _, rec := range recent {
			if !strings.Contains(strings.ToLower(rec.Genres), needle) {
				continue
			}
			prices = append(prices, rec.Price)
			recs = append(recs, float64(rec.PositiveReviews+rec.NegativeReviews))
		}
		if len(prices) == 0 {
			continue
		}
		rows = append(rows, GenreCorrelation{
			Genre:                   genre,
			AvgPrice:                stat.Mean(prices, nil),
			AvgTotalRecommendations: stat.Mean(recs, nil),
			Correlation:             pearson(prices, recs),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AvgTotalRecommendations > rows[j].AvgTotalRecommendations
	})
	return rows
}

var genreSplitter = regexp.MustCompile(`[;,]`)

// topGenreTokens explodes the genre strings on ';' or ',' and returns the n
// most frequent trimmed tokens. Ties keep first-appearance order, so the
// ranking is stable run-to-run for identical input.
func topGenreTokens(recs []*catalog.GameRecord, n int) []string {
	counts := make(map[string]int)
	var order []string
	for _, rec := range recs {
		for _, tok := range genreSplitter.Split(rec.Genres, -1) {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			if _, seen := counts[tok]; !seen {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > n {
		order = order[:n]
	}
	return order
}
