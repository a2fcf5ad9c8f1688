package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/steamlens/steamlens/catalog"
)

// PublisherStats is one row of the paid-game publisher ranking.
type PublisherStats struct {
	Publishers            string  `json:"publishers"`
	NumPaidGames          int     `json:"num_paid_games"`
	AvgPositiveReviews    float64 `json:"avg_positive_reviews"`
	MedianPositiveReviews float64 `json:"median_positive_reviews"`
}

// TopPaidPublishers ranks publishers by how many paid games (price > 0) they
// ship, keeping the five largest, and reports mean and median positive
// reviews across each publisher's paid games. The verbatim publishers string
// is the grouping key: a co-publisher listing forms its own group rather
// than being split. Ties in count keep first-appearance order. An input with
// no paid games yields an empty, non-nil slice.
func TopPaidPublishers(t catalog.Table) []PublisherStats {
	reviews := make(map[string][]float64)
	var order []string
	for i := range t {
		rec := &t[i]
		if rec.Price <= 0 {
			continue
		}
		if _, seen := reviews[rec.Publishers]; !seen {
			order = append(order, rec.Publishers)
		}
		reviews[rec.Publishers] = append(reviews[rec.Publishers], float64(rec.PositiveReviews))
	}

	rows := make([]PublisherStats, 0, len(order))
	for _, pub := range order {
		rs := reviews[pub]
		rows = append(rows, PublisherStats{
			Publishers:            pub,
			NumPaidGames:          len(rs),
			AvgPositiveReviews:    stat.Mean(rs, nil),
			MedianPositiveReviews: median(rs),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].NumPaidGames > rows[j].NumPaidGames
	})
	if len(rows) > 5 {
		rows = rows[:5]
	}
	return rows
}
