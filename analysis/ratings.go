package analysis

import (
	"sort"
	"time"

	"github.com/steamlens/steamlens/catalog"
)

// RatedGame is one row of the top-rated listing.
type RatedGame struct {
	Name            string    `json:"name"`
	MetacriticScore float64   `json:"metacritic_score"`
	ReleaseDate     time.Time `json:"release_date"`
	Publishers      string    `json:"publishers"`
	Developers      string    `json:"developers"`
}

// TopMetacriticGames returns up to ten games ranked by critic score, highest
// first. Ties on score are broken by release date, oldest first; records
// missing either the score or the date are skipped. The sort is stable, so
// fully tied records keep their load order.
func TopMetacriticGames(t catalog.Table) []RatedGame {
	qualified := make([]RatedGame, 0)
	for i := range t {
		rec := &t[i]
		if rec.MetacriticScore == nil || rec.ReleaseDate == nil {
			continue
		}
		qualified = append(qualified, RatedGame{
			Name:            rec.Name,
			MetacriticScore: *rec.MetacriticScore,
			ReleaseDate:     *rec.ReleaseDate,
			Publishers:      rec.Publishers,
			Developers:      rec.Developers,
		})
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		if qualified[i].MetacriticScore != qualified[j].MetacriticScore {
			return qualified[i].MetacriticScore > qualified[j].MetacriticScore
		}
		return qualified[i].ReleaseDate.Before(qualified[j].ReleaseDate)
	})

	if len(qualified) > 10 {
		qualified = qualified[:10]
	}
	return qualified
}
