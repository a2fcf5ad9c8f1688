package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/steamlens/steamlens/catalog"
	"github.com/steamlens/steamlens/core"
)

// Ensure Engine implements core.QueryRunner interface
var _ core.QueryRunner = (*Engine)(nil)

// Engine runs the named catalog queries against one loaded table.
type Engine struct {
	Table catalog.Table
}

// NewEngine creates an Engine over an already-normalized table.
func NewEngine(t catalog.Table) *Engine {
	return &Engine{Table: t}
}

// Run dispatches a query by identifier: q1..q5, their report aliases,
// os_support, free_paid, or "all" for the full report.
func (e *Engine) Run(ctx context.Context, query string) (any, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	core.Debugf(ctx, "running query %q over %d records", q, len(e.Table))

	switch q {
	case "q1", "q1_top_metacritic":
		return TopMetacriticGames(e.Table), nil
	case "q2", "q2_rpg_metrics":
		return RolePlayingMetrics(e.Table), nil
	case "q3", "q3_top_publishers":
		return TopPaidPublishers(e.Table), nil
	case "q4", "q4_linux_growth":
		return LinuxSupportTrend(e.Table), nil
	case "q5", "q_custom_price_recs":
		return PriceRecommendationsByGenre(e.Table), nil
	case "os_support":
		return OSSupportShare(e.Table), nil
	case "free_paid":
		return FreeVsPaidShare(e.Table), nil
	case "all":
		return e.Report(), nil
	}
	return nil, fmt.Errorf("unknown query: %q", query)
}

// Report bundles every fixed query result under its report identifier.
func (e *Engine) Report() map[string]any {
	return map[string]any{
		"q1_top_metacritic":   TopMetacriticGames(e.Table),
		"q2_rpg_metrics":      RolePlayingMetrics(e.Table),
		"q3_top_publishers":   TopPaidPublishers(e.Table),
		"q4_linux_growth":     LinuxSupportTrend(e.Table),
		"q_custom_price_recs": PriceRecommendationsByGenre(e.Table),
	}
}

// Close releases resources. The engine holds none beyond the table itself.
func (e *Engine) Close() error { return nil }
