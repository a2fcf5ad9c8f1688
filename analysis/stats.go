package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// MetricStats carries the mean and maximum of one metric over a selection.
type MetricStats struct {
	Mean float64 `json:"mean"`
	Max  float64 `json:"max"`
}

func summarize(xs []float64) MetricStats {
	max := xs[0]
	for _, v := range xs[1:] {
		if v > max {
			max = v
		}
	}
	return MetricStats{Mean: stat.Mean(xs, nil), Max: max}
}

// median returns the middle value, or the midpoint of the two central values
// for even-length input. The input slice is not modified.
func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}

// pearson returns the Pearson correlation coefficient, or nil when either
// variable has fewer than two distinct values and the coefficient is
// undefined.
func pearson(xs, ys []float64) *float64 {
	if distinctCount(xs) < 2 || distinctCount(ys) < 2 {
		return nil
	}
	r := stat.Correlation(xs, ys, nil)
	return &r
}

func distinctCount(xs []float64) int {
	seen := make(map[float64]struct{}, len(xs))
	for _, v := range xs {
		seen[v] = struct{}{}
	}
	return len(seen)
}
