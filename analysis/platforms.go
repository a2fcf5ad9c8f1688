package analysis

import (
	"github.com/steamlens/steamlens/catalog"
)

// Linux-support trend window, inclusive.
const (
	trendStartYear = 2018
	trendEndYear   = 2022
)

// YearCount is one row of the linux-support trend.
type YearCount struct {
	ReleaseYear   int `json:"release_year"`
	NumLinuxGames int `json:"num_linux_games"`
}

// LinuxSupportTrend counts Linux-supporting releases per year from 2018
// through 2022, ascending. Every year of the window appears exactly once,
// zero-filled when nothing shipped, so the counts always sum to the size of
// the filtered set.
func LinuxSupportTrend(t catalog.Table) []YearCount {
	counts := make(map[int]int)
	for i := range t {
		rec := &t[i]
		if !rec.Linux || rec.ReleaseYear == nil {
			continue
		}
		if y := *rec.ReleaseYear; y >= trendStartYear && y <= trendEndYear {
			counts[y]++
		}
	}

	trend := make([]YearCount, 0, trendEndYear-trendStartYear+1)
	for y := trendStartYear; y <= trendEndYear; y++ {
		trend = append(trend, YearCount{ReleaseYear: y, NumLinuxGames: counts[y]})
	}
	return trend
}

// OSShare is the percentage of catalog entries supporting each OS.
type OSShare struct {
	Windows float64 `json:"windows"`
	Mac     float64 `json:"mac"`
	Linux   float64 `json:"linux"`
}

// OSSupportShare reports per-OS support percentages over the whole table.
func OSSupportShare(t catalog.Table) OSShare {
	if len(t) == 0 {
		return OSShare{}
	}
	var w, m, l int
	for i := range t {
		if t[i].Windows {
			w++
		}
		if t[i].Mac {
			m++
		}
		if t[i].Linux {
			l++
		}
	}
	n := float64(len(t))
	return OSShare{
		Windows: 100 * float64(w) / n,
		Mac:     100 * float64(m) / n,
		Linux:   100 * float64(l) / n,
	}
}

// FreePaidShare is the free-vs-paid split of the catalog, in percent.
type FreePaidShare struct {
	FreePct float64 `json:"free_pct"`
	PaidPct float64 `json:"paid_pct"`
}

// FreeVsPaidShare reports what share of the catalog is free (price == 0)
// versus paid.
func FreeVsPaidShare(t catalog.Table) FreePaidShare {
	if len(t) == 0 {
		return FreePaidShare{}
	}
	var paid int
	for i := range t {
		if t[i].Price > 0 {
			paid++
		}
	}
	n := float64(len(t))
	return FreePaidShare{
		FreePct: 100 * float64(len(t)-paid) / n,
		PaidPct: 100 * float64(paid) / n,
	}
}
