package charts

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/steamlens/steamlens/analysis"
)

// Report palette, shared by every chart so figures look consistent.
var palette = []drawing.Color{
	drawing.ColorFromHex("1f77b4"), // blue (primary)
	drawing.ColorFromHex("ff7f0e"), // orange
	drawing.ColorFromHex("2ca02c"), // green (free)
	drawing.ColorFromHex("d62728"), // red (paid / highlight)
	drawing.ColorFromHex("9467bd"), // purple
	drawing.ColorFromHex("7f7f7f"), // gray
}

func barStyle(c drawing.Color) chart.Style {
	return chart.Style{FillColor: c, StrokeColor: c, StrokeWidth: 0}
}

// Generator renders analysis results as PNG files under one output dir.
type Generator struct {
	Fs  afero.Fs
	Dir string
}

// NewGenerator creates a chart generator writing into dir on fs.
func NewGenerator(fs afero.Fs, dir string) *Generator {
	return &Generator{Fs: fs, Dir: dir}
}

func (g *Generator) save(name string, render func(w io.Writer) error) error {
	if err := g.Fs.MkdirAll(g.Dir, 0o755); err != nil {
		return err
	}
	f, err := g.Fs.Create(filepath.Join(g.Dir, name))
	if err != nil {
		return err
	}
	defer f.Close()
	return render(f)
}

// OSSupport renders per-OS support percentages as a bar chart.
func (g *Generator) OSSupport(share analysis.OSShare, suffix string) error {
	bars := []chart.Value{
		{Label: "Windows", Value: share.Windows, Style: barStyle(palette[0])},
		{Label: "Mac", Value: share.Mac, Style: barStyle(palette[1])},
		{Label: "Linux", Value: share.Linux, Style: barStyle(palette[2])},
	}
	if maxValue(bars) == 0 {
		return nil
	}
	ch := chart.BarChart{
		Title:      "Games by OS support (%)",
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10}},
		Height:     512,
		BarWidth:   80,
		Bars:       bars,
		YAxis:      chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: 100}},
	}
	return g.save(fmt.Sprintf("g1_%s_os_support.png", suffix), func(w io.Writer) error {
		return ch.Render(chart.PNG, w)
	})
}

// FreePaid renders the free-vs-paid split as a pie chart.
func (g *Generator) FreePaid(share analysis.FreePaidShare, suffix string) error {
	if share.FreePct == 0 && share.PaidPct == 0 {
		return nil
	}
	ch := chart.PieChart{
		Title:  "Free vs. paid games",
		Width:  512,
		Height: 512,
		Values: []chart.Value{
			{Label: fmt.Sprintf("Free %.1f%%", share.FreePct), Value: share.FreePct, Style: barStyle(palette[2])},
			{Label: fmt.Sprintf("Paid %.1f%%", share.PaidPct), Value: share.PaidPct, Style: barStyle(palette[0])},
		},
	}
	return g.save(fmt.Sprintf("q1_%s_free_paid.png", suffix), func(w io.Writer) error {
		return ch.Render(chart.PNG, w)
	})
}

// LinuxTrend renders the 2018-2022 Linux release counts as a bar chart.
func (g *Generator) LinuxTrend(trend []analysis.YearCount, suffix string) error {
	bars := make([]chart.Value, 0, len(trend))
	for _, yc := range trend {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%d", yc.ReleaseYear),
			Value: float64(yc.NumLinuxGames),
			Style: barStyle(palette[0]),
		})
	}
	if maxValue(bars) == 0 {
		return nil
	}
	ch := chart.BarChart{
		Title:      "Linux-supporting releases per year",
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10}},
		Height:     512,
		BarWidth:   60,
		Bars:       bars,
	}
	return g.save(fmt.Sprintf("q4_%s_linux_trend.png", suffix), func(w io.Writer) error {
		return ch.Render(chart.PNG, w)
	})
}

// PaidPublishers renders paid-game counts for the top publishers, the
// largest bar highlighted.
func (g *Generator) PaidPublishers(rows []analysis.PublisherStats, suffix string) error {
	if len(rows) == 0 {
		return nil
	}
	bars := make([]chart.Value, 0, len(rows))
	for i, row := range rows {
		style := barStyle(palette[1])
		if i == 0 {
			style = barStyle(palette[3])
		}
		bars = append(bars, chart.Value{Label: row.Publishers, Value: float64(row.NumPaidGames), Style: style})
	}
	if maxValue(bars) == 0 {
		return nil
	}
	ch := chart.BarChart{
		Title:      "Top publishers by paid games",
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10}},
		Height:     512,
		BarWidth:   80,
		Bars:       bars,
	}
	return g.save(fmt.Sprintf("q3_%s_paid_publishers.png", suffix), func(w io.Writer) error {
		return ch.Render(chart.PNG, w)
	})
}

// GenreRecommendations renders mean total recommendations per popular genre,
// mean price folded into the bar label.
func (g *Generator) GenreRecommendations(rows []analysis.GenreCorrelation, suffix string) error {
	if len(rows) == 0 {
		return nil
	}
	bars := make([]chart.Value, 0, len(rows))
	for i, row := range rows {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s ($%.2f avg)", row.Genre, row.AvgPrice),
			Value: row.AvgTotalRecommendations,
			Style: barStyle(palette[i%len(palette)]),
		})
	}
	if maxValue(bars) == 0 {
		return nil
	}
	ch := chart.BarChart{
		Title:      "Mean recommendations by genre (post-2019)",
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10}},
		Height:     512,
		BarWidth:   80,
		Bars:       bars,
	}
	return g.save(fmt.Sprintf("g3_%s_price_vs_recs.png", suffix), func(w io.Writer) error {
		return ch.Render(chart.PNG, w)
	})
}

func maxValue(bars []chart.Value) float64 {
	var max float64
	for _, b := range bars {
		if b.Value > max {
			max = b.Value
		}
	}
	return max
}
