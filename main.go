package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/steamlens/steamlens/analysis"
	"github.com/steamlens/steamlens/catalog"
	"github.com/steamlens/steamlens/charts"
	"github.com/steamlens/steamlens/core"
	"github.com/steamlens/steamlens/report"
	"github.com/steamlens/steamlens/service"
)

func main() {
	root := &cobra.Command{Use: "steamlens", Short: "Steam catalog analytics and reporting"}

	var cfgFile string
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")

	root.AddCommand(newAnalyzeCmd(&cfgFile))
	root.AddCommand(newServeCmd(&cfgFile))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newAnalyzeCmd(cfgFile *string) *cobra.Command {
	var (
		sample       string
		dataFile     string
		plotsDir     string
		format       string
		renderCharts bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run all catalog queries and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := core.InitConfig(*cfgFile); err != nil {
				return err
			}
			ctx := core.WithDefaultLogger(context.Background(), "analyze")

			fs := afero.NewOsFs()
			path, label := resolveDataset(sample, dataFile)
			core.Infof(ctx, "analyzing %s (%s)", path, label)

			rows, err := catalog.Load(ctx, fs, path)
			if err != nil {
				return err
			}
			table := catalog.Normalize(rows)
			core.Infof(ctx, "loaded %d records", len(table))

			formatter, ok := report.Formatters[format]
			if !ok {
				return fmt.Errorf("unknown format: %q", format)
			}

			engine := analysis.NewEngine(table)
			defer engine.Close()

			if err := formatter(engine.Report(), os.Stdout); err != nil {
				return err
			}

			if renderCharts {
				dir := plotsDir
				if dir == "" {
					dir = core.Config.PlotsDir
				}
				if err := renderAll(charts.NewGenerator(fs, dir), table, label); err != nil {
					return err
				}
				core.Infof(ctx, "charts written to %s", dir)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sample, "sample", "s", "full", `dataset to analyze: 1-10 for a sample, "full" for the complete catalog`)
	cmd.Flags().StringVar(&dataFile, "data", "", "override path to the catalog CSV")
	cmd.Flags().StringVar(&plotsDir, "plots", "", "chart output directory")
	cmd.Flags().StringVar(&format, "format", "json", "report format: json|ndjson")
	cmd.Flags().BoolVar(&renderCharts, "charts", false, "render PNG charts alongside the report")
	return cmd
}

func newServeCmd(cfgFile *string) *cobra.Command {
	var (
		port     int
		sample   string
		dataFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve catalog queries over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := core.InitConfig(*cfgFile); err != nil {
				return err
			}
			ctx := core.WithDefaultLogger(context.Background(), "serve")
			if port == 0 {
				port = core.Config.Port
			}

			path, label := resolveDataset(sample, dataFile)
			rows, err := catalog.Load(ctx, afero.NewOsFs(), path)
			if err != nil {
				return err
			}
			table := catalog.Normalize(rows)
			core.Infof(ctx, "serving %d records from %s (%s)", len(table), path, label)

			server := service.NewServer(analysis.NewEngine(table))
			defer server.Close()

			mux := http.NewServeMux()
			mux.HandleFunc("/health", server.HandleHealth)
			mux.HandleFunc("/query", server.HandleQuery)

			core.Infof(ctx, "steamlens server running at http://localhost:%d", port)
			return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "listen port (defaults to config)")
	cmd.Flags().StringVarP(&sample, "sample", "s", "full", "dataset to serve")
	cmd.Flags().StringVar(&dataFile, "data", "", "override path to the catalog CSV")
	return cmd
}

// resolveDataset maps the --sample flag onto a catalog path. Out-of-range or
// unrecognized sample values fall back to the full dataset.
func resolveDataset(sample, override string) (path, label string) {
	if override != "" {
		return override, "custom"
	}
	if n, err := strconv.Atoi(sample); err == nil && n >= 1 && n <= 10 {
		name := fmt.Sprintf("steam_games_sample_%02d.csv", n)
		return filepath.Join(core.Config.SamplesDir, name), fmt.Sprintf("sample_%02d", n)
	}
	return core.Config.DataFile, "full"
}

func renderAll(g *charts.Generator, table catalog.Table, suffix string) error {
	if err := g.OSSupport(analysis.OSSupportShare(table), suffix); err != nil {
		return err
	}
	if err := g.FreePaid(analysis.FreeVsPaidShare(table), suffix); err != nil {
		return err
	}
	if err := g.LinuxTrend(analysis.LinuxSupportTrend(table), suffix); err != nil {
		return err
	}
	if err := g.PaidPublishers(analysis.TopPaidPublishers(table), suffix); err != nil {
		return err
	}
	return g.GenreRecommendations(analysis.PriceRecommendationsByGenre(table), suffix)
}
