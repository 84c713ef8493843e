// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"botstats/internal/contract"
	"botstats/schema"
)

// OutWriter provides a unified interface for all report output operations.
// Each Write method prints a console table and then renders the matching
// chart image into the configured charts directory.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteMonthly prints the per-month activity table and renders the monthly
// commits bar chart.
func (ow *OutWriter) WriteMonthly(rows []schema.MonthlyCount, cfg *contract.Config) error {
	if err := printMonthlyTable(rows, cfg); err != nil {
		return err
	}
	return renderChart(cfg, schema.MonthlyChart, func(path string) error {
		return renderMonthlyChart(rows, path)
	})
}

// WriteAdoption prints the cumulative adoption table and renders the
// two-line adoption curve chart.
func (ow *OutWriter) WriteAdoption(curve []schema.AdoptionPoint, cfg *contract.Config) error {
	if err := printAdoptionTable(curve, cfg); err != nil {
		return err
	}
	return renderChart(cfg, schema.AdoptionChart, func(path string) error {
		return renderAdoptionChart(curve, path)
	})
}

// WriteTopRepos prints the busiest-repositories table and renders its bar
// chart.
func (ow *OutWriter) WriteTopRepos(rows []schema.RepoVolume, cfg *contract.Config) error {
	if err := printTopReposTable(rows, cfg); err != nil {
		return err
	}
	return renderChart(cfg, schema.TopChart, func(path string) error {
		return renderTopReposChart(rows, path)
	})
}

// WriteProportions prints the fleet-wide adoption summary and renders the
// proportions bar chart.
func (ow *OutWriter) WriteProportions(p schema.MarkerProportions, cfg *contract.Config) error {
	if err := printProportionsTable(p, cfg); err != nil {
		return err
	}
	return renderChart(cfg, schema.ProportionsChart, func(path string) error {
		return renderProportionsChart(p, path)
	})
}

// renderChart ensures the charts directory exists, invokes the renderer
// with the chart's fixed output path, and reports where the image went.
func renderChart(cfg *contract.Config, name schema.ChartName, render func(path string) error) error {
	if err := os.MkdirAll(cfg.ChartsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create charts directory %q: %w", cfg.ChartsDir, err)
	}
	path := filepath.Join(cfg.ChartsDir, string(name)+".png")
	if err := render(path); err != nil {
		return fmt.Errorf("failed to render %s chart: %w", name, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote chart to %s\n", path)
	return nil
}

// getMaxTableNameWidth calculates the maximum width for repository names in
// table output based on terminal width.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the rank, marker and count columns with borders
	// and padding.
	available := termWidth - 30
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}

// truncateName shortens a repository name to fit within table bounds.
func truncateName(name string, maxWidth int) string {
	if len(name) <= maxWidth {
		return name
	}
	if maxWidth <= 3 {
		return name[:maxWidth]
	}
	return name[:maxWidth-3] + "..."
}
