package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"botstats/core"
	"botstats/internal/contract"
	"botstats/internal/outwriter"
	"botstats/schema"
)

// statsCmd runs the reports against the imported data.
var statsCmd = &cobra.Command{
	Use:   "stats [chart...]",
	Short: "Report on imported bot commits with tables and chart images.",
	Long: `Query the imported data and write each report as a console table plus
a PNG chart in the charts directory.

Available charts:
- monthly:     bot commits and active repositories per calendar month
- adoption:    cumulative repositories with bot commits, split by marker
- top:         repositories with the most bot commits
- proportions: fleet-wide marker adoption shares

With no arguments, every chart is produced.

Examples:
  # Run every report
  botstats stats

  # Only the adoption curve
  botstats stats adoption

  # Top 50 repositories, charts in a custom directory
  botstats stats top --limit 50 --charts-dir out`,
	Args:    validChartArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, args []string) {
		charts := make([]schema.ChartName, 0, len(args))
		for _, arg := range args {
			charts = append(charts, schema.ChartName(arg))
		}
		ow := outwriter.NewOutWriter()
		if err := core.ExecuteStats(rootCtx, cfg, dataStore, ow, charts); err != nil {
			contract.LogFatal("Cannot run stats", err)
		}
	},
}

// validChartArgs rejects unknown chart names before any setup happens.
func validChartArgs(_ *cobra.Command, args []string) error {
	for _, arg := range args {
		if _, ok := schema.ValidCharts[schema.ChartName(arg)]; !ok {
			return fmt.Errorf("unknown chart %q. Valid charts: monthly, adoption, top, proportions", arg)
		}
	}
	return nil
}
