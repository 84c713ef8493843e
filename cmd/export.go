package cmd

import (
	"github.com/spf13/cobra"

	"botstats/core"
	"botstats/internal/contract"
)

// exportCmd writes the stored data to Parquet files.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the imported data to Parquet files.",
	Long: `Export the stored repositories, commits and import-run history to
Parquet files for analysis in external tools (Spark, Pandas, DuckDB).

One file is written per table, named <output-file>.<table>.parquet.

Examples:
  botstats export --output-file fleet`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, dataStore, cfg.OutputFile); err != nil {
			contract.LogFatal("Cannot run export", err)
		}
	},
}
