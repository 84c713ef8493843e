package cmd

import (
	"github.com/spf13/cobra"

	"botstats/core"
	"botstats/internal/contract"
)

// importCmd scans repositories and replaces the stored snapshot.
var importCmd = &cobra.Command{
	Use:   "import [repo-dir...]",
	Short: "Scan local repositories and load their bot commits into the database.",
	Long: `Scan each given directory as a Git repository and rebuild the database
from what is found.

For every repository the scan records:
- whether its tracked content contains the marker token
- one row per commit authored by an allow-listed bot identity

The database tables are dropped and recreated on every run, so the stored
data always reflects exactly the latest import.

Examples:
  # Import a whole fleet checkout
  botstats import ~/fleet/*

  # Import into a specific database file
  botstats import --database fleet.db ~/fleet/*

  # Track a different marker token
  botstats import --marker-token my-token ~/fleet/*`,
	Args:    cobra.ArbitraryArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteImport(rootCtx, cfg, gitClient, dataStore, args); err != nil {
			contract.LogFatal("Cannot run import", err)
		}
	},
}
