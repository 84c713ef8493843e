package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"botstats/internal/contract"
	"botstats/internal/store"
)

// migrateCmd manages the versioned schema of the bookkeeping table.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations for the import-run bookkeeping table.",
	Long: `Apply or roll back versioned migrations for the bot_import_runs table.

The scan tables (bot_repos, bot_commits) are rebuilt wholesale on every
import and are not migration-managed.

Examples:
  # Migrate to the latest version
  botstats migrate

  # Roll back everything
  botstats migrate --target-version 0`,
	PreRunE: configSetup,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := store.Migrate(cfg, targetVersion); err != nil {
			contract.LogFatal("Cannot run migrations", err)
		}
	},
}
