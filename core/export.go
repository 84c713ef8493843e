package core

import (
	"context"
	"errors"
	"fmt"

	"botstats/internal/contract"
	"botstats/internal/parquet"
)

// ExecuteExport writes the stored scan snapshot and import-run history to
// Parquet files, one per table, under the given output prefix.
func ExecuteExport(ctx context.Context, store contract.Store, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	repos, err := store.Repos(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve repositories: %w", err)
	}
	if len(repos) == 0 {
		return errors.New("no scan data found to export. Run import first")
	}

	commits, err := store.Commits(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve commits: %w", err)
	}

	importRuns, err := store.ImportRuns(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve import runs: %w", err)
	}

	reposFile := outputFile + ".repos.parquet"
	if err := parquet.WriteReposParquet(parquet.ConvertRepoRecords(repos), reposFile); err != nil {
		return fmt.Errorf("failed to write repositories: %w", err)
	}
	fmt.Printf("Exported %d repositories to: %s\n", len(repos), reposFile)

	commitsFile := outputFile + ".commits.parquet"
	if err := parquet.WriteCommitsParquet(parquet.ConvertCommitRecords(commits), commitsFile); err != nil {
		return fmt.Errorf("failed to write commits: %w", err)
	}
	fmt.Printf("Exported %d commits to: %s\n", len(commits), commitsFile)

	runsFile := outputFile + ".import_runs.parquet"
	if err := parquet.WriteImportRunsParquet(parquet.ConvertImportRunRecords(importRuns), runsFile); err != nil {
		return fmt.Errorf("failed to write import runs: %w", err)
	}
	fmt.Printf("Exported %d import runs to: %s\n", len(importRuns), runsFile)

	return nil
}
