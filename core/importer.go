package core

import (
	"context"
	"fmt"
	"time"

	"botstats/internal/contract"
)

// ExecuteImport scans the given repository paths and replaces the stored
// snapshot with the scan result. Each run is bracketed by an import-run
// bookkeeping row so that successive imports remain auditable.
func ExecuteImport(ctx context.Context, cfg *contract.Config, client contract.GitClient, store contract.Store, paths []string) error {
	start := time.Now()
	runID, err := store.BeginImportRun(ctx, start)
	if err != nil {
		return fmt.Errorf("could not record import run: %w", err)
	}

	result, err := ScanRepos(ctx, client, cfg, paths)
	if err != nil {
		return err
	}

	if err := store.Replace(ctx, result); err != nil {
		return fmt.Errorf("could not store scan result: %w", err)
	}

	if err := store.EndImportRun(ctx, runID, time.Now(), len(result.Repos), len(result.Commits)); err != nil {
		return fmt.Errorf("could not finalize import run: %w", err)
	}

	fmt.Printf("Imported %d repositories and %d commits\n", len(result.Repos), len(result.Commits))
	return nil
}
