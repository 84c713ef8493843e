// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"botstats/schema"
)

// GitClient defines the git operations the scanner needs.
// This allows the scan logic to be tested without a real git executable.
type GitClient interface {
	// Run executes a git command and returns the combined output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// HasMarkerToken reports whether the repository's tracked content
	// contains the literal token. The grep exit status is the answer, not
	// an error: only an exec-level failure (e.g. git missing from PATH)
	// returns a non-nil error.
	HasMarkerToken(ctx context.Context, repoPath, token string) (bool, error)

	// BotCommitLog returns the raw commit log restricted to the given
	// author identities, one "<date> <author_email>" line per commit.
	BotCommitLog(ctx context.Context, repoPath string, authors []string) ([]byte, error)
}

// Store defines the persistence operations for one import run and the
// read-only queries the reporter consumes. This allows mocking the store
// for testing.
type Store interface {
	// Replace rebuilds the two core tables from one scanner pass.
	// The whole load happens in a single transaction committed at the end.
	Replace(ctx context.Context, result schema.ScanResult) error

	// BeginImportRun records the start of an import and returns its run ID.
	BeginImportRun(ctx context.Context, start time.Time) (int64, error)

	// EndImportRun records completion counts for an import run.
	EndImportRun(ctx context.Context, runID int64, end time.Time, repos, commits int) error

	// MonthlyCounts returns commit and repository counts per calendar month.
	MonthlyCounts(ctx context.Context) ([]schema.MonthlyCount, error)

	// FirstCommitByRepo returns each repository's earliest commit month.
	FirstCommitByRepo(ctx context.Context) ([]schema.RepoFirstCommit, error)

	// TopRepos returns the limit repositories with the most commits.
	TopRepos(ctx context.Context, limit int) ([]schema.RepoVolume, error)

	// MarkerProportions returns fleet-wide marker adoption counts.
	MarkerProportions(ctx context.Context) (schema.MarkerProportions, error)

	// Repos returns all repository rows, ordered by name.
	Repos(ctx context.Context) ([]schema.RepoRecord, error)

	// Commits returns all commit rows in insertion order.
	Commits(ctx context.Context) ([]schema.CommitRecord, error)

	// ImportRuns returns all bookkeeping rows, oldest first.
	ImportRuns(ctx context.Context) ([]schema.ImportRunRecord, error)

	// Close closes the underlying connection.
	Close() error
}
