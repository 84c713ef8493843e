// Package core holds the scan, import and report orchestration for botstats.
package core

import (
	"context"
	"fmt"
	"os"
	"strings"

	"botstats/internal/contract"
	"botstats/schema"
)

// ScanRepos walks the given filesystem paths sequentially and extracts one
// RepoRecord per repository directory plus the allow-listed bot commits.
//
// Paths that are not directories are skipped silently. A failed commit
// listing is logged as a warning and leaves the repository with zero
// commits. Only an exec-level git failure (e.g. binary not installed)
// aborts the scan.
func ScanRepos(ctx context.Context, client contract.GitClient, cfg *contract.Config, paths []string) (schema.ScanResult, error) {
	var result schema.ScanResult

	allowed := make(map[string]struct{}, len(cfg.Authors))
	for _, author := range cfg.Authors {
		allowed[author] = struct{}{}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		name := contract.RepoNameFromPath(path)

		hasMarker, err := client.HasMarkerToken(ctx, path, cfg.MarkerToken)
		if err != nil {
			return schema.ScanResult{}, fmt.Errorf("marker check failed for %q: %w", name, err)
		}

		// The repository row is emitted regardless of what the commit
		// listing does below.
		result.Repos = append(result.Repos, schema.RepoRecord{Name: name, HasMarker: hasMarker})

		out, err := client.BotCommitLog(ctx, path, cfg.Authors)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("could not list commits for %q", name), err)
			continue
		}

		result.Commits = append(result.Commits, parseCommitLines(name, string(out), allowed)...)
	}

	return result, nil
}

// parseCommitLines splits raw "<date> <author_email>" log output into commit
// records, keeping log order. Each line is split on the first whitespace run;
// the remainder is the author email. Lines without a calendar date and
// authors outside the allow-list are dropped here, during extraction, so
// they never reach storage.
func parseCommitLines(repoName, out string, allowed map[string]struct{}) []schema.CommitRecord {
	var commits []schema.CommitRecord
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		date, rest, ok := strings.Cut(line, " ")
		if !ok || contract.ValidateCommitDate(date) != nil {
			continue
		}
		author := strings.TrimSpace(rest)
		if _, ok := allowed[author]; !ok {
			continue
		}
		commits = append(commits, schema.CommitRecord{
			RepoName:    repoName,
			Date:        date,
			AuthorEmail: author,
		})
	}
	return commits
}
