package store

import (
	"context"
	"fmt"
	"time"

	"botstats/schema"
)

// monthExpr returns the backend-specific SQL expression that truncates a
// commit date to its YYYY-MM month key.
func monthExpr(column string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("DATE_FORMAT(%s, '%%Y-%%m')", column)
	case schema.PostgreSQLBackend:
		return fmt.Sprintf("to_char(%s, 'YYYY-MM')", column)
	default: // SQLite stores dates as TEXT
		return fmt.Sprintf("substr(%s, 1, 7)", column)
	}
}

// dateExpr returns the backend-specific SQL expression that renders a
// commit date as a YYYY-MM-DD string.
func dateExpr(column string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("DATE_FORMAT(%s, '%%Y-%%m-%%d')", column)
	case schema.PostgreSQLBackend:
		return fmt.Sprintf("to_char(%s, 'YYYY-MM-DD')", column)
	default: // SQLite stores dates as TEXT
		return column
	}
}

// MonthlyCounts returns, per calendar month, how many distinct repositories
// saw bot commits and how many bot commits landed in total.
func (s *SQLStore) MonthlyCounts(ctx context.Context) ([]schema.MonthlyCount, error) {
	month := monthExpr("commit_date", s.backend)
	query := fmt.Sprintf(`
		SELECT %s AS month, COUNT(DISTINCT repo_name), COUNT(*)
		FROM %s
		GROUP BY month
		ORDER BY month
	`, month, quoteTableName(commitsTable, s.backend))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly counts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.MonthlyCount
	for rows.Next() {
		var row schema.MonthlyCount
		if err := rows.Scan(&row.Month, &row.RepoCount, &row.CommitCount); err != nil {
			return nil, fmt.Errorf("failed to scan monthly count: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly counts: %w", err)
	}
	return results, nil
}

// FirstCommitByRepo returns each repository's earliest bot commit month
// together with its marker flag. Repositories without any commits are
// absent from the result.
func (s *SQLStore) FirstCommitByRepo(ctx context.Context) ([]schema.RepoFirstCommit, error) {
	month := monthExpr("c.commit_date", s.backend)
	query := fmt.Sprintf(`
		SELECT r.name, r.has_marker, MIN(%s) AS first_month
		FROM %s c
		JOIN %s r ON r.name = c.repo_name
		GROUP BY r.name, r.has_marker
		ORDER BY first_month, r.name
	`, month, quoteTableName(commitsTable, s.backend), quoteTableName(reposTable, s.backend))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query first commits: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.RepoFirstCommit
	for rows.Next() {
		var row schema.RepoFirstCommit
		if err := rows.Scan(&row.Name, &row.HasMarker, &row.FirstMonth); err != nil {
			return nil, fmt.Errorf("failed to scan first commit: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating first commits: %w", err)
	}
	return results, nil
}

// TopRepos returns the limit repositories with the most bot commits,
// busiest first, ties broken by name.
func (s *SQLStore) TopRepos(ctx context.Context, limit int) ([]schema.RepoVolume, error) {
	var limitClause string
	switch s.backend {
	case schema.PostgreSQLBackend:
		limitClause = "LIMIT $1"
	default: // SQLite and MySQL
		limitClause = "LIMIT ?"
	}
	query := fmt.Sprintf(`
		SELECT r.name, r.has_marker, COUNT(*) AS commit_count
		FROM %s c
		JOIN %s r ON r.name = c.repo_name
		GROUP BY r.name, r.has_marker
		ORDER BY commit_count DESC, r.name
		%s
	`, quoteTableName(commitsTable, s.backend), quoteTableName(reposTable, s.backend), limitClause)

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top repositories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.RepoVolume
	for rows.Next() {
		var row schema.RepoVolume
		if err := rows.Scan(&row.Name, &row.HasMarker, &row.CommitCount); err != nil {
			return nil, fmt.Errorf("failed to scan top repository: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top repositories: %w", err)
	}
	return results, nil
}

// MarkerProportions returns fleet-wide adoption counts: how many
// repositories carry the marker and how many commits landed in them.
func (s *SQLStore) MarkerProportions(ctx context.Context) (schema.MarkerProportions, error) {
	var p schema.MarkerProportions

	repoQuery := fmt.Sprintf(`
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN has_marker THEN 1 ELSE 0 END), 0)
		FROM %s
	`, quoteTableName(reposTable, s.backend))
	if err := s.db.QueryRowContext(ctx, repoQuery).Scan(&p.TotalRepos, &p.MarkerRepos); err != nil {
		return p, fmt.Errorf("failed to query repository proportions: %w", err)
	}

	commitQuery := fmt.Sprintf(`
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN r.has_marker THEN 1 ELSE 0 END), 0)
		FROM %s c
		JOIN %s r ON r.name = c.repo_name
	`, quoteTableName(commitsTable, s.backend), quoteTableName(reposTable, s.backend))
	if err := s.db.QueryRowContext(ctx, commitQuery).Scan(&p.TotalCommits, &p.MarkerCommits); err != nil {
		return p, fmt.Errorf("failed to query commit proportions: %w", err)
	}

	return p, nil
}

// Repos returns all repository rows, ordered by name.
func (s *SQLStore) Repos(ctx context.Context) ([]schema.RepoRecord, error) {
	query := fmt.Sprintf("SELECT name, has_marker FROM %s ORDER BY name", quoteTableName(reposTable, s.backend))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query repositories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.RepoRecord
	for rows.Next() {
		var row schema.RepoRecord
		if err := rows.Scan(&row.Name, &row.HasMarker); err != nil {
			return nil, fmt.Errorf("failed to scan repository: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating repositories: %w", err)
	}
	return results, nil
}

// Commits returns all commit rows in insertion order.
func (s *SQLStore) Commits(ctx context.Context) ([]schema.CommitRecord, error) {
	date := dateExpr("commit_date", s.backend)
	query := fmt.Sprintf("SELECT repo_name, %s, author_email FROM %s", date, quoteTableName(commitsTable, s.backend))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query commits: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.CommitRecord
	for rows.Next() {
		var row schema.CommitRecord
		if err := rows.Scan(&row.RepoName, &row.Date, &row.AuthorEmail); err != nil {
			return nil, fmt.Errorf("failed to scan commit: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating commits: %w", err)
	}
	return results, nil
}

// ImportRuns returns all bookkeeping rows, oldest first.
func (s *SQLStore) ImportRuns(ctx context.Context) ([]schema.ImportRunRecord, error) {
	query := fmt.Sprintf(`
		SELECT run_id, start_time, end_time, repos_scanned, commits_imported
		FROM %s ORDER BY run_id
	`, quoteTableName(importRunsTable, s.backend))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query import runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.ImportRunRecord
	for rows.Next() {
		var record schema.ImportRunRecord
		var repos, commits *int32

		switch s.backend {
		case schema.SQLiteBackend:
			var startTimeStr string
			var endTimeStr *string
			if err := rows.Scan(&record.RunID, &startTimeStr, &endTimeStr, &repos, &commits); err != nil {
				return nil, fmt.Errorf("failed to scan import run: %w", err)
			}
			startTime, err := time.Parse(time.RFC3339Nano, startTimeStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse start_time: %w", err)
			}
			record.StartTime = startTime
			if endTimeStr != nil {
				endTime, err := time.Parse(time.RFC3339Nano, *endTimeStr)
				if err != nil {
					return nil, fmt.Errorf("failed to parse end_time: %w", err)
				}
				record.EndTime = &endTime
			}
		default: // MySQL and PostgreSQL store native datetimes
			if err := rows.Scan(&record.RunID, &record.StartTime, &record.EndTime, &repos, &commits); err != nil {
				return nil, fmt.Errorf("failed to scan import run: %w", err)
			}
		}

		if repos != nil {
			record.ReposScanned = *repos
		}
		if commits != nil {
			record.CommitsImported = *commits
		}
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating import runs: %w", err)
	}
	return results, nil
}
