// Package schema declares the typed records and constants shared across botstats.
package schema

import "time"

// RepoRecord is one row of the bot_repos table: a scanned repository and
// whether its tracked content carries the marker token.
type RepoRecord struct {
	Name      string `json:"name"`
	HasMarker bool   `json:"has_marker"`
}

// CommitRecord is one row of the bot_commits table: a single allow-listed
// bot commit. Date is a calendar date in YYYY-MM-DD form; no time of day
// is retained.
type CommitRecord struct {
	RepoName    string `json:"repo_name"`
	Date        string `json:"date"`
	AuthorEmail string `json:"author_email"`
}

// ScanResult is the full output of one scanner pass over a repository list.
// Commits are kept in discovery order.
type ScanResult struct {
	Repos   []RepoRecord
	Commits []CommitRecord
}

// MonthlyCount is one row of the monthly report: commit and repository
// activity for a single calendar month (YYYY-MM).
type MonthlyCount struct {
	Month       string `json:"month"`
	RepoCount   int    `json:"repo_count"`
	CommitCount int    `json:"commit_count"`
}

// RepoFirstCommit pairs a repository with the date of its earliest
// allow-listed commit. It feeds the cumulative adoption curve.
type RepoFirstCommit struct {
	Name       string `json:"name"`
	HasMarker  bool   `json:"has_marker"`
	FirstMonth string `json:"first_month"`
}

// AdoptionPoint is one point on the cumulative adoption curve: how many
// repositories had seen their first bot commit by the end of Month, split
// by marker flag.
type AdoptionPoint struct {
	Month         string `json:"month"`
	WithMarker    int    `json:"with_marker"`
	WithoutMarker int    `json:"without_marker"`
}

// RepoVolume is one row of the top-repositories report.
type RepoVolume struct {
	Name        string `json:"name"`
	HasMarker   bool   `json:"has_marker"`
	CommitCount int    `json:"commit_count"`
}

// MarkerProportions summarizes marker adoption across the whole fleet.
type MarkerProportions struct {
	TotalRepos    int `json:"total_repos"`
	MarkerRepos   int `json:"marker_repos"`
	TotalCommits  int `json:"total_commits"`
	MarkerCommits int `json:"marker_commits"`
}

// RepoShare returns the fraction of repositories carrying the marker.
func (p MarkerProportions) RepoShare() float64 {
	if p.TotalRepos == 0 {
		return 0
	}
	return float64(p.MarkerRepos) / float64(p.TotalRepos)
}

// CommitShare returns the fraction of commits landing in marker repositories.
func (p MarkerProportions) CommitShare() float64 {
	if p.TotalCommits == 0 {
		return 0
	}
	return float64(p.MarkerCommits) / float64(p.TotalCommits)
}

// ImportRunRecord is one row of the bot_import_runs bookkeeping table.
type ImportRunRecord struct {
	RunID           int64
	StartTime       time.Time
	EndTime         *time.Time
	ReposScanned    int32
	CommitsImported int32
}
