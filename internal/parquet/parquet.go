// Package parquet exports scan snapshots and import-run history to Parquet
// files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"botstats/schema"
)

// Repo maps to the bot_repos database table.
type Repo struct {
	// Name is the repository's directory name
	Name string `parquet:"name,snappy"`

	// HasMarker reports whether the repository's tracked content contains
	// the marker token
	HasMarker bool `parquet:"has_marker,snappy"`
}

// Commit maps to the bot_commits database table.
type Commit struct {
	// RepoName references the repository the commit belongs to
	RepoName string `parquet:"repo_name,snappy"`

	// Date is the commit's calendar date in YYYY-MM-DD form
	Date string `parquet:"commit_date,snappy"`

	// AuthorEmail is the allow-listed bot identity that authored the commit
	AuthorEmail string `parquet:"author_email,snappy"`
}

// ImportRun maps to the bot_import_runs database table.
type ImportRun struct {
	// RunID is the unique identifier for this import run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the import began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the import completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// ReposScanned is the number of repository records imported
	ReposScanned int32 `parquet:"repos_scanned,snappy"`

	// CommitsImported is the number of commit records imported
	CommitsImported int32 `parquet:"commits_imported,snappy"`
}

// writeParquet creates the output file and writes all records through a
// generic writer whose schema is inferred from the struct tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteReposParquet writes a slice of Repo structs to a Parquet file.
func WriteReposParquet(data []Repo, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteCommitsParquet writes a slice of Commit structs to a Parquet file.
func WriteCommitsParquet(data []Commit, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteImportRunsParquet writes a slice of ImportRun structs to a Parquet file.
func WriteImportRunsParquet(data []ImportRun, outputPath string) error {
	return writeParquet(data, outputPath)
}

// ConvertRepoRecords converts schema.RepoRecord to Repo for Parquet export.
func ConvertRepoRecords(records []schema.RepoRecord) []Repo {
	result := make([]Repo, len(records))
	for i, record := range records {
		result[i] = Repo{
			Name:      record.Name,
			HasMarker: record.HasMarker,
		}
	}
	return result
}

// ConvertCommitRecords converts schema.CommitRecord to Commit for Parquet export.
func ConvertCommitRecords(records []schema.CommitRecord) []Commit {
	result := make([]Commit, len(records))
	for i, record := range records {
		result[i] = Commit{
			RepoName:    record.RepoName,
			Date:        record.Date,
			AuthorEmail: record.AuthorEmail,
		}
	}
	return result
}

// ConvertImportRunRecords converts schema.ImportRunRecord to ImportRun for Parquet export.
func ConvertImportRunRecords(records []schema.ImportRunRecord) []ImportRun {
	result := make([]ImportRun, len(records))
	for i, record := range records {
		result[i] = ImportRun{
			RunID:           record.RunID,
			StartTime:       record.StartTime,
			EndTime:         record.EndTime,
			ReposScanned:    record.ReposScanned,
			CommitsImported: record.CommitsImported,
		}
	}
	return result
}
