package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botstats/schema"
)

func TestConvertRepoRecords(t *testing.T) {
	records := []schema.RepoRecord{
		{Name: "alpha", HasMarker: true},
		{Name: "beta", HasMarker: false},
	}

	converted := ConvertRepoRecords(records)
	require.Len(t, converted, 2)
	assert.Equal(t, Repo{Name: "alpha", HasMarker: true}, converted[0])
	assert.Equal(t, Repo{Name: "beta", HasMarker: false}, converted[1])
}

func TestConvertCommitRecords(t *testing.T) {
	records := []schema.CommitRecord{
		{RepoName: "alpha", Date: "2024-01-15", AuthorEmail: "bot@example.com"},
	}

	converted := ConvertCommitRecords(records)
	require.Len(t, converted, 1)
	assert.Equal(t, Commit{RepoName: "alpha", Date: "2024-01-15", AuthorEmail: "bot@example.com"}, converted[0])
}

func TestConvertImportRunRecords(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Second)

	records := []schema.ImportRunRecord{
		{RunID: 1, StartTime: start, EndTime: &end, ReposScanned: 5, CommitsImported: 42},
		{RunID: 2, StartTime: start, EndTime: nil},
	}

	converted := ConvertImportRunRecords(records)
	require.Len(t, converted, 2)
	assert.Equal(t, int64(1), converted[0].RunID)
	assert.Equal(t, &end, converted[0].EndTime)
	assert.Equal(t, int32(42), converted[0].CommitsImported)
	assert.Nil(t, converted[1].EndTime)
}

func TestWriteReposParquet_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repos.parquet")
	repos := []Repo{
		{Name: "alpha", HasMarker: true},
		{Name: "beta", HasMarker: false},
	}

	require.NoError(t, WriteReposParquet(repos, path))

	readBack, err := parquet.ReadFile[Repo](path)
	require.NoError(t, err)
	assert.Equal(t, repos, readBack)
}

func TestWriteCommitsParquet_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commits.parquet")
	commits := []Commit{
		{RepoName: "alpha", Date: "2024-01-15", AuthorEmail: "bot@example.com"},
		{RepoName: "alpha", Date: "2024-01-16", AuthorEmail: "bot@example.com"},
		{RepoName: "beta", Date: "2024-02-01", AuthorEmail: "other-bot@example.com"},
	}

	require.NoError(t, WriteCommitsParquet(commits, path))

	readBack, err := parquet.ReadFile[Commit](path)
	require.NoError(t, err)
	assert.Equal(t, commits, readBack)
}

func TestWriteImportRunsParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.parquet")
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Second)

	runs := []ImportRun{
		{RunID: 1, StartTime: start, EndTime: &end, ReposScanned: 3, CommitsImported: 17},
	}

	require.NoError(t, WriteImportRunsParquet(runs, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestWriteParquet_EmptySlices(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WriteReposParquet(nil, filepath.Join(dir, "repos.parquet")))
	require.NoError(t, WriteCommitsParquet(nil, filepath.Join(dir, "commits.parquet")))
	require.NoError(t, WriteImportRunsParquet(nil, filepath.Join(dir, "runs.parquet")))
}

func TestWriteParquet_BadPath(t *testing.T) {
	err := WriteReposParquet([]Repo{{Name: "x"}}, filepath.Join(t.TempDir(), "missing", "out.parquet"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}
