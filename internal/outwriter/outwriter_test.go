package outwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botstats/internal/contract"
	"botstats/schema"
)

func testWriterConfig(t *testing.T) *contract.Config {
	t.Helper()
	return &contract.Config{
		ChartsDir: filepath.Join(t.TempDir(), "charts"),
		Precision: 1,
		Width:     80,
	}
}

func assertChartWritten(t *testing.T, cfg *contract.Config, name schema.ChartName) {
	t.Helper()
	path := filepath.Join(cfg.ChartsDir, string(name)+".png")
	info, err := os.Stat(path)
	require.NoError(t, err, "chart image %s should exist", path)
	assert.Positive(t, info.Size())
}

func TestWriteMonthly(t *testing.T) {
	cfg := testWriterConfig(t)
	rows := []schema.MonthlyCount{
		{Month: "2024-01", RepoCount: 2, CommitCount: 5},
		{Month: "2024-02", RepoCount: 3, CommitCount: 8},
	}

	require.NoError(t, NewOutWriter().WriteMonthly(rows, cfg))
	assertChartWritten(t, cfg, schema.MonthlyChart)
}

func TestWriteAdoption(t *testing.T) {
	cfg := testWriterConfig(t)
	curve := []schema.AdoptionPoint{
		{Month: "2024-01", WithMarker: 1, WithoutMarker: 2},
		{Month: "2024-02", WithMarker: 3, WithoutMarker: 2},
	}

	require.NoError(t, NewOutWriter().WriteAdoption(curve, cfg))
	assertChartWritten(t, cfg, schema.AdoptionChart)
}

func TestWriteTopRepos(t *testing.T) {
	cfg := testWriterConfig(t)
	rows := []schema.RepoVolume{
		{Name: "alpha", HasMarker: true, CommitCount: 12},
		{Name: "a-repository-with-a-very-long-name-that-needs-truncation", HasMarker: false, CommitCount: 4},
	}

	require.NoError(t, NewOutWriter().WriteTopRepos(rows, cfg))
	assertChartWritten(t, cfg, schema.TopChart)
}

func TestWriteProportions(t *testing.T) {
	cfg := testWriterConfig(t)
	p := schema.MarkerProportions{TotalRepos: 4, MarkerRepos: 3, TotalCommits: 20, MarkerCommits: 15}

	require.NoError(t, NewOutWriter().WriteProportions(p, cfg))
	assertChartWritten(t, cfg, schema.ProportionsChart)
}

func TestWriteEmptyReports(t *testing.T) {
	// An empty database is not an error; tables and charts are still
	// produced.
	cfg := testWriterConfig(t)
	ow := NewOutWriter()

	require.NoError(t, ow.WriteMonthly(nil, cfg))
	require.NoError(t, ow.WriteAdoption(nil, cfg))
	require.NoError(t, ow.WriteTopRepos(nil, cfg))
	require.NoError(t, ow.WriteProportions(schema.MarkerProportions{}, cfg))
}

func TestGetMaxTableNameWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"narrow floor", 20, 15},
		{"default fallback width", 80, 50},
		{"wide cap", 200, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.want, getMaxTableNameWidth(cfg))
		})
	}
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short", truncateName("short", 20))
	assert.Equal(t, "exact", truncateName("exact", 5))
	assert.Equal(t, "longer-na...", truncateName("longer-name-here", 12))
	assert.Equal(t, "abc", truncateName("abcdef", 3))
}

func TestThinLabels(t *testing.T) {
	few := []string{"2024-01", "2024-02"}
	assert.Equal(t, few, thinLabels(few))

	many := make([]string, 24)
	for i := range many {
		many[i] = "m"
	}
	thinned := thinLabels(many)
	require.Len(t, thinned, 24)

	kept := 0
	for _, label := range thinned {
		if label != "" {
			kept++
		}
	}
	assert.LessOrEqual(t, kept, maxAxisLabels)
	assert.NotEmpty(t, thinned[0], "first label is always kept")
}

func TestMonthTicks(t *testing.T) {
	ticks := monthTicks([]string{"2024-01", "2024-02", "2024-03"})
	require.Len(t, ticks, 3)
	assert.Equal(t, 0.0, ticks[0].Value)
	assert.Equal(t, "2024-01", ticks[0].Label)
	assert.Equal(t, 2.0, ticks[2].Value)
}

func TestFmtPercent(t *testing.T) {
	assert.Equal(t, "25.0%", fmtPercent(0.25, 1))
	assert.Equal(t, "33.33%", fmtPercent(1.0/3.0, 2))
	assert.Equal(t, "0.0%", fmtPercent(0, 1))
	assert.Equal(t, "100.0%", fmtPercent(1, 1))
}

func TestMarkerLabel(t *testing.T) {
	plain := &contract.Config{UseColors: false}
	assert.Equal(t, "yes", markerLabel(true, plain))
	assert.Equal(t, "no", markerLabel(false, plain))

	colored := &contract.Config{UseColors: true}
	assert.Contains(t, markerLabel(true, colored), "yes")
	assert.Contains(t, markerLabel(false, colored), "no")
}
