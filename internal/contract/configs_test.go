package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botstats/schema"
)

// validRawInput returns a raw input that passes validation, for tests to
// perturb one field at a time.
func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		Database:    DefaultDatabasePath,
		DBBackend:   string(schema.SQLiteBackend),
		MarkerToken: DefaultMarkerToken,
		Authors:     DefaultAuthors,
		ChartsDir:   DefaultChartsDir,
		Limit:       DefaultTopLimit,
		Precision:   DefaultPrecision,
		Color:       "yes",
	}
}

func TestProcessAndValidate_Defaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validRawInput()))

	assert.Equal(t, schema.SQLiteBackend, cfg.DBBackend)
	assert.Equal(t, DefaultDatabasePath, cfg.DatabasePath)
	assert.Equal(t, DefaultMarkerToken, cfg.MarkerToken)
	assert.Equal(t, DefaultAuthors, cfg.Authors)
	assert.Equal(t, DefaultTopLimit, cfg.TopLimit)
	assert.True(t, cfg.UseColors)
}

func TestProcessAndValidate_BackendCaseInsensitive(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()
	input.DBBackend = "SQLite"
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, schema.SQLiteBackend, cfg.DBBackend)
}

func TestProcessAndValidate_InvalidBackend(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()
	input.DBBackend = "oracle"
	err := ProcessAndValidate(cfg, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid db backend")
}

func TestProcessAndValidate_EmptyDatabasePath(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()
	input.Database = ""
	err := ProcessAndValidate(cfg, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database path")
}

func TestProcessAndValidate_EmptyMarkerToken(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()
	input.MarkerToken = "   "
	err := ProcessAndValidate(cfg, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marker token")
}

func TestProcessAndValidate_AuthorTrimming(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()
	input.Authors = []string{" bot@example.com ", "", "other@example.com"}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, []string{"bot@example.com", "other@example.com"}, cfg.Authors)
}

func TestProcessAndValidate_NoAuthors(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()
	input.Authors = []string{"", "   "}
	err := ProcessAndValidate(cfg, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one allow-listed author")
}

func TestProcessAndValidate_LimitBounds(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		wantErr bool
	}{
		{"zero", 0, true},
		{"negative", -5, true},
		{"one", 1, false},
		{"max", MaxTopLimit, false},
		{"beyond max", MaxTopLimit + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			input := validRawInput()
			input.Limit = tt.limit
			err := ProcessAndValidate(cfg, input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidate_PrecisionBounds(t *testing.T) {
	for _, precision := range []int{0, 3} {
		cfg := &Config{}
		input := validRawInput()
		input.Precision = precision
		err := ProcessAndValidate(cfg, input)
		assert.Error(t, err, "precision %d should be rejected", precision)
	}
}

func TestProcessAndValidate_InvalidColor(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()
	input.Color = "maybe"
	err := ProcessAndValidate(cfg, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--color")
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.DatabaseBackend
		connStr string
		wantErr bool
	}{
		{"sqlite ignores connect string", schema.SQLiteBackend, "", false},
		{"mysql valid", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/botstats", false},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"mysql missing tcp", schema.MySQLBackend, "user:pass/botstats", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost dbname=botstats", false},
		{"postgres empty", schema.PostgreSQLBackend, "", true},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCommitDate(t *testing.T) {
	assert.NoError(t, ValidateCommitDate("2024-02-29"))
	assert.Error(t, ValidateCommitDate("2023-02-29"))
	assert.Error(t, ValidateCommitDate("15-01-2024"))
	assert.Error(t, ValidateCommitDate("not-a-date"))
}
