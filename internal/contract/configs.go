package contract

import (
	"fmt"
	"strings"
	"time"

	"botstats/schema"
)

// Default values for configuration.
const (
	DefaultDatabasePath = "commits.db"
	DefaultChartsDir    = "charts"
	DefaultTopLimit     = 20
	MaxTopLimit         = 200
	DefaultPrecision    = 1
	DefaultMarkerToken  = "x-checker-data"
)

// DefaultAuthors is the fixed allow-list of bot identities whose commits
// are retained for analysis.
var DefaultAuthors = []string{
	"desktop@endlessm.com",
	"41898282+github-actions[bot]@users.noreply.github.com",
}

// DateFormat is the calendar date representation used throughout.
const DateFormat = "2006-01-02"

// Config holds the validated runtime configuration passed into each
// component at construction.
type Config struct {
	DatabasePath string // SQLite database file path
	DBBackend    schema.DatabaseBackend
	DBConnect    string // Connection string for mysql/postgresql backends

	MarkerToken string
	Authors     []string

	ChartsDir string
	TopLimit  int
	Precision int
	UseColors bool
	Width     int // Terminal width override (0 = auto-detect)

	OutputFile string // Parquet export prefix
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	Database    string   `mapstructure:"database"`
	DBBackend   string   `mapstructure:"db-backend"`
	DBConnect   string   `mapstructure:"db-connect"`
	MarkerToken string   `mapstructure:"marker-token"`
	Authors     []string `mapstructure:"author"`
	ChartsDir   string   `mapstructure:"charts-dir"`
	Limit       int      `mapstructure:"limit"`
	Precision   int      `mapstructure:"precision"`
	Color       string   `mapstructure:"color"`
	Width       int      `mapstructure:"width"`
	OutputFile  string   `mapstructure:"output-file"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Database Backend Validation ---
	cfg.DBBackend = schema.DatabaseBackend(strings.ToLower(input.DBBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.DBBackend]; !ok {
		return fmt.Errorf("invalid db backend '%s'. must be sqlite, mysql, postgresql", input.DBBackend)
	}
	cfg.DatabasePath = input.Database
	cfg.DBConnect = input.DBConnect
	if err := ValidateDatabaseConnectionString(cfg.DBBackend, cfg.DBConnect); err != nil {
		return err
	}
	if cfg.DBBackend == schema.SQLiteBackend && cfg.DatabasePath == "" {
		return fmt.Errorf("database path must not be empty for the sqlite backend")
	}

	// --- 2. Scanner Inputs ---
	cfg.MarkerToken = strings.TrimSpace(input.MarkerToken)
	if cfg.MarkerToken == "" {
		return fmt.Errorf("marker token must not be empty")
	}
	for _, author := range input.Authors {
		author = strings.TrimSpace(author)
		if author == "" {
			continue
		}
		cfg.Authors = append(cfg.Authors, author)
	}
	if len(cfg.Authors) == 0 {
		return fmt.Errorf("at least one allow-listed author is required")
	}

	// --- 3. Reporter Inputs ---
	cfg.ChartsDir = input.ChartsDir
	if cfg.ChartsDir == "" {
		return fmt.Errorf("charts dir must not be empty")
	}
	if input.Limit <= 0 || input.Limit > MaxTopLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxTopLimit, input.Limit)
	}
	cfg.TopLimit = input.Limit
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	cfg.OutputFile = input.OutputFile

	return nil
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ValidateCommitDate reports whether a scanned date token is a calendar
// date in YYYY-MM-DD form.
func ValidateCommitDate(date string) error {
	if _, err := time.Parse(DateFormat, date); err != nil {
		return fmt.Errorf("invalid commit date %q: %w", date, err)
	}
	return nil
}
