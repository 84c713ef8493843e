package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botstats/internal/contract"
	"botstats/schema"
)

func migrateTestConfig(dbPath string) *contract.Config {
	return &contract.Config{
		DBBackend:    schema.SQLiteBackend,
		DatabasePath: dbPath,
	}
}

func TestMigrate_SQLite(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test_migration.db")
	cfg := migrateTestConfig(dbPath)

	// Run migration to latest version
	err := Migrate(cfg, -1)
	require.NoError(t, err)

	// Verify migration was successful by checking the database file exists
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)

	// Run migration again (should be a no-op)
	err = Migrate(cfg, -1)
	assert.NoError(t, err)

	// Run migration to a specific version (version 1)
	err = Migrate(cfg, 1)
	assert.NoError(t, err)

	// Rollback to version 0
	err = Migrate(cfg, 0)
	assert.NoError(t, err)

	// Migrate back up to the latest version
	err = Migrate(cfg, -1)
	assert.NoError(t, err)
}

func TestMigrate_SQLiteInMemory(t *testing.T) {
	err := Migrate(migrateTestConfig(":memory:"), -1)
	require.NoError(t, err)
}

func TestMigrate_UnsupportedBackend(t *testing.T) {
	cfg := &contract.Config{DBBackend: schema.DatabaseBackend("oracle")}
	err := Migrate(cfg, -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}
