package migrations

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad_ReturnsOrderedMigrations(t *testing.T) {
	migrations, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	for i := 1; i < len(migrations); i++ {
		require.Greater(t, migrations[i].Version, migrations[i-1].Version)
	}
	require.Equal(t, 1, migrations[0].Version)
	require.Equal(t, "create_history", migrations[0].Description)
}

func TestRun_AppliesAndRecords(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Run(db))

	current, err := CurrentVersion(db)
	require.NoError(t, err)
	require.GreaterOrEqual(t, current, 1)

	// history table should exist after migration 1
	_, err = db.Exec("SELECT id, command, call_path, response, succeeded, created_at FROM command_history LIMIT 1")
	require.NoError(t, err)
}

func TestRun_IsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Run(db))
	first, err := CurrentVersion(db)
	require.NoError(t, err)

	require.NoError(t, Run(db))
	second, err := CurrentVersion(db)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestParseFilename(t *testing.T) {
	version, description, err := parseFilename("02_add_index.sql")
	require.NoError(t, err)
	require.Equal(t, 2, version)
	require.Equal(t, "add_index", description)

	_, _, err = parseFilename("nope.sql")
	require.Error(t, err)
}
