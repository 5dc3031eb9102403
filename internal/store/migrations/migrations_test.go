package migrations

import (
	"database/sql"
	"testing"
	"testing/fstest"

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

func TestLoad(t *testing.T) {
	migrations, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	require.Equal(t, 1, migrations[0].Version)
	require.Equal(t, "memos", migrations[0].Description)
}

func TestLoadRejectsDuplicateVersions(t *testing.T) {
	fsys := fstest.MapFS{
		"sql/01_first.sql":  {Data: []byte("CREATE TABLE a (id TEXT)")},
		"sql/01_second.sql": {Data: []byte("CREATE TABLE b (id TEXT)")},
	}

	_, err := loadFS(fsys)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate version 1")
}

func TestRunIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Run(db))
	first, err := CurrentVersion(db)
	require.NoError(t, err)
	require.Greater(t, first, 0)

	require.NoError(t, Run(db))
	second, err := CurrentVersion(db)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// The schema is usable after both runs.
	_, err = db.Exec(`INSERT INTO memos (id, text) VALUES ('x', 'hello')`)
	require.NoError(t, err)
}

func TestCurrentVersionOnFreshDB(t *testing.T) {
	db := openTestDB(t)

	version, err := CurrentVersion(db)
	require.NoError(t, err)
	require.Equal(t, 0, version)
}
