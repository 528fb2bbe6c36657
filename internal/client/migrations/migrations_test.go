package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestUp_CreatesTables(t *testing.T) {
	db := openDB(t)
	require.NoError(t, Up(context.Background(), db))

	for _, name := range []string{"venues", "users", "kv", "goose_db_version"} {
		assert.True(t, tableExists(t, db, name), "table %s must exist", name)
	}
}

func TestUp_IsIdempotent(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	require.NoError(t, Up(ctx, db))
	_, err := db.Exec(`INSERT INTO kv(key, value) VALUES ('k', 'v')`)
	require.NoError(t, err)

	require.NoError(t, Up(ctx, db), "second run must be a no-op")

	var v string
	require.NoError(t, db.QueryRow(`SELECT value FROM kv WHERE key = 'k'`).Scan(&v))
	assert.Equal(t, "v", v, "existing data must survive")
}

func TestUp_EmailIsCaseInsensitiveUnique(t *testing.T) {
	db := openDB(t)
	require.NoError(t, Up(context.Background(), db))

	_, err := db.Exec(`INSERT INTO users(stable_id, name, email, password, created_at) VALUES ('a', 'A', 'ana@example.com', 'x', 'now')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO users(stable_id, name, email, password, created_at) VALUES ('b', 'B', 'ANA@example.com', 'x', 'now')`)
	require.Error(t, err)
}
