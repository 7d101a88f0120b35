// Package testutil provides shared helpers for tests that need a real
// storage backend. SQLite databases live in the test's temp directory, so
// every test gets an isolated store with no cleanup SQL.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/mkessler/hobby-tracker/internal/repo"
)

// NewSQLiteDB opens a fresh SQLite database in t.TempDir() with all
// migrations applied. The connection is closed automatically when the test
// (and all its subtests) finish; the file disappears with the temp dir.
func NewSQLiteDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hobbies.db")
	db, err := repo.OpenSQLite(context.Background(), path)
	if err != nil {
		t.Fatalf("testutil.NewSQLiteDB: open: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}
