package services_test

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"threadline/internal/repos"
)

// newTestDB opens a throwaway sqlite file seeded with the demo catalog and
// users, mirroring what the app gets on first boot.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
