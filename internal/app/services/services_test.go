package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/studysphere/backend/internal/app/migrations"
	"github.com/studysphere/backend/internal/app/repositories"
)

// newTestRepos wires the full repository set over a throwaway database
func newTestRepos(t *testing.T) *repositories.Repositories {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.NewMigrator(db).Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return repositories.NewRepositories(db)
}

func strPtr(s string) *string {
	return &s
}
