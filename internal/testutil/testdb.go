package testutil

import (
	"database/sql"
	"testing"

	"briefgen/internal/history"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := history.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestStore creates a report history store backed by an in-memory
// database.
func NewTestStore(t *testing.T) *history.Store {
	t.Helper()
	return history.NewStore(NewTestDB(t))
}
