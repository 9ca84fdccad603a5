package testutil

import (
	"database/sql"
	"testing"

	"github.com/rampkit/rampup/internal/db"
)

// NewTestDB opens an in-memory rampup database with the full roster
// and onboarding schema applied, closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// NewTestUoW wraps a test database in a transaction runner.
func NewTestUoW(conn *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(conn)
}
