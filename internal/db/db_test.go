package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/rampkit/rampup/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func insertRep(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO reps (id, name, email, role, created_at, updated_at)
		 VALUES (?, ?, ?, 'bdr', '2026-01-05', '2026-01-05')`,
		id, "Sam Vera", id+"@example.com")
	return err
}

func countReps(t *testing.T, conn *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM reps").Scan(&n))
	return n
}

func TestOpen_EnforcesForeignKeys(t *testing.T) {
	conn := openTestDB(t)

	var fk int
	require.NoError(t, conn.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)

	// Activities reference onboarding records; an orphan row is rejected.
	_, err := conn.Exec(
		`INSERT INTO onboarding_activities (rep_id, day, idx, done) VALUES ('ghost', 1, 0, 1)`)
	assert.Error(t, err)
}

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	conn := openTestDB(t)
	uow := db.NewSQLiteUnitOfWork(conn)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertRep(ctx, tx, "r1")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countReps(t, conn))
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	conn := openTestDB(t)
	uow := db.NewSQLiteUnitOfWork(conn)

	boom := errors.New("boom")
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertRep(ctx, tx, "r2"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, countReps(t, conn))
}
