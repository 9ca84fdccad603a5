package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS reps (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		role       TEXT NOT NULL DEFAULT 'bdr'
		           CHECK(role IN ('bdr','manager','superadmin')),
		manager_id TEXT REFERENCES reps(id) ON DELETE SET NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_reps_manager ON reps(manager_id)`,

	`CREATE TABLE IF NOT EXISTS onboarding_records (
		rep_id     TEXT PRIMARY KEY REFERENCES reps(id) ON DELETE CASCADE,
		start_date TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS onboarding_activities (
		rep_id   TEXT NOT NULL REFERENCES onboarding_records(rep_id) ON DELETE CASCADE,
		day      INTEGER NOT NULL,
		idx      INTEGER NOT NULL,
		done     INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (rep_id, day, idx)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_rep_day ON onboarding_activities(rep_id, day)`,

	`CREATE TABLE IF NOT EXISTS certification_evidence (
		rep_id TEXT NOT NULL REFERENCES onboarding_records(rep_id) ON DELETE CASCADE,
		day    INTEGER NOT NULL,
		type   TEXT NOT NULL CHECK(type IN ('link','file')),
		value  TEXT NOT NULL,
		name   TEXT NOT NULL DEFAULT '',
		date   TEXT NOT NULL,
		PRIMARY KEY (rep_id, day)
	)`,

	`CREATE TABLE IF NOT EXISTS manager_notes (
		rep_id     TEXT NOT NULL REFERENCES reps(id) ON DELETE CASCADE,
		kind       TEXT NOT NULL CHECK(kind IN ('daily','weekly','checklist')),
		ref        TEXT NOT NULL,
		body       TEXT NOT NULL DEFAULT '',
		checked    INTEGER NOT NULL DEFAULT 0,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (rep_id, kind, ref)
	)`,
}
