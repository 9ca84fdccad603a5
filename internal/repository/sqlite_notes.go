package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rampkit/rampup/internal/db"
	"github.com/rampkit/rampup/internal/domain"
)

// SQLiteNotesRepo implements NotesRepo using a SQLite database. Daily
// notes, weekly summaries, and checklist items share one table keyed by
// (rep_id, kind, ref); ref is the day or week number for notes and the
// item label for checklist entries.
type SQLiteNotesRepo struct {
	db db.DBTX
}

// NewSQLiteNotesRepo creates a new SQLiteNotesRepo.
func NewSQLiteNotesRepo(conn db.DBTX) *SQLiteNotesRepo {
	return &SQLiteNotesRepo{db: conn}
}

func (r *SQLiteNotesRepo) Get(ctx context.Context, repID string) (*domain.ManagerNotes, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT kind, ref, body, checked, updated_at FROM manager_notes WHERE rep_id = ?`, repID)
	if err != nil {
		return nil, fmt.Errorf("loading manager notes: %w", err)
	}
	defer rows.Close()

	notes := domain.NewManagerNotes(repID, time.Time{})
	for rows.Next() {
		var kind, ref, body, updatedAt string
		var checked int
		if err := rows.Scan(&kind, &ref, &body, &checked, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning note row: %w", err)
		}
		switch kind {
		case "daily":
			if day, err := strconv.Atoi(ref); err == nil {
				notes.DailyNotes[day] = body
			}
		case "weekly":
			if week, err := strconv.Atoi(ref); err == nil {
				notes.WeeklySummaries[week] = body
			}
		case "checklist":
			notes.Checklist[ref] = scanBool(checked)
		}
		if ts, err := time.Parse(time.RFC3339, updatedAt); err == nil && ts.After(notes.UpdatedAt) {
			notes.UpdatedAt = ts
		}
	}
	return notes, rows.Err()
}

func (r *SQLiteNotesRepo) SetDailyNote(ctx context.Context, repID string, day int, body string) error {
	return r.upsert(ctx, repID, "daily", strconv.Itoa(day), body, false)
}

func (r *SQLiteNotesRepo) SetWeeklySummary(ctx context.Context, repID string, week int, body string) error {
	return r.upsert(ctx, repID, "weekly", strconv.Itoa(week), body, false)
}

func (r *SQLiteNotesRepo) SetChecklistItem(ctx context.Context, repID string, item string, checked bool) error {
	return r.upsert(ctx, repID, "checklist", item, "", checked)
}

func (r *SQLiteNotesRepo) upsert(ctx context.Context, repID, kind, ref, body string, checked bool) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO manager_notes (rep_id, kind, ref, body, checked, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		repID, kind, ref, body, storeBool(checked), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upserting %s note: %w", kind, err)
	}
	return nil
}
