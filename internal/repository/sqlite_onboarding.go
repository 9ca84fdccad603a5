package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rampkit/rampup/internal/db"
	"github.com/rampkit/rampup/internal/domain"
)

const dateLayout = "2006-01-02"

// SQLiteOnboardingRepo implements OnboardingRepo using a SQLite database.
// Activity completion is stored one row per done slot, keyed by
// (rep_id, day, idx), so the table mirrors the sparse in-memory map.
type SQLiteOnboardingRepo struct {
	db db.DBTX
}

// NewSQLiteOnboardingRepo creates a new SQLiteOnboardingRepo.
func NewSQLiteOnboardingRepo(conn db.DBTX) *SQLiteOnboardingRepo {
	return &SQLiteOnboardingRepo{db: conn}
}

func (r *SQLiteOnboardingRepo) Get(ctx context.Context, repID string) (*domain.OnboardingRecord, error) {
	query := `SELECT rep_id, start_date, created_at, updated_at
		FROM onboarding_records WHERE rep_id = ?`
	row := r.db.QueryRowContext(ctx, query, repID)

	var rec domain.OnboardingRecord
	var startDate sql.NullString
	var createdAt, updatedAt string
	err := row.Scan(&rec.RepID, &startDate, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("onboarding record: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning onboarding record: %w", err)
	}
	rec.StartDate = scanTime(startDate, dateLayout)
	rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	rec.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	if rec.Activities, err = r.loadActivities(ctx, repID); err != nil {
		return nil, err
	}
	if rec.Evidence, err = r.loadEvidence(ctx, repID); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *SQLiteOnboardingRepo) loadActivities(ctx context.Context, repID string) (domain.ActivityState, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT day, idx, done FROM onboarding_activities WHERE rep_id = ?`, repID)
	if err != nil {
		return nil, fmt.Errorf("loading activities: %w", err)
	}
	defer rows.Close()

	state := make(domain.ActivityState)
	for rows.Next() {
		var day, idx, done int
		if err := rows.Scan(&day, &idx, &done); err != nil {
			return nil, fmt.Errorf("scanning activity row: %w", err)
		}
		if scanBool(done) {
			state[domain.ActivityKey{Day: day, Index: idx}] = true
		}
	}
	return state, rows.Err()
}

func (r *SQLiteOnboardingRepo) loadEvidence(ctx context.Context, repID string) (map[int]domain.Evidence, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT day, type, value, name, date FROM certification_evidence WHERE rep_id = ?`, repID)
	if err != nil {
		return nil, fmt.Errorf("loading evidence: %w", err)
	}
	defer rows.Close()

	evidence := make(map[int]domain.Evidence)
	for rows.Next() {
		var day int
		var evType, value, name, date string
		if err := rows.Scan(&day, &evType, &value, &name, &date); err != nil {
			return nil, fmt.Errorf("scanning evidence row: %w", err)
		}
		ev := domain.Evidence{
			Type:  domain.EvidenceType(evType),
			Value: value,
			Name:  name,
		}
		ev.Date, _ = time.Parse(time.RFC3339, date)
		evidence[day] = ev
	}
	return evidence, rows.Err()
}

func (r *SQLiteOnboardingRepo) Create(ctx context.Context, rec *domain.OnboardingRecord) error {
	query := `INSERT INTO onboarding_records (rep_id, start_date, created_at, updated_at)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.RepID,
		storeTime(rec.StartDate, dateLayout),
		rec.CreatedAt.Format(time.RFC3339),
		rec.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting onboarding record: %w", err)
	}
	return nil
}

func (r *SQLiteOnboardingRepo) SetStartDate(ctx context.Context, repID string, start *time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE onboarding_records SET start_date = ?, updated_at = ? WHERE rep_id = ?`,
		storeTime(start, dateLayout),
		time.Now().UTC().Format(time.RFC3339),
		repID,
	)
	if err != nil {
		return fmt.Errorf("setting start date: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking start date update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("onboarding record %s: %w", repID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteOnboardingRepo) SetActivity(ctx context.Context, repID string, key domain.ActivityKey, done bool) error {
	if !done {
		_, err := r.db.ExecContext(ctx,
			`DELETE FROM onboarding_activities WHERE rep_id = ? AND day = ? AND idx = ?`,
			repID, key.Day, key.Index)
		if err != nil {
			return fmt.Errorf("clearing activity: %w", err)
		}
		return r.touch(ctx, repID)
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO onboarding_activities (rep_id, day, idx, done) VALUES (?, ?, ?, 1)`,
		repID, key.Day, key.Index)
	if err != nil {
		return fmt.Errorf("setting activity: %w", err)
	}
	return r.touch(ctx, repID)
}

func (r *SQLiteOnboardingRepo) ReplaceActivities(ctx context.Context, repID string, state domain.ActivityState) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM onboarding_activities WHERE rep_id = ?`, repID); err != nil {
		return fmt.Errorf("clearing activities: %w", err)
	}
	for key, done := range state {
		if !done {
			continue
		}
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO onboarding_activities (rep_id, day, idx, done) VALUES (?, ?, ?, 1)`,
			repID, key.Day, key.Index); err != nil {
			return fmt.Errorf("writing activity %s: %w", key, err)
		}
	}
	return r.touch(ctx, repID)
}

func (r *SQLiteOnboardingRepo) Reset(ctx context.Context, repID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM onboarding_activities WHERE rep_id = ?`, repID); err != nil {
		return fmt.Errorf("resetting activities: %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM certification_evidence WHERE rep_id = ?`, repID); err != nil {
		return fmt.Errorf("resetting evidence: %w", err)
	}
	return r.touch(ctx, repID)
}

func (r *SQLiteOnboardingRepo) SetEvidence(ctx context.Context, repID string, day int, ev domain.Evidence) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO certification_evidence (rep_id, day, type, value, name, date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		repID, day, string(ev.Type), ev.Value, ev.Name, ev.Date.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("setting evidence: %w", err)
	}
	return r.touch(ctx, repID)
}

func (r *SQLiteOnboardingRepo) DeleteEvidence(ctx context.Context, repID string, day int) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM certification_evidence WHERE rep_id = ? AND day = ?`, repID, day)
	if err != nil {
		return fmt.Errorf("deleting evidence: %w", err)
	}
	return r.touch(ctx, repID)
}

func (r *SQLiteOnboardingRepo) touch(ctx context.Context, repID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE onboarding_records SET updated_at = ? WHERE rep_id = ?`,
		time.Now().UTC().Format(time.RFC3339), repID)
	if err != nil {
		return fmt.Errorf("touching onboarding record: %w", err)
	}
	return nil
}
