package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rampkit/rampup/internal/db"
	"github.com/rampkit/rampup/internal/domain"
)

const repColumns = `id, name, email, role, manager_id, created_at, updated_at`

// SQLiteRepRepo implements RepRepo using a SQLite database.
type SQLiteRepRepo struct {
	db db.DBTX
}

// NewSQLiteRepRepo creates a new SQLiteRepRepo.
func NewSQLiteRepRepo(conn db.DBTX) *SQLiteRepRepo {
	return &SQLiteRepRepo{db: conn}
}

func (r *SQLiteRepRepo) Create(ctx context.Context, rep *domain.Rep) error {
	query := `INSERT INTO reps (id, name, email, role, manager_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rep.ID,
		rep.Name,
		rep.Email,
		string(rep.Role),
		storeString(rep.ManagerID),
		rep.CreatedAt.Format(time.RFC3339),
		rep.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting rep: %w", err)
	}
	return nil
}

func (r *SQLiteRepRepo) GetByID(ctx context.Context, id string) (*domain.Rep, error) {
	query := `SELECT ` + repColumns + ` FROM reps WHERE id = ?`
	return r.scanRep(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteRepRepo) GetByEmail(ctx context.Context, email string) (*domain.Rep, error) {
	query := `SELECT ` + repColumns + ` FROM reps WHERE LOWER(email) = LOWER(?)`
	return r.scanRep(r.db.QueryRowContext(ctx, query, email))
}

func (r *SQLiteRepRepo) List(ctx context.Context) ([]*domain.Rep, error) {
	query := `SELECT ` + repColumns + ` FROM reps ORDER BY name`
	return r.queryReps(ctx, query)
}

func (r *SQLiteRepRepo) ListByRole(ctx context.Context, role domain.Role) ([]*domain.Rep, error) {
	query := `SELECT ` + repColumns + ` FROM reps WHERE role = ? ORDER BY name`
	return r.queryReps(ctx, query, string(role))
}

func (r *SQLiteRepRepo) ListByManager(ctx context.Context, managerID string) ([]*domain.Rep, error) {
	query := `SELECT ` + repColumns + ` FROM reps WHERE manager_id = ? ORDER BY name`
	return r.queryReps(ctx, query, managerID)
}

func (r *SQLiteRepRepo) Update(ctx context.Context, rep *domain.Rep) error {
	query := `UPDATE reps SET name = ?, email = ?, role = ?, manager_id = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		rep.Name,
		rep.Email,
		string(rep.Role),
		storeString(rep.ManagerID),
		time.Now().UTC().Format(time.RFC3339),
		rep.ID,
	)
	if err != nil {
		return fmt.Errorf("updating rep: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("rep %s: %w", rep.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteRepRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reps WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting rep: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("rep %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteRepRepo) queryReps(ctx context.Context, query string, args ...any) ([]*domain.Rep, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing reps: %w", err)
	}
	defer rows.Close()

	var reps []*domain.Rep
	for rows.Next() {
		rep, err := scanRepRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		reps = append(reps, rep)
	}
	return reps, rows.Err()
}

func (r *SQLiteRepRepo) scanRep(row *sql.Row) (*domain.Rep, error) {
	rep, err := scanRepRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("rep: %w", ErrNotFound)
	}
	return rep, err
}

func scanRepRow(scan func(...any) error) (*domain.Rep, error) {
	var rep domain.Rep
	var role string
	var managerID sql.NullString
	var createdAt, updatedAt string

	err := scan(&rep.ID, &rep.Name, &rep.Email, &role, &managerID, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning rep: %w", err)
	}

	rep.Role = domain.Role(role)
	if managerID.Valid {
		rep.ManagerID = &managerID.String
	}
	rep.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	rep.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &rep, nil
}
