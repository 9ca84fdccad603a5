package repository

import (
	"context"
	"time"

	"github.com/rampkit/rampup/internal/domain"
)

type RepRepo interface {
	Create(ctx context.Context, r *domain.Rep) error
	GetByID(ctx context.Context, id string) (*domain.Rep, error)
	GetByEmail(ctx context.Context, email string) (*domain.Rep, error)
	List(ctx context.Context) ([]*domain.Rep, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.Rep, error)
	ListByManager(ctx context.Context, managerID string) ([]*domain.Rep, error)
	Update(ctx context.Context, r *domain.Rep) error
	Delete(ctx context.Context, id string) error
}

type OnboardingRepo interface {
	// Get returns the onboarding record for a rep, or ErrNotFound when the
	// rep has never been initialized.
	Get(ctx context.Context, repID string) (*domain.OnboardingRecord, error)
	Create(ctx context.Context, rec *domain.OnboardingRecord) error
	SetStartDate(ctx context.Context, repID string, start *time.Time) error
	// SetActivity writes one completion flag. False flags delete the row so
	// storage stays as sparse as the in-memory map.
	SetActivity(ctx context.Context, repID string, key domain.ActivityKey, done bool) error
	// ReplaceActivities atomically swaps the full completion map.
	ReplaceActivities(ctx context.Context, repID string, state domain.ActivityState) error
	// Reset deletes all completion rows and evidence for the rep.
	Reset(ctx context.Context, repID string) error
	SetEvidence(ctx context.Context, repID string, day int, ev domain.Evidence) error
	DeleteEvidence(ctx context.Context, repID string, day int) error
}

type NotesRepo interface {
	Get(ctx context.Context, repID string) (*domain.ManagerNotes, error)
	SetDailyNote(ctx context.Context, repID string, day int, body string) error
	SetWeeklySummary(ctx context.Context, repID string, week int, body string) error
	SetChecklistItem(ctx context.Context, repID string, item string, checked bool) error
}
