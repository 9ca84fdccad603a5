package service

import (
	"context"
	"time"

	"github.com/rampkit/rampup/internal/app"
	"github.com/rampkit/rampup/internal/domain"
)

type RosterService interface {
	AddRep(ctx context.Context, name, email string, role domain.Role, managerID *string) (*domain.Rep, error)
	GetRep(ctx context.Context, idOrEmail string) (*domain.Rep, error)
	List(ctx context.Context) ([]*domain.Rep, error)
	ListBDRs(ctx context.Context) ([]*domain.Rep, error)
	ListTeam(ctx context.Context, managerID string) ([]*domain.Rep, error)
	AssignManager(ctx context.Context, repID, managerID string) error
	RemoveRep(ctx context.Context, id string) error
}

type OnboardingService interface {
	// Record returns the rep's onboarding record, creating an empty one on
	// first access.
	Record(ctx context.Context, repID string) (*domain.OnboardingRecord, error)
	SetStartDate(ctx context.Context, repID string, start time.Time) error
	// ToggleActivity flips one checklist item and returns its new value.
	ToggleActivity(ctx context.Context, repID string, day, index int) (bool, error)
	// ToggleDay flips a whole day: all-complete clears every item,
	// anything incomplete checks every item.
	ToggleDay(ctx context.Context, repID string, day int) error
	Reset(ctx context.Context, repID string) error
	AttachEvidence(ctx context.Context, repID string, day int, ev domain.Evidence) error
	// ExportState emits the flat string-keyed completion map; ImportState
	// replaces the stored state from one, skipping unparseable keys.
	ExportState(ctx context.Context, repID string) (map[string]bool, error)
	ImportState(ctx context.Context, repID string, flat map[string]bool) error
}

type ReportService interface {
	BuildReport(ctx context.Context, repID string, now time.Time) (*app.RepReport, error)
	// BuildDay renders one calendar day: checklist, completion flags, and
	// calendar position relative to now.
	BuildDay(ctx context.Context, repID string, day int, now time.Time) (*app.DayView, error)
}

type NotesService interface {
	Notes(ctx context.Context, repID string) (*domain.ManagerNotes, error)
	SetDailyNote(ctx context.Context, repID string, day int, body string) error
	SetWeeklySummary(ctx context.Context, repID string, week int, body string) error
	SetChecklistItem(ctx context.Context, repID string, item string, checked bool) error
}
