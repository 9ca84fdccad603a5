package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rampkit/rampup/internal/catalog"
	"github.com/rampkit/rampup/internal/db"
	"github.com/rampkit/rampup/internal/domain"
	"github.com/rampkit/rampup/internal/repository"
)

type onboardingService struct {
	catalog    *catalog.Catalog
	onboarding repository.OnboardingRepo
	uow        db.UnitOfWork
}

// NewOnboardingService creates an OnboardingService. Multi-row mutations
// (day toggles, imports, resets) run inside the unit of work so a rep's
// state never persists half-flipped.
func NewOnboardingService(c *catalog.Catalog, onboarding repository.OnboardingRepo, uow db.UnitOfWork) OnboardingService {
	return &onboardingService{catalog: c, onboarding: onboarding, uow: uow}
}

func (s *onboardingService) Record(ctx context.Context, repID string) (*domain.OnboardingRecord, error) {
	rec, err := s.onboarding.Get(ctx, repID)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	rec = domain.NewOnboardingRecord(repID, time.Now().UTC())
	if err := s.onboarding.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *onboardingService) SetStartDate(ctx context.Context, repID string, start time.Time) error {
	if _, err := s.Record(ctx, repID); err != nil {
		return err
	}
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	return s.onboarding.SetStartDate(ctx, repID, &day)
}

// dayInfo validates the day against the catalog and returns its entry.
func (s *onboardingService) dayInfo(day int) (*catalog.DayInfo, error) {
	info := s.catalog.Day(day)
	if info == nil {
		return nil, fmt.Errorf("day %d is not part of the ramp program", day)
	}
	return info, nil
}

func (s *onboardingService) ToggleActivity(ctx context.Context, repID string, day, index int) (bool, error) {
	info, err := s.dayInfo(day)
	if err != nil {
		return false, err
	}
	if index < 0 || index >= len(info.Activities) {
		return false, fmt.Errorf("day %d has activities 0..%d, got %d", day, len(info.Activities)-1, index)
	}

	rec, err := s.Record(ctx, repID)
	if err != nil {
		return false, err
	}

	rec.Activities.Toggle(day, index)
	done := rec.Activities.Done(day, index)
	if err := s.onboarding.SetActivity(ctx, repID, domain.ActivityKey{Day: day, Index: index}, done); err != nil {
		return false, err
	}
	return done, nil
}

func (s *onboardingService) ToggleDay(ctx context.Context, repID string, day int) error {
	info, err := s.dayInfo(day)
	if err != nil {
		return err
	}

	rec, err := s.Record(ctx, repID)
	if err != nil {
		return err
	}
	rec.Activities.ToggleDay(day, len(info.Activities))

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteOnboardingRepo(tx)
		for i := 0; i < len(info.Activities); i++ {
			key := domain.ActivityKey{Day: day, Index: i}
			if err := repo.SetActivity(ctx, repID, key, rec.Activities[key]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *onboardingService) Reset(ctx context.Context, repID string) error {
	if _, err := s.Record(ctx, repID); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteOnboardingRepo(tx).Reset(ctx, repID)
	})
}

func (s *onboardingService) AttachEvidence(ctx context.Context, repID string, day int, ev domain.Evidence) error {
	if _, ok := s.catalog.Certification(day); !ok {
		return fmt.Errorf("day %d is not a certification day", day)
	}
	if ev.Type != domain.EvidenceLink && ev.Type != domain.EvidenceFile {
		return fmt.Errorf("evidence type %q must be link or file", ev.Type)
	}
	if _, err := s.Record(ctx, repID); err != nil {
		return err
	}
	if ev.Date.IsZero() {
		ev.Date = time.Now().UTC()
	}
	return s.onboarding.SetEvidence(ctx, repID, day, ev)
}

func (s *onboardingService) ExportState(ctx context.Context, repID string) (map[string]bool, error) {
	rec, err := s.Record(ctx, repID)
	if err != nil {
		return nil, err
	}
	return rec.Activities.Flat(), nil
}

func (s *onboardingService) ImportState(ctx context.Context, repID string, flat map[string]bool) error {
	if _, err := s.Record(ctx, repID); err != nil {
		return err
	}
	state := domain.ActivityStateFromFlat(flat)
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteOnboardingRepo(tx).ReplaceActivities(ctx, repID, state)
	})
}
