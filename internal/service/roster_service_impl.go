package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rampkit/rampup/internal/domain"
	"github.com/rampkit/rampup/internal/repository"
)

type rosterService struct {
	reps       repository.RepRepo
	onboarding repository.OnboardingRepo
}

// NewRosterService creates a RosterService over the given repositories.
func NewRosterService(reps repository.RepRepo, onboarding repository.OnboardingRepo) RosterService {
	return &rosterService{reps: reps, onboarding: onboarding}
}

func (s *rosterService) AddRep(ctx context.Context, name, email string, role domain.Role, managerID *string) (*domain.Rep, error) {
	now := time.Now().UTC()
	rep := &domain.Rep{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Role:      role,
		ManagerID: managerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := rep.Validate(); err != nil {
		return nil, err
	}

	if managerID != nil {
		mgr, err := s.reps.GetByID(ctx, *managerID)
		if err != nil {
			return nil, fmt.Errorf("looking up manager: %w", err)
		}
		if mgr.Role == domain.RoleBDR {
			return nil, fmt.Errorf("rep %s cannot manage others", mgr.Name)
		}
	}

	if err := s.reps.Create(ctx, rep); err != nil {
		return nil, err
	}

	// BDRs get an empty onboarding record up front so the first toggle
	// has a row to attach to.
	if role == domain.RoleBDR {
		if err := s.onboarding.Create(ctx, domain.NewOnboardingRecord(rep.ID, now)); err != nil {
			return nil, fmt.Errorf("creating onboarding record: %w", err)
		}
	}
	return rep, nil
}

func (s *rosterService) GetRep(ctx context.Context, idOrEmail string) (*domain.Rep, error) {
	if strings.Contains(idOrEmail, "@") {
		return s.reps.GetByEmail(ctx, idOrEmail)
	}
	rep, err := s.reps.GetByID(ctx, idOrEmail)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		// Fall back to email for addresses missing an "@" typo-style input.
		return s.reps.GetByEmail(ctx, idOrEmail)
	}
	return rep, err
}

func (s *rosterService) List(ctx context.Context) ([]*domain.Rep, error) {
	return s.reps.List(ctx)
}

func (s *rosterService) ListBDRs(ctx context.Context) ([]*domain.Rep, error) {
	return s.reps.ListByRole(ctx, domain.RoleBDR)
}

func (s *rosterService) ListTeam(ctx context.Context, managerID string) ([]*domain.Rep, error) {
	return s.reps.ListByManager(ctx, managerID)
}

func (s *rosterService) AssignManager(ctx context.Context, repID, managerID string) error {
	rep, err := s.reps.GetByID(ctx, repID)
	if err != nil {
		return err
	}
	mgr, err := s.reps.GetByID(ctx, managerID)
	if err != nil {
		return fmt.Errorf("looking up manager: %w", err)
	}
	if mgr.Role == domain.RoleBDR {
		return fmt.Errorf("rep %s cannot manage others", mgr.Name)
	}
	rep.ManagerID = &mgr.ID
	return s.reps.Update(ctx, rep)
}

func (s *rosterService) RemoveRep(ctx context.Context, id string) error {
	return s.reps.Delete(ctx, id)
}
