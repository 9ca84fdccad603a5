package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rampkit/rampup/internal/catalog"
	"github.com/rampkit/rampup/internal/domain"
	"github.com/rampkit/rampup/internal/repository"
)

type notesService struct {
	catalog *catalog.Catalog
	notes   repository.NotesRepo
}

// NewNotesService creates a NotesService over the given repository.
func NewNotesService(c *catalog.Catalog, notes repository.NotesRepo) NotesService {
	return &notesService{catalog: c, notes: notes}
}

func (s *notesService) Notes(ctx context.Context, repID string) (*domain.ManagerNotes, error) {
	return s.notes.Get(ctx, repID)
}

func (s *notesService) SetDailyNote(ctx context.Context, repID string, day int, body string) error {
	if day < 1 || day > s.catalog.MaxDay() {
		return fmt.Errorf("day %d outside program range 1..%d", day, s.catalog.MaxDay())
	}
	return s.notes.SetDailyNote(ctx, repID, day, body)
}

func (s *notesService) SetWeeklySummary(ctx context.Context, repID string, week int, body string) error {
	if week < 1 || week > s.catalog.WeekCount() {
		return fmt.Errorf("week %d outside program range 1..%d", week, s.catalog.WeekCount())
	}
	return s.notes.SetWeeklySummary(ctx, repID, week, body)
}

func (s *notesService) SetChecklistItem(ctx context.Context, repID string, item string, checked bool) error {
	if strings.TrimSpace(item) == "" {
		return fmt.Errorf("checklist item label is required")
	}
	return s.notes.SetChecklistItem(ctx, repID, item, checked)
}
