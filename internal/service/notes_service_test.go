package service_test

import (
	"context"
	"testing"

	"github.com/rampkit/rampup/internal/domain"
	"github.com/rampkit/rampup/internal/repository"
	"github.com/rampkit/rampup/internal/service"
	"github.com/rampkit/rampup/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotesFixture(t *testing.T) (service.NotesService, *domain.Rep, context.Context) {
	t.Helper()
	database := testutil.NewTestDB(t)
	cat := testutil.NewTestCatalog(t)
	repRepo := repository.NewSQLiteRepRepo(database)
	onboardingRepo := repository.NewSQLiteOnboardingRepo(database)
	notesRepo := repository.NewSQLiteNotesRepo(database)

	roster := service.NewRosterService(repRepo, onboardingRepo)
	ctx := context.Background()
	rep, err := roster.AddRep(ctx, "Sam Vera", "sam@example.com", domain.RoleBDR, nil)
	require.NoError(t, err)

	return service.NewNotesService(cat, notesRepo), rep, ctx
}

func TestNotesService_RoundTrip(t *testing.T) {
	notes, rep, ctx := newNotesFixture(t)

	require.NoError(t, notes.SetDailyNote(ctx, rep.ID, 2, "Great energy on calls"))
	require.NoError(t, notes.SetWeeklySummary(ctx, rep.ID, 1, "Solid week one"))
	require.NoError(t, notes.SetChecklistItem(ctx, rep.ID, "intro 1:1 done", true))

	got, err := notes.Notes(ctx, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, "Great energy on calls", got.DailyNotes[2])
	assert.Equal(t, "Solid week one", got.WeeklySummaries[1])
	assert.True(t, got.Checklist["intro 1:1 done"])
}

func TestNotesService_RangeValidation(t *testing.T) {
	notes, rep, ctx := newNotesFixture(t)

	// Test catalog runs 10 days / 2 weeks.
	assert.Error(t, notes.SetDailyNote(ctx, rep.ID, 0, "x"))
	assert.Error(t, notes.SetDailyNote(ctx, rep.ID, 11, "x"))
	assert.Error(t, notes.SetWeeklySummary(ctx, rep.ID, 3, "x"))
	assert.Error(t, notes.SetChecklistItem(ctx, rep.ID, "   ", true))
}
