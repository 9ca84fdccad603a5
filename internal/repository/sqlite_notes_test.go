package repository_test

import (
	"context"
	"testing"

	"github.com/rampkit/rampup/internal/repository"
	"github.com/rampkit/rampup/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotesRepo_EmptyNotes(t *testing.T) {
	database := testutil.NewTestDB(t)
	reps := repository.NewSQLiteRepRepo(database)
	notes := repository.NewSQLiteNotesRepo(database)
	ctx := context.Background()

	rep := testutil.NewTestRep("Jordan Park")
	require.NoError(t, reps.Create(ctx, rep))

	got, err := notes.Get(ctx, rep.ID)
	require.NoError(t, err)
	assert.Empty(t, got.DailyNotes)
	assert.Empty(t, got.WeeklySummaries)
	assert.Empty(t, got.Checklist)
}

func TestNotesRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	reps := repository.NewSQLiteRepRepo(database)
	notes := repository.NewSQLiteNotesRepo(database)
	ctx := context.Background()

	rep := testutil.NewTestRep("Jordan Park")
	require.NoError(t, reps.Create(ctx, rep))

	require.NoError(t, notes.SetDailyNote(ctx, rep.ID, 3, "Strong on the phones"))
	require.NoError(t, notes.SetWeeklySummary(ctx, rep.ID, 1, "Good first week"))
	require.NoError(t, notes.SetChecklistItem(ctx, rep.ID, "1:1 scheduled", true))

	got, err := notes.Get(ctx, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, "Strong on the phones", got.DailyNotes[3])
	assert.Equal(t, "Good first week", got.WeeklySummaries[1])
	assert.True(t, got.Checklist["1:1 scheduled"])
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestNotesRepo_UpsertOverwrites(t *testing.T) {
	database := testutil.NewTestDB(t)
	reps := repository.NewSQLiteRepRepo(database)
	notes := repository.NewSQLiteNotesRepo(database)
	ctx := context.Background()

	rep := testutil.NewTestRep("Jordan Park")
	require.NoError(t, reps.Create(ctx, rep))

	require.NoError(t, notes.SetDailyNote(ctx, rep.ID, 3, "first"))
	require.NoError(t, notes.SetDailyNote(ctx, rep.ID, 3, "second"))
	require.NoError(t, notes.SetChecklistItem(ctx, rep.ID, "shadowed a call", true))
	require.NoError(t, notes.SetChecklistItem(ctx, rep.ID, "shadowed a call", false))

	got, err := notes.Get(ctx, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{3: "second"}, got.DailyNotes)
	assert.False(t, got.Checklist["shadowed a call"])
}
