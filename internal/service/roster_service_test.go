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

func newRoster(t *testing.T) (service.RosterService, *repository.SQLiteOnboardingRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repRepo := repository.NewSQLiteRepRepo(database)
	onboardingRepo := repository.NewSQLiteOnboardingRepo(database)
	return service.NewRosterService(repRepo, onboardingRepo), onboardingRepo
}

func TestAddRep_CreatesOnboardingRecordForBDR(t *testing.T) {
	roster, onboarding := newRoster(t)
	ctx := context.Background()

	rep, err := roster.AddRep(ctx, "Sam Vera", "sam@example.com", domain.RoleBDR, nil)
	require.NoError(t, err)

	rec, err := onboarding.Get(ctx, rep.ID)
	require.NoError(t, err)
	assert.Nil(t, rec.StartDate)
	assert.Empty(t, rec.Activities)
}

func TestAddRep_ManagerGetsNoOnboardingRecord(t *testing.T) {
	roster, onboarding := newRoster(t)
	ctx := context.Background()

	mgr, err := roster.AddRep(ctx, "Lee Chen", "lee@example.com", domain.RoleManager, nil)
	require.NoError(t, err)

	_, err = onboarding.Get(ctx, mgr.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAddRep_Validation(t *testing.T) {
	roster, _ := newRoster(t)
	ctx := context.Background()

	_, err := roster.AddRep(ctx, "", "x@example.com", domain.RoleBDR, nil)
	assert.Error(t, err)

	_, err = roster.AddRep(ctx, "No Email", "not-an-email", domain.RoleBDR, nil)
	assert.Error(t, err)

	_, err = roster.AddRep(ctx, "Bad Role", "bad@example.com", domain.Role("director"), nil)
	assert.Error(t, err)
}

func TestAddRep_RejectsBDRManager(t *testing.T) {
	roster, _ := newRoster(t)
	ctx := context.Background()

	peer, err := roster.AddRep(ctx, "Peer BDR", "peer@example.com", domain.RoleBDR, nil)
	require.NoError(t, err)

	_, err = roster.AddRep(ctx, "New Hire", "new@example.com", domain.RoleBDR, &peer.ID)
	assert.Error(t, err)
}

func TestGetRep_ByIDOrEmail(t *testing.T) {
	roster, _ := newRoster(t)
	ctx := context.Background()

	rep, err := roster.AddRep(ctx, "Sam Vera", "sam@example.com", domain.RoleBDR, nil)
	require.NoError(t, err)

	byID, err := roster.GetRep(ctx, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, rep.ID, byID.ID)

	byEmail, err := roster.GetRep(ctx, "sam@example.com")
	require.NoError(t, err)
	assert.Equal(t, rep.ID, byEmail.ID)

	_, err = roster.GetRep(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAssignManager(t *testing.T) {
	roster, _ := newRoster(t)
	ctx := context.Background()

	rep, err := roster.AddRep(ctx, "Sam Vera", "sam@example.com", domain.RoleBDR, nil)
	require.NoError(t, err)
	mgr, err := roster.AddRep(ctx, "Lee Chen", "lee@example.com", domain.RoleManager, nil)
	require.NoError(t, err)

	require.NoError(t, roster.AssignManager(ctx, rep.ID, mgr.ID))

	team, err := roster.ListTeam(ctx, mgr.ID)
	require.NoError(t, err)
	require.Len(t, team, 1)
	assert.Equal(t, rep.ID, team[0].ID)

	// A BDR cannot be assigned as a manager.
	other, err := roster.AddRep(ctx, "Other BDR", "other@example.com", domain.RoleBDR, nil)
	require.NoError(t, err)
	assert.Error(t, roster.AssignManager(ctx, rep.ID, other.ID))
}
