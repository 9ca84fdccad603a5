package repository_test

import (
	"context"
	"testing"

	"github.com/rampkit/rampup/internal/domain"
	"github.com/rampkit/rampup/internal/repository"
	"github.com/rampkit/rampup/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRepRepo(database)
	ctx := context.Background()

	rep := testutil.NewTestRep("Dana Smith", testutil.WithEmail("dana@example.com"))
	require.NoError(t, repo.Create(ctx, rep))

	got, err := repo.GetByID(ctx, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, rep.Name, got.Name)
	assert.Equal(t, rep.Email, got.Email)
	assert.Equal(t, domain.RoleBDR, got.Role)
	assert.Nil(t, got.ManagerID)

	// Email lookup is case-insensitive.
	got, err = repo.GetByEmail(ctx, "DANA@EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, rep.ID, got.ID)
}

func TestRepRepo_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRepRepo(database)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.Update(ctx, testutil.NewTestRep("Ghost"))
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.Delete(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRepRepo_UniqueEmail(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRepRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestRep("A", testutil.WithEmail("dup@example.com"))))
	err := repo.Create(ctx, testutil.NewTestRep("B", testutil.WithEmail("dup@example.com")))
	assert.Error(t, err)
}

func TestRepRepo_ListByRoleAndManager(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRepRepo(database)
	ctx := context.Background()

	mgr := testutil.NewTestRep("Morgan Lee", testutil.WithRole(domain.RoleManager))
	require.NoError(t, repo.Create(ctx, mgr))
	require.NoError(t, repo.Create(ctx, testutil.NewTestRep("Alex Doe", testutil.WithManager(mgr.ID))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestRep("Casey Roe")))

	bdrs, err := repo.ListByRole(ctx, domain.RoleBDR)
	require.NoError(t, err)
	assert.Len(t, bdrs, 2)
	// Ordered by name.
	assert.Equal(t, "Alex Doe", bdrs[0].Name)

	team, err := repo.ListByManager(ctx, mgr.ID)
	require.NoError(t, err)
	require.Len(t, team, 1)
	assert.Equal(t, "Alex Doe", team[0].Name)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRepRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRepRepo(database)
	ctx := context.Background()

	rep := testutil.NewTestRep("Before")
	require.NoError(t, repo.Create(ctx, rep))

	rep.Name = "After"
	require.NoError(t, repo.Update(ctx, rep))

	got, err := repo.GetByID(ctx, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)
}

func TestRepRepo_DeleteClearsManagerReferences(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRepRepo(database)
	ctx := context.Background()

	mgr := testutil.NewTestRep("Manager", testutil.WithRole(domain.RoleManager))
	require.NoError(t, repo.Create(ctx, mgr))
	rep := testutil.NewTestRep("Report", testutil.WithManager(mgr.ID))
	require.NoError(t, repo.Create(ctx, rep))

	require.NoError(t, repo.Delete(ctx, mgr.ID))

	got, err := repo.GetByID(ctx, rep.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ManagerID)
}
