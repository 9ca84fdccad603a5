package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/rampkit/rampup/internal/domain"
	"github.com/rampkit/rampup/internal/repository"
	"github.com/rampkit/rampup/internal/service"
	"github.com/rampkit/rampup/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportFixture struct {
	reports    service.ReportService
	onboarding service.OnboardingService
	rep        *domain.Rep
	ctx        context.Context
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	cat := testutil.NewTestCatalog(t)
	repRepo := repository.NewSQLiteRepRepo(database)
	onboardingRepo := repository.NewSQLiteOnboardingRepo(database)
	uow := testutil.NewTestUoW(database)

	roster := service.NewRosterService(repRepo, onboardingRepo)
	ctx := context.Background()
	rep, err := roster.AddRep(ctx, "Sam Vera", "sam@example.com", domain.RoleBDR, nil)
	require.NoError(t, err)

	return &reportFixture{
		reports:    service.NewReportService(cat, repRepo, onboardingRepo),
		onboarding: service.NewOnboardingService(cat, onboardingRepo, uow),
		rep:        rep,
		ctx:        ctx,
	}
}

// Monday, March 3rd 2025.
var reportMonday = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

func TestBuildReport_NotStarted(t *testing.T) {
	f := newReportFixture(t)

	report, err := f.reports.BuildReport(f.ctx, f.rep.ID, reportMonday)
	require.NoError(t, err)

	assert.Equal(t, domain.ScheduleNotStarted, report.Pace.State)
	assert.Equal(t, "Not started", report.Pace.Message)
	assert.Nil(t, report.Pace.CurrentDay)
	assert.Equal(t, 1, report.Pace.ExpectedDay)
	assert.Equal(t, 0, report.CompletedDays)

	// Weeks carry no date range without a start date.
	require.NotEmpty(t, report.Weeks)
	assert.Empty(t, report.Weeks[0].DateRange)
}

func TestBuildReport_OnTrack(t *testing.T) {
	f := newReportFixture(t)

	require.NoError(t, f.onboarding.SetStartDate(f.ctx, f.rep.ID, reportMonday))
	require.NoError(t, f.onboarding.ToggleDay(f.ctx, f.rep.ID, 1))

	// The next day: expected day 2, one day complete.
	now := reportMonday.AddDate(0, 0, 1)
	report, err := f.reports.BuildReport(f.ctx, f.rep.ID, now)
	require.NoError(t, err)

	assert.Equal(t, domain.ScheduleOnTrack, report.Pace.State)
	assert.Equal(t, 1, report.CompletedDays)
	require.NotNil(t, report.Pace.CurrentDay)
	assert.Equal(t, 2, *report.Pace.CurrentDay)
	assert.Equal(t, "Mar 3 - Mar 7", report.Weeks[0].DateRange)
}

func TestBuildReport_Snapshot(t *testing.T) {
	f := newReportFixture(t)

	require.NoError(t, f.onboarding.SetStartDate(f.ctx, f.rep.ID, reportMonday))
	report, err := f.reports.BuildReport(f.ctx, f.rep.ID, reportMonday)
	require.NoError(t, err)

	snap := report.Snapshot()
	assert.Equal(t, "Sam Vera", snap.Name)
	assert.Equal(t, domain.ScheduleOnTrack, snap.State)
	assert.Equal(t, 1, snap.ExpectedDay)
}

func TestBuildReport_Certifications(t *testing.T) {
	f := newReportFixture(t)

	// Complete the day-5 certification and attach evidence.
	require.NoError(t, f.onboarding.ToggleDay(f.ctx, f.rep.ID, 5))
	require.NoError(t, f.onboarding.AttachEvidence(f.ctx, f.rep.ID, 5, domain.Evidence{
		Type: domain.EvidenceLink, Value: "https://example.com", Name: "recording",
	}))

	report, err := f.reports.BuildReport(f.ctx, f.rep.ID, reportMonday)
	require.NoError(t, err)

	require.Len(t, report.Certifications, 2)
	pitch := report.Certifications[0]
	assert.Equal(t, 5, pitch.Day)
	assert.True(t, pitch.Achieved)
	require.NotNil(t, pitch.Evidence)
	assert.Equal(t, "recording", pitch.Evidence.Name)

	grad := report.Certifications[1]
	assert.Equal(t, 10, grad.Day)
	assert.False(t, grad.Achieved)
	assert.Nil(t, grad.Evidence)
}

func TestBuildDay(t *testing.T) {
	f := newReportFixture(t)

	require.NoError(t, f.onboarding.SetStartDate(f.ctx, f.rep.ID, reportMonday))
	_, err := f.onboarding.ToggleActivity(f.ctx, f.rep.ID, 1, 0)
	require.NoError(t, err)

	view, err := f.reports.BuildDay(f.ctx, f.rep.ID, 1, reportMonday)
	require.NoError(t, err)

	assert.Equal(t, "Orientation", view.Title)
	assert.Len(t, view.Activities, 3)
	assert.Equal(t, []bool{true, false, false}, view.Done)
	assert.Equal(t, 33, view.Snapshot.Percentage)
	assert.False(t, view.Complete)
	assert.True(t, view.IsToday)
	assert.False(t, view.IsPast)
	assert.Equal(t, "Mon, Mar 3", view.Date)

	// Days without a program entry error out.
	_, err = f.reports.BuildDay(f.ctx, f.rep.ID, 3, reportMonday)
	assert.Error(t, err)
}
