package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rampkit/rampup/internal/app"
	"github.com/rampkit/rampup/internal/catalog"
	"github.com/rampkit/rampup/internal/domain"
	"github.com/rampkit/rampup/internal/progress"
	"github.com/rampkit/rampup/internal/repository"
	"github.com/rampkit/rampup/internal/schedule"
)

type reportService struct {
	catalog    *catalog.Catalog
	reps       repository.RepRepo
	onboarding repository.OnboardingRepo
}

// NewReportService creates a ReportService over the given repositories.
func NewReportService(c *catalog.Catalog, reps repository.RepRepo, onboarding repository.OnboardingRepo) ReportService {
	return &reportService{catalog: c, reps: reps, onboarding: onboarding}
}

func (s *reportService) BuildReport(ctx context.Context, repID string, now time.Time) (*app.RepReport, error) {
	rep, err := s.reps.GetByID(ctx, repID)
	if err != nil {
		return nil, err
	}
	rec, err := s.onboarding.Get(ctx, repID)
	if err != nil {
		return nil, err
	}

	agg := progress.NewAggregator(s.catalog, rec.Activities)
	maxDay := s.catalog.MaxDay()

	report := &app.RepReport{
		Rep:           rep,
		StartDate:     rec.StartDate,
		Overall:       agg.Overall(maxDay),
		CompletedDays: agg.CompletedDays(maxDay),
		GeneratedAt:   now,
	}
	report.Pace = s.buildPace(rec.StartDate, report.CompletedDays, now)
	report.Phases = s.buildPhases(agg)
	report.Weeks = s.buildWeeks(agg, rec.StartDate)
	report.Certifications = s.buildCertifications(agg, rec)
	return report, nil
}

func (s *reportService) BuildDay(ctx context.Context, repID string, day int, now time.Time) (*app.DayView, error) {
	info := s.catalog.Day(day)
	if info == nil {
		return nil, fmt.Errorf("no program entry for day %d", day)
	}
	rec, err := s.onboarding.Get(ctx, repID)
	if err != nil {
		return nil, err
	}

	agg := progress.NewAggregator(s.catalog, rec.Activities)
	view := &app.DayView{
		Day:           day,
		Title:         info.Title,
		Focus:         info.Focus,
		Activities:    info.Activities,
		Snapshot:      agg.Day(day, info.Activities),
		Complete:      agg.IsDayComplete(day, info.Activities),
		Certification: info.Certification,
		Milestone:     info.Milestone,
	}
	view.Done = make([]bool, len(info.Activities))
	for i := range info.Activities {
		view.Done[i] = rec.Activities.Done(day, i)
	}
	if rec.StartDate != nil {
		view.Date = schedule.FormatDayDate(*rec.StartDate, day)
		view.IsToday = schedule.IsTodayAt(*rec.StartDate, day, now)
		view.IsPast = schedule.IsPastDayAt(*rec.StartDate, day, now)
	}
	return view, nil
}

// buildPace assigns "not-started" itself; the scheduler is only consulted
// once a start date exists.
func (s *reportService) buildPace(startDate *time.Time, completedDays int, now time.Time) app.PaceView {
	if startDate == nil {
		return app.PaceView{
			State:       domain.ScheduleNotStarted,
			Message:     "Not started",
			ExpectedDay: 1,
		}
	}
	pace := schedule.StatusAt(*startDate, completedDays, now)
	return app.PaceView{
		State:       pace.State,
		DaysOffset:  pace.DaysOffset,
		Message:     pace.Message,
		CurrentDay:  schedule.CurrentDayAt(*startDate, now),
		ExpectedDay: schedule.ExpectedDayAt(*startDate, now),
	}
}

func (s *reportService) buildPhases(agg *progress.Aggregator) []app.PhaseView {
	var views []app.PhaseView
	for _, p := range s.catalog.Phases() {
		views = append(views, app.PhaseView{
			Name:     p.Name,
			StartDay: p.StartDay,
			EndDay:   p.EndDay,
			Color:    p.Color,
			Snapshot: agg.PhaseRange(p),
		})
	}
	return views
}

func (s *reportService) buildWeeks(agg *progress.Aggregator, startDate *time.Time) []app.WeekView {
	var views []app.WeekView
	for week := 1; week <= s.catalog.WeekCount(); week++ {
		days := s.catalog.WeekDays(week)
		view := app.WeekView{
			Week:     week,
			Days:     days,
			Snapshot: agg.Week(days),
		}
		if phase := s.catalog.Phase(days[0]); phase != nil {
			view.PhaseName = phase.Name
		}
		if startDate != nil {
			view.DateRange = schedule.FormatWeekRange(*startDate, week)
		}
		views = append(views, view)
	}
	return views
}

func (s *reportService) buildCertifications(agg *progress.Aggregator, rec *domain.OnboardingRecord) []app.CertificationView {
	var views []app.CertificationView
	for _, day := range s.catalog.CertificationDays() {
		cert, _ := s.catalog.Certification(day)
		view := app.CertificationView{
			Day:  day,
			Name: cert.Name,
			Icon: cert.Icon,
		}
		if info := s.catalog.Day(day); info != nil {
			view.Achieved = agg.IsDayComplete(day, info.Activities)
		}
		if ev, ok := rec.Evidence[day]; ok {
			evCopy := ev
			view.Evidence = &evCopy
		}
		if rec.StartDate != nil {
			view.Date = schedule.FormatDayDate(*rec.StartDate, day)
		}
		views = append(views, view)
	}
	return views
}
