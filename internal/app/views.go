// Package app defines the view payloads the service layer produces for
// dashboards, formatters, and coaching-prompt construction.
package app

import (
	"time"

	"github.com/rampkit/rampup/internal/domain"
	"github.com/rampkit/rampup/internal/progress"
)

// PaceView is the schedule-adherence block of a report. CurrentDay and
// ExpectedDay are nil/1 respectively when the rep has not started.
type PaceView struct {
	State      domain.ScheduleState
	DaysOffset int
	Message    string
	CurrentDay *int
	ExpectedDay int
}

// DayView is one rendered calendar day.
type DayView struct {
	Day           int
	Title         string
	Focus         string
	Date          string
	Activities    []string
	Done          []bool
	Snapshot      progress.Snapshot
	Complete      bool
	Certification bool
	Milestone     bool
	IsToday       bool
	IsPast        bool
}

// WeekView is one rendered 5-day program week.
type WeekView struct {
	Week      int
	PhaseName string
	DateRange string
	Days      []int
	Snapshot  progress.RangeSnapshot
}

// PhaseView is one rendered program phase.
type PhaseView struct {
	Name     string
	StartDay int
	EndDay   int
	Color    string
	Snapshot progress.RangeSnapshot
}

// CertificationView is the state of one certification checkpoint.
type CertificationView struct {
	Day      int
	Name     string
	Icon     string
	Achieved bool
	Evidence *domain.Evidence
	Date     string
}

// RepReport is the full per-rep dashboard payload: identity, pace,
// progress at every granularity, and certification status.
type RepReport struct {
	Rep            *domain.Rep
	StartDate      *time.Time
	Pace           PaceView
	Overall        progress.RangeSnapshot
	CompletedDays  int
	Phases         []PhaseView
	Weeks          []WeekView
	Certifications []CertificationView
	GeneratedAt    time.Time
}

// CoachSnapshot is the outbound contract handed to coaching-prompt
// builders: the rep's pace described in numbers.
type CoachSnapshot struct {
	Name          string
	CompletedDays int
	ExpectedDay   int
	DaysOffset    int
	State         domain.ScheduleState
	Percentage    int
}

// Snapshot derives the coaching contract from a report.
func (r *RepReport) Snapshot() CoachSnapshot {
	return CoachSnapshot{
		Name:          r.Rep.Name,
		CompletedDays: r.CompletedDays,
		ExpectedDay:   r.Pace.ExpectedDay,
		DaysOffset:    r.Pace.DaysOffset,
		State:         r.Pace.State,
		Percentage:    r.Overall.Percentage,
	}
}
