// Package schedule maps 1-based ramp day numbers onto calendar dates and
// classifies a rep's pace against the expected schedule. Ramp days cover
// business days only; Saturdays and Sundays never consume a day number.
// All functions are pure and total over valid dates.
package schedule

import (
	"fmt"
	"time"

	"github.com/rampkit/rampup/internal/domain"
)

// maxTrackedDay caps the "current day" marker. The catalog extends to day
// 90, but pace tracking stops at day 60: the core program is 60 days and
// the final month is tracked through certifications only.
const maxTrackedDay = 60

// Pace is the schedule-adherence classification for one rep.
type Pace struct {
	State      domain.ScheduleState
	DaysOffset int
	Message    string
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DateForDay returns the calendar date of the given ramp day. Day 1 is the
// start date itself, even when the start date falls on a weekend; the
// scheduler does not validate or shift the start date. Each later day
// advances one weekday at a time past any weekend.
//
// dayNumber must be >= 1; smaller values are a caller bug.
func DateForDay(startDate time.Time, dayNumber int) time.Time {
	result := dateOnly(startDate)
	added := 0
	for added < dayNumber-1 {
		result = result.AddDate(0, 0, 1)
		if !isWeekend(result) {
			added++
		}
	}
	return result
}

// CurrentDay returns the ramp day number for "today" relative to the start
// date, or nil when the start date is still in the future. The result is
// capped at maxTrackedDay.
func CurrentDay(startDate time.Time) *int {
	return currentDayAt(startDate, time.Now())
}

// CurrentDayAt is CurrentDay evaluated against an explicit clock, for
// reporting and tests.
func CurrentDayAt(startDate, now time.Time) *int {
	return currentDayAt(startDate, now)
}

func currentDayAt(startDate, now time.Time) *int {
	today := dateOnly(now)
	start := dateOnly(startDate)

	if start.After(today) {
		return nil
	}

	day := 1
	for check := start; check.Before(today); {
		check = check.AddDate(0, 0, 1)
		if !isWeekend(check) {
			day++
		}
	}
	if day > maxTrackedDay {
		day = maxTrackedDay
	}
	return &day
}

// ExpectedDay returns where the rep should be today. A future start date
// reads as "should be on day 1".
func ExpectedDay(startDate time.Time) int {
	return ExpectedDayAt(startDate, time.Now())
}

// ExpectedDayAt is ExpectedDay evaluated against an explicit clock.
func ExpectedDayAt(startDate, now time.Time) int {
	if current := currentDayAt(startDate, now); current != nil {
		return *current
	}
	return 1
}

// Status classifies completed progress against the expected day. Two or
// more days ahead is "ahead", within one day either way is "on-track",
// two or more behind is "behind". The "not-started" state belongs to the
// caller: a rep with no start date never reaches the scheduler.
func Status(startDate time.Time, completedDays int) Pace {
	return StatusAt(startDate, completedDays, time.Now())
}

// StatusAt is Status evaluated against an explicit clock.
func StatusAt(startDate time.Time, completedDays int, now time.Time) Pace {
	offset := completedDays - ExpectedDayAt(startDate, now)

	switch {
	case offset >= 2:
		return Pace{
			State:      domain.ScheduleAhead,
			DaysOffset: offset,
			Message:    fmt.Sprintf("%d days ahead of schedule", offset),
		}
	case offset >= -1:
		return Pace{
			State:      domain.ScheduleOnTrack,
			DaysOffset: offset,
			Message:    "On track",
		}
	default:
		return Pace{
			State:      domain.ScheduleBehind,
			DaysOffset: offset,
			Message:    fmt.Sprintf("%d days behind schedule", -offset),
		}
	}
}

// NextMonday returns the Monday on or after the given date: Sunday rolls
// forward one day, Monday is returned unchanged, any other weekday rolls
// forward to the following week's Monday.
func NextMonday(from time.Time) time.Time {
	d := dateOnly(from)
	switch d.Weekday() {
	case time.Monday:
		return d
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d.AddDate(0, 0, 8-int(d.Weekday()))
	}
}
