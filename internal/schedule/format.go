package schedule

import (
	"fmt"
	"time"
)

// FormatWeekRange renders the calendar span of a 5-day program week,
// e.g. "Mar 3 - Mar 7".
func FormatWeekRange(startDate time.Time, week int) string {
	firstDay := (week-1)*5 + 1
	lastDay := week * 5

	from := DateForDay(startDate, firstDay)
	to := DateForDay(startDate, lastDay)
	return fmt.Sprintf("%s - %s", from.Format("Jan 2"), to.Format("Jan 2"))
}

// FormatDayDate renders the calendar date of a ramp day, e.g. "Mon, Mar 3".
func FormatDayDate(startDate time.Time, dayNumber int) string {
	return DateForDay(startDate, dayNumber).Format("Mon, Jan 2")
}

// IsToday reports whether the given ramp day falls on today's date.
func IsToday(startDate time.Time, dayNumber int) bool {
	return IsTodayAt(startDate, dayNumber, time.Now())
}

// IsTodayAt is IsToday evaluated against an explicit clock.
func IsTodayAt(startDate time.Time, dayNumber int, now time.Time) bool {
	return DateForDay(startDate, dayNumber).Equal(dateOnly(now))
}

// IsPastDay reports whether the given ramp day's date has already passed.
func IsPastDay(startDate time.Time, dayNumber int) bool {
	return IsPastDayAt(startDate, dayNumber, time.Now())
}

// IsPastDayAt is IsPastDay evaluated against an explicit clock.
func IsPastDayAt(startDate time.Time, dayNumber int, now time.Time) bool {
	return DateForDay(startDate, dayNumber).Before(dateOnly(now))
}
