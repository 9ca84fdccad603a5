// Package progress reduces a rep's sparse activity completion map and the
// program catalog into completion snapshots at day, week, phase, and
// overall granularity. All computations are pure scans; at program scale
// (90 days, ~6 activities each) recomputing from scratch is cheap enough
// to do on every read.
package progress

import (
	"math"

	"github.com/rampkit/rampup/internal/catalog"
	"github.com/rampkit/rampup/internal/domain"
)

// Snapshot is the completion state of one scope.
type Snapshot struct {
	Completed  int
	Total      int
	Percentage int
}

// RangeSnapshot extends Snapshot with whole-day completion counts for
// multi-day scopes.
type RangeSnapshot struct {
	Snapshot
	DaysComplete int
	TotalDays    int
}

// Aggregator evaluates progress for one rep against a fixed catalog.
type Aggregator struct {
	catalog *catalog.Catalog
	state   domain.ActivityState
}

// NewAggregator creates an Aggregator over the given catalog and state.
// The state is read, never mutated.
func NewAggregator(c *catalog.Catalog, state domain.ActivityState) *Aggregator {
	return &Aggregator{catalog: c, state: state}
}

func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// Day returns the snapshot for one ramp day given its activity list.
func (a *Aggregator) Day(day int, activities []string) Snapshot {
	if len(activities) == 0 {
		return Snapshot{}
	}
	completed := 0
	for i := range activities {
		if a.state.Done(day, i) {
			completed++
		}
	}
	return Snapshot{
		Completed:  completed,
		Total:      len(activities),
		Percentage: percentage(completed, len(activities)),
	}
}

// IsDayComplete reports whether every activity of the day is done. A day
// with no activities is never complete.
func (a *Aggregator) IsDayComplete(day int, activities []string) bool {
	if len(activities) == 0 {
		return false
	}
	for i := range activities {
		if !a.state.Done(day, i) {
			return false
		}
	}
	return true
}

// accumulate folds one day into a running range snapshot. Days without a
// catalog entry contribute nothing.
func (a *Aggregator) accumulate(snap *RangeSnapshot, day int) {
	info := a.catalog.Day(day)
	if info == nil {
		return
	}
	daySnap := a.Day(day, info.Activities)
	snap.Completed += daySnap.Completed
	snap.Total += daySnap.Total
	if a.IsDayComplete(day, info.Activities) {
		snap.DaysComplete++
	}
}

// Week sums progress across an explicit set of day numbers.
func (a *Aggregator) Week(days []int) RangeSnapshot {
	snap := RangeSnapshot{TotalDays: len(days)}
	for _, day := range days {
		a.accumulate(&snap, day)
	}
	snap.Percentage = percentage(snap.Completed, snap.Total)
	return snap
}

// PhaseRange sums progress across a phase's inclusive day range.
func (a *Aggregator) PhaseRange(p catalog.Phase) RangeSnapshot {
	snap := RangeSnapshot{TotalDays: p.EndDay - p.StartDay + 1}
	for day := p.StartDay; day <= p.EndDay; day++ {
		a.accumulate(&snap, day)
	}
	snap.Percentage = percentage(snap.Completed, snap.Total)
	return snap
}

// Overall sums progress across days 1..maxDay.
func (a *Aggregator) Overall(maxDay int) RangeSnapshot {
	snap := RangeSnapshot{TotalDays: maxDay}
	for day := 1; day <= maxDay; day++ {
		a.accumulate(&snap, day)
	}
	snap.Percentage = percentage(snap.Completed, snap.Total)
	return snap
}

// CompletedDays counts fully complete days in 1..maxDay. This count feeds
// the schedule pace classification.
func (a *Aggregator) CompletedDays(maxDay int) int {
	count := 0
	for day := 1; day <= maxDay; day++ {
		info := a.catalog.Day(day)
		if info == nil {
			continue
		}
		if a.IsDayComplete(day, info.Activities) {
			count++
		}
	}
	return count
}
