package progress

import (
	"testing"

	"github.com/rampkit/rampup/internal/catalog"
	"github.com/rampkit/rampup/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProgramYAML = `
max_day: 10
days:
  1:
    title: "One"
    activities: ["a", "b", "c", "d"]
  2:
    title: "Two"
    activities: ["a", "b", "c"]
  5:
    title: "Five"
    activities: ["a"]
phases:
  - name: "Week 1"
    start_day: 1
    end_day: 5
    color: "blue"
  - name: "Week 2"
    start_day: 6
    end_day: 10
    color: "green"
`

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(testProgramYAML))
	require.NoError(t, err)
	return c
}

func TestDay_EmptyStateAndEmptyDay(t *testing.T) {
	agg := NewAggregator(testCatalog(t), make(domain.ActivityState))

	assert.Equal(t, Snapshot{Completed: 0, Total: 4, Percentage: 0}, agg.Day(1, []string{"a", "b", "c", "d"}))
	// A day with no activities yields the zero snapshot.
	assert.Equal(t, Snapshot{}, agg.Day(3, nil))
}

func TestDay_Percentages(t *testing.T) {
	state := make(domain.ActivityState)
	state.Toggle(1, 0)
	state.Toggle(1, 1)
	agg := NewAggregator(testCatalog(t), state)

	// 2/4 = 50
	assert.Equal(t, Snapshot{Completed: 2, Total: 4, Percentage: 50}, agg.Day(1, []string{"a", "b", "c", "d"}))

	// 1/3 rounds to 33
	state2 := make(domain.ActivityState)
	state2.Toggle(2, 0)
	agg2 := NewAggregator(testCatalog(t), state2)
	assert.Equal(t, 33, agg2.Day(2, []string{"a", "b", "c"}).Percentage)

	// 2/3 rounds to 67
	state2.Toggle(2, 1)
	assert.Equal(t, 67, agg2.Day(2, []string{"a", "b", "c"}).Percentage)
}

func TestIsDayComplete(t *testing.T) {
	state := make(domain.ActivityState)
	agg := NewAggregator(testCatalog(t), state)
	activities := []string{"a", "b", "c", "d"}

	assert.False(t, agg.IsDayComplete(1, activities))

	for i := range activities {
		state.Toggle(1, i)
	}
	assert.True(t, agg.IsDayComplete(1, activities))

	// A day with no activities is never complete.
	assert.False(t, agg.IsDayComplete(3, nil))
}

func TestWeek_SumsAcrossDays(t *testing.T) {
	state := make(domain.ActivityState)
	// Complete day 2 fully, day 1 half.
	state.Toggle(1, 0)
	state.Toggle(1, 1)
	for i := 0; i < 3; i++ {
		state.Toggle(2, i)
	}
	agg := NewAggregator(testCatalog(t), state)

	snap := agg.Week([]int{1, 2, 3, 4, 5})
	// Days 3 and 4 have no catalog entry and contribute nothing.
	assert.Equal(t, 5, snap.Completed)
	assert.Equal(t, 8, snap.Total)
	assert.Equal(t, 63, snap.Percentage)
	assert.Equal(t, 1, snap.DaysComplete)
	assert.Equal(t, 5, snap.TotalDays)
}

func TestPhaseRangeAndOverall(t *testing.T) {
	state := make(domain.ActivityState)
	state.Toggle(5, 0)
	agg := NewAggregator(testCatalog(t), state)

	phase := testCatalog(t).Phases()[0]
	snap := agg.PhaseRange(phase)
	assert.Equal(t, 1, snap.Completed)
	assert.Equal(t, 8, snap.Total)
	assert.Equal(t, 1, snap.DaysComplete)

	overall := agg.Overall(10)
	assert.Equal(t, 1, overall.Completed)
	assert.Equal(t, 8, overall.Total)
	assert.Equal(t, 10, overall.TotalDays)
	assert.Equal(t, 13, overall.Percentage)

	// Phase 2 has no catalog entries at all.
	empty := agg.PhaseRange(testCatalog(t).Phases()[1])
	assert.Equal(t, RangeSnapshot{TotalDays: 5}, empty)
}

func TestCompletedDays(t *testing.T) {
	state := make(domain.ActivityState)
	agg := NewAggregator(testCatalog(t), state)
	assert.Equal(t, 0, agg.CompletedDays(10))

	state.Toggle(5, 0)
	assert.Equal(t, 1, agg.CompletedDays(10))

	for i := 0; i < 3; i++ {
		state.Toggle(2, i)
	}
	assert.Equal(t, 2, agg.CompletedDays(10))
}
