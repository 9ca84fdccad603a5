package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityKey_RoundTrip(t *testing.T) {
	for _, k := range []ActivityKey{
		{Day: 1, Index: 0},
		{Day: 14, Index: 5},
		{Day: 90, Index: 11},
	} {
		parsed, err := ParseActivityKey(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
}

func TestParseActivityKey_Rejects(t *testing.T) {
	for _, raw := range []string{"", "14", "x-1", "1-x", "0-0", "1--1", "-1-2"} {
		_, err := ParseActivityKey(raw)
		assert.Error(t, err, "key %q", raw)
	}
}

func TestActivityState_Toggle(t *testing.T) {
	state := make(ActivityState)

	state.Toggle(3, 1)
	assert.True(t, state.Done(3, 1))

	// Toggling off removes the entry entirely.
	state.Toggle(3, 1)
	assert.False(t, state.Done(3, 1))
	assert.Empty(t, state)
}

func TestActivityState_ToggleDay(t *testing.T) {
	state := make(ActivityState)

	// A partially complete day fills in the rest.
	state.Toggle(2, 0)
	state.ToggleDay(2, 3)
	for i := 0; i < 3; i++ {
		assert.True(t, state.Done(2, i))
	}

	// A fully complete day clears everything.
	state.ToggleDay(2, 3)
	assert.Empty(t, state)

	// Zero activities is a no-op.
	state.ToggleDay(5, 0)
	assert.Empty(t, state)
}

func TestActivityState_ToggleDayIdempotentPair(t *testing.T) {
	// From a uniform state a ToggleDay pair is a round trip: full day
	// flips to empty and back, empty day flips to full and back.
	state := make(ActivityState)
	state.ToggleDay(4, 5)

	full := state.Flat()
	state.ToggleDay(4, 5)
	state.ToggleDay(4, 5)
	assert.Equal(t, full, state.Flat())

	state.ToggleDay(4, 5)
	state.ToggleDay(4, 5)
	assert.Equal(t, full, state.Flat())
}

func TestActivityState_ToggleDayCollapsesPartialDay(t *testing.T) {
	// A partial day is not a fixed point: the first flip completes the
	// day, the second clears it, and the partial state never returns.
	state := make(ActivityState)
	state.Toggle(4, 2)

	state.ToggleDay(4, 5)
	for i := 0; i < 5; i++ {
		assert.True(t, state.Done(4, i))
	}

	state.ToggleDay(4, 5)
	assert.Empty(t, state)
}

func TestActivityState_FlatRoundTrip(t *testing.T) {
	state := make(ActivityState)
	state.Toggle(1, 0)
	state.Toggle(14, 3)

	flat := state.Flat()
	assert.Equal(t, map[string]bool{"1-0": true, "14-3": true}, flat)

	rebuilt := ActivityStateFromFlat(flat)
	assert.Equal(t, state, rebuilt)
}

func TestActivityStateFromFlat_SkipsBadKeys(t *testing.T) {
	state := ActivityStateFromFlat(map[string]bool{
		"1-0":      true,
		"garbage":  true,
		"0-1":      true,  // day numbers start at 1
		"2-2":      false, // false entries are dropped
		"3-1":      true,
	})
	assert.Equal(t, ActivityState{
		{Day: 1, Index: 0}: true,
		{Day: 3, Index: 1}: true,
	}, state)
}
