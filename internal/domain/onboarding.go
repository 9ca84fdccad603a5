package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ActivityKey identifies one checklist item: a 1-based ramp day number and
// a 0-based position within that day's activity list.
type ActivityKey struct {
	Day   int
	Index int
}

// String renders the flat persistence/export form "<day>-<index>",
// decimal with no leading zeros and a single hyphen separator.
func (k ActivityKey) String() string {
	return strconv.Itoa(k.Day) + "-" + strconv.Itoa(k.Index)
}

// ParseActivityKey parses the flat "<day>-<index>" form. The day number is
// the decimal prefix before the first hyphen.
func ParseActivityKey(s string) (ActivityKey, error) {
	dayStr, idxStr, ok := strings.Cut(s, "-")
	if !ok {
		return ActivityKey{}, fmt.Errorf("activity key %q: missing separator", s)
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 {
		return ActivityKey{}, fmt.Errorf("activity key %q: bad day number", s)
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil || idx < 0 {
		return ActivityKey{}, fmt.Errorf("activity key %q: bad activity index", s)
	}
	return ActivityKey{Day: day, Index: idx}, nil
}

// ActivityState is the sparse completion map for a single BDR. A missing
// key means not done.
type ActivityState map[ActivityKey]bool

// Done reports whether the given activity slot is marked complete.
func (s ActivityState) Done(day, index int) bool {
	return s[ActivityKey{Day: day, Index: index}]
}

// Toggle flips a single activity slot. Slots that end up false are removed
// so the map stays sparse.
func (s ActivityState) Toggle(day, index int) {
	k := ActivityKey{Day: day, Index: index}
	if s[k] {
		delete(s, k)
		return
	}
	s[k] = true
}

// ToggleDay flips a whole day as one atomic operation: if every one of the
// day's activityCount slots is done, all are cleared; otherwise all are set.
func (s ActivityState) ToggleDay(day, activityCount int) {
	allDone := activityCount > 0
	for i := 0; i < activityCount; i++ {
		if !s.Done(day, i) {
			allDone = false
			break
		}
	}
	for i := 0; i < activityCount; i++ {
		k := ActivityKey{Day: day, Index: i}
		if allDone {
			delete(s, k)
		} else {
			s[k] = true
		}
	}
}

// Flat returns the string-keyed view used at the persistence and
// export/import boundary. Only true entries are emitted.
func (s ActivityState) Flat() map[string]bool {
	out := make(map[string]bool, len(s))
	for k, done := range s {
		if done {
			out[k.String()] = true
		}
	}
	return out
}

// ActivityStateFromFlat rebuilds an ActivityState from flat string keys.
// Unparseable keys are skipped: the flat map is externally supplied and may
// contain stale entries.
func ActivityStateFromFlat(flat map[string]bool) ActivityState {
	state := make(ActivityState, len(flat))
	for raw, done := range flat {
		if !done {
			continue
		}
		k, err := ParseActivityKey(raw)
		if err != nil {
			continue
		}
		state[k] = true
	}
	return state
}

// Evidence is an artifact attached to a certification day: a link or an
// uploaded file reference.
type Evidence struct {
	Type  EvidenceType
	Value string
	Name  string
	Date  time.Time
}

// OnboardingRecord is the per-BDR ramp state: the start date (nil until the
// program begins), the activity completion map, and certification evidence
// keyed by day number.
type OnboardingRecord struct {
	RepID      string
	StartDate  *time.Time
	Activities ActivityState
	Evidence   map[int]Evidence
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewOnboardingRecord creates an empty record for a rep that has not
// started the program.
func NewOnboardingRecord(repID string, now time.Time) *OnboardingRecord {
	return &OnboardingRecord{
		RepID:      repID,
		Activities: make(ActivityState),
		Evidence:   make(map[int]Evidence),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Reset clears all completion state and evidence. The start date is kept.
func (r *OnboardingRecord) Reset() {
	r.Activities = make(ActivityState)
	r.Evidence = make(map[int]Evidence)
}
