package domain

import "time"

// ManagerNotes holds a manager's coaching annotations for one BDR:
// free-form notes per ramp day, summaries per week, and an ad-hoc
// checklist of manager-side follow-ups.
type ManagerNotes struct {
	RepID           string
	DailyNotes      map[int]string
	WeeklySummaries map[int]string
	Checklist       map[string]bool
	UpdatedAt       time.Time
}

// NewManagerNotes creates an empty notes record for a rep.
func NewManagerNotes(repID string, now time.Time) *ManagerNotes {
	return &ManagerNotes{
		RepID:           repID,
		DailyNotes:      make(map[int]string),
		WeeklySummaries: make(map[int]string),
		Checklist:       make(map[string]bool),
		UpdatedAt:       now,
	}
}
