package coaching

import (
	"fmt"

	"github.com/rampkit/rampup/internal/app"
	"github.com/rampkit/rampup/internal/domain"
)

// DeterministicRecommendations produces rule-based coaching suggestions
// when the LLM is disabled or fails. The output mirrors what a manager
// playbook would say for each pace state.
func DeterministicRecommendations(snap app.CoachSnapshot) []Recommendation {
	switch snap.State {
	case domain.ScheduleBehind:
		return []Recommendation{
			{
				Priority:    PriorityHigh,
				Title:       "Schedule a catch-up plan",
				Description: fmt.Sprintf("%s is %d days behind the expected pace.", snap.Name, -snap.DaysOffset),
				Action:      "Block 30 minutes to walk the remaining checklist together and agree on a recovery plan.",
			},
			{
				Priority:    PriorityMedium,
				Title:       "Identify blockers",
				Description: "Falling behind early usually points to unclear expectations or missing access.",
				Action:      "Ask which activities are stuck and remove one blocker today.",
			},
		}
	case domain.ScheduleAhead:
		return []Recommendation{
			{
				Priority:    PriorityLow,
				Title:       "Add stretch work",
				Description: fmt.Sprintf("%s is %d days ahead of schedule.", snap.Name, snap.DaysOffset),
				Action:      "Layer in extra call shadowing or early prospecting reps to keep momentum.",
			},
		}
	case domain.ScheduleNotStarted:
		return []Recommendation{
			{
				Priority:    PriorityHigh,
				Title:       "Set a start date",
				Description: "Pace tracking begins once a start date exists.",
				Action:      "Pick the next Monday as day 1 and confirm the week 1 calendar.",
			},
		}
	default:
		return []Recommendation{
			{
				Priority:    PriorityMedium,
				Title:       "Keep the cadence",
				Description: fmt.Sprintf("%s is on track at %d%% complete.", snap.Name, snap.Percentage),
				Action:      "Hold the daily check-in and review this week's certification criteria.",
			},
		}
	}
}

// DeterministicDailyAdvice falls back to the current day's catalog
// activities as the priority list.
func DeterministicDailyAdvice(snap app.CoachSnapshot, activities []string) DailyAdvice {
	n := len(activities)
	if n > 3 {
		n = 3
	}
	advice := DailyAdvice{
		Priorities: append([]string(nil), activities[:n]...),
		Reasoning:  "Top items from today's ramp checklist, in program order.",
	}
	if snap.State == domain.ScheduleBehind {
		advice.Reasoning = "Clear today's checklist first; catching up starts with finishing the current day."
	}
	return advice
}

// DeterministicTeamSummary produces a plain counts-based roll-up.
func DeterministicTeamSummary(snaps []app.CoachSnapshot) TeamSummary {
	var ahead, onTrack, behind, notStarted int
	summary := TeamSummary{}
	for _, s := range snaps {
		switch s.State {
		case domain.ScheduleAhead:
			ahead++
			summary.Wins = append(summary.Wins, fmt.Sprintf("%s is %d days ahead", s.Name, s.DaysOffset))
		case domain.ScheduleBehind:
			behind++
			summary.NeedsAttention = append(summary.NeedsAttention, fmt.Sprintf("%s is %d days behind", s.Name, -s.DaysOffset))
		case domain.ScheduleNotStarted:
			notStarted++
			summary.NeedsAttention = append(summary.NeedsAttention, fmt.Sprintf("%s has not started", s.Name))
		default:
			onTrack++
		}
	}
	summary.Summary = fmt.Sprintf("%d BDRs tracked: %d ahead, %d on track, %d behind, %d not started.",
		len(snaps), ahead, onTrack, behind, notStarted)
	if behind > 0 {
		summary.Recommendations = append(summary.Recommendations, "Prioritize 1:1 time with the BDRs running behind.")
	}
	return summary
}
