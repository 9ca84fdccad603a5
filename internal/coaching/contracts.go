package coaching

import "fmt"

// Priority levels for coaching recommendations.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Recommendation is one actionable coaching suggestion for a manager.
type Recommendation struct {
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// ValidateRecommendations checks the parsed LLM output before it is
// surfaced: priorities must be one of the known levels and titles present.
func ValidateRecommendations(recs []Recommendation) error {
	if len(recs) == 0 {
		return fmt.Errorf("no recommendations returned")
	}
	for i, r := range recs {
		switch r.Priority {
		case PriorityHigh, PriorityMedium, PriorityLow:
		default:
			return fmt.Errorf("recommendation %d: unknown priority %q", i, r.Priority)
		}
		if r.Title == "" {
			return fmt.Errorf("recommendation %d: missing title", i)
		}
	}
	return nil
}

// DailyAdvice is the advisor's prioritized plan for one day.
type DailyAdvice struct {
	Priorities []string `json:"priorities"`
	Reasoning  string   `json:"reasoning"`
}

// CategoryScore is one scored dimension of a call review.
type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// CallReview is the structured analysis of a call transcript.
type CallReview struct {
	Scores       []CategoryScore `json:"scores"`
	OverallScore int             `json:"overallScore"`
	Strengths    []string        `json:"strengths"`
	Improvements []string        `json:"improvements"`
}

// ValidateCallReview rejects reviews with out-of-range scores.
func ValidateCallReview(r CallReview) error {
	if len(r.Scores) == 0 {
		return fmt.Errorf("call review has no category scores")
	}
	for _, s := range r.Scores {
		if s.Score < 1 || s.Score > 10 {
			return fmt.Errorf("category %q score %d outside 1..10", s.Category, s.Score)
		}
	}
	if r.OverallScore < 1 || r.OverallScore > 10 {
		return fmt.Errorf("overall score %d outside 1..10", r.OverallScore)
	}
	return nil
}

// TeamSummary is the weekly roll-up across a manager's BDRs.
type TeamSummary struct {
	Summary         string   `json:"summary"`
	NeedsAttention  []string `json:"needsAttention"`
	Wins            []string `json:"wins"`
	Recommendations []string `json:"recommendations"`
}

// RoleplayScenario selects the prospect persona for practice calls.
type RoleplayScenario string

const (
	ScenarioColdCall  RoleplayScenario = "cold-call"
	ScenarioDiscovery RoleplayScenario = "discovery"
	ScenarioObjection RoleplayScenario = "objection"
	ScenarioClosing   RoleplayScenario = "closing"
)

// RoleplayMessage is one turn of a practice conversation.
type RoleplayMessage struct {
	Role    string `json:"role"` // "bdr" or "prospect"
	Content string `json:"content"`
}
