package coaching

import (
	"context"
	"fmt"
	"strings"

	"github.com/rampkit/rampup/internal/app"
	"github.com/rampkit/rampup/internal/domain"
	"github.com/rampkit/rampup/internal/llm"
)

// CoachService generates coaching output from rep pace snapshots. All
// narrative methods degrade to deterministic output when the LLM fails;
// transcript review and roleplay require a working model and return the
// underlying error instead.
type CoachService interface {
	Recommendations(ctx context.Context, snap app.CoachSnapshot) []Recommendation
	DailyAdvice(ctx context.Context, snap app.CoachSnapshot, week int, activities []string) DailyAdvice
	ReviewCall(ctx context.Context, transcript string) (*CallReview, error)
	TeamSummary(ctx context.Context, snaps []app.CoachSnapshot) TeamSummary
	RoleplayReply(ctx context.Context, scenario RoleplayScenario, history []RoleplayMessage, message string) (string, error)
}

type coachService struct {
	client llm.Client
}

// NewCoachService creates a CoachService backed by an LLM client. A nil
// client is allowed; every method then uses its fallback path.
func NewCoachService(client llm.Client) CoachService {
	return &coachService{client: client}
}

func describeSnapshot(snap app.CoachSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "BDR: %s\n", snap.Name)
	fmt.Fprintf(&b, "Status: %s\n", snap.State)
	fmt.Fprintf(&b, "Progress: Day %d of 60 (%d%% complete)\n", snap.CompletedDays, snap.Percentage)
	fmt.Fprintf(&b, "Expected Day: %d\n", snap.ExpectedDay)
	switch {
	case snap.DaysOffset > 0:
		fmt.Fprintf(&b, "Days ahead: %d\n", snap.DaysOffset)
	case snap.DaysOffset < 0:
		fmt.Fprintf(&b, "Days behind: %d\n", -snap.DaysOffset)
	default:
		b.WriteString("On track\n")
	}
	return b.String()
}

func (s *coachService) Recommendations(ctx context.Context, snap app.CoachSnapshot) []Recommendation {
	if s.client == nil {
		return DeterministicRecommendations(snap)
	}

	prompt := "Analyze this BDR's progress and provide 2-3 specific coaching recommendations:\n\n" +
		describeSnapshot(snap)

	resp, err := s.client.Complete(ctx, llm.CompleteRequest{
		Task:         llm.TaskCoach,
		SystemPrompt: coachSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return DeterministicRecommendations(snap)
	}

	recs, err := llm.ExtractJSONArray[[]Recommendation](resp.Text, ValidateRecommendations)
	if err != nil {
		return DeterministicRecommendations(snap)
	}
	return recs
}

func (s *coachService) DailyAdvice(ctx context.Context, snap app.CoachSnapshot, week int, activities []string) DailyAdvice {
	if s.client == nil {
		return DeterministicDailyAdvice(snap, activities)
	}

	prompt := fmt.Sprintf(
		"BDR needs daily guidance:\nName: %s, Week: %d, Day %d/60, Status: %s\n\nSuggest top 3 priorities and brief reasoning.",
		snap.Name, week, snap.CompletedDays, snap.State)

	resp, err := s.client.Complete(ctx, llm.CompleteRequest{
		Task:         llm.TaskAdvisor,
		SystemPrompt: advisorSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return DeterministicDailyAdvice(snap, activities)
	}

	advice, err := llm.ExtractJSON[DailyAdvice](resp.Text, func(a DailyAdvice) error {
		if len(a.Priorities) == 0 {
			return fmt.Errorf("no priorities returned")
		}
		return nil
	})
	if err != nil {
		return DeterministicDailyAdvice(snap, activities)
	}
	return advice
}

func (s *coachService) ReviewCall(ctx context.Context, transcript string) (*CallReview, error) {
	if s.client == nil {
		return nil, fmt.Errorf("call review requires an LLM: %w", llm.ErrUnavailable)
	}
	if strings.TrimSpace(transcript) == "" {
		return nil, fmt.Errorf("transcript is empty")
	}

	resp, err := s.client.Complete(ctx, llm.CompleteRequest{
		Task:         llm.TaskCallReview,
		SystemPrompt: callReviewSystemPrompt,
		UserPrompt:   "Analyze this call transcript:\n\n" + transcript,
	})
	if err != nil {
		return nil, err
	}

	review, err := llm.ExtractJSON[CallReview](resp.Text, ValidateCallReview)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *coachService) TeamSummary(ctx context.Context, snaps []app.CoachSnapshot) TeamSummary {
	if s.client == nil || len(snaps) == 0 {
		return DeterministicTeamSummary(snaps)
	}

	var lines []string
	var ahead, onTrack, behind int
	for _, b := range snaps {
		lines = append(lines, fmt.Sprintf("- %s: %s (Day %d, %d%%)", b.Name, b.State, b.CompletedDays, b.Percentage))
		switch b.State {
		case domain.ScheduleAhead:
			ahead++
		case domain.ScheduleOnTrack:
			onTrack++
		case domain.ScheduleBehind:
			behind++
		}
	}
	prompt := fmt.Sprintf("Generate weekly summary:\n\n%s\n\nStats: %d total, %d ahead, %d on track, %d behind",
		strings.Join(lines, "\n"), len(snaps), ahead, onTrack, behind)

	resp, err := s.client.Complete(ctx, llm.CompleteRequest{
		Task:         llm.TaskWeeklySummary,
		SystemPrompt: weeklySummarySystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return DeterministicTeamSummary(snaps)
	}

	summary, err := llm.ExtractJSON[TeamSummary](resp.Text, func(s TeamSummary) error {
		if s.Summary == "" {
			return fmt.Errorf("empty summary")
		}
		return nil
	})
	if err != nil {
		return DeterministicTeamSummary(snaps)
	}
	return summary
}

func (s *coachService) RoleplayReply(ctx context.Context, scenario RoleplayScenario, history []RoleplayMessage, message string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("roleplay requires an LLM: %w", llm.ErrUnavailable)
	}
	persona, ok := scenarioPrompts[scenario]
	if !ok {
		return "", fmt.Errorf("unknown roleplay scenario %q", scenario)
	}

	var b strings.Builder
	b.WriteString("Previous conversation:\n")
	for _, m := range history {
		speaker := "Prospect"
		if m.Role == "bdr" {
			speaker = "BDR"
		}
		fmt.Fprintf(&b, "%s: %s\n", speaker, m.Content)
	}
	fmt.Fprintf(&b, "\nBDR: %s\n\nRespond as the prospect (2-4 sentences, stay in character):", message)

	resp, err := s.client.Complete(ctx, llm.CompleteRequest{
		Task:         llm.TaskRoleplay,
		SystemPrompt: persona + roleplayRules,
		UserPrompt:   b.String(),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text), nil
}
