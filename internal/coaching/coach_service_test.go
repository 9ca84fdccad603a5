package coaching

import (
	"context"
	"fmt"
	"testing"

	"github.com/rampkit/rampup/internal/app"
	"github.com/rampkit/rampup/internal/domain"
	"github.com/rampkit/rampup/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns canned text or an error for every Complete call.
type stubClient struct {
	text string
	err  error
	last llm.CompleteRequest
}

func (s *stubClient) Complete(ctx context.Context, req llm.CompleteRequest) (*llm.CompleteResponse, error) {
	s.last = req
	if s.err != nil {
		return nil, s.err
	}
	return &llm.CompleteResponse{Text: s.text}, nil
}

func (s *stubClient) Available(ctx context.Context) bool {
	return s.err == nil
}

func behindSnapshot() app.CoachSnapshot {
	return app.CoachSnapshot{
		Name:          "Sam Vera",
		CompletedDays: 3,
		ExpectedDay:   6,
		DaysOffset:    -3,
		State:         domain.ScheduleBehind,
		Percentage:    12,
	}
}

func TestRecommendations_ParsesModelOutput(t *testing.T) {
	stub := &stubClient{text: `[
		{"priority": "high", "title": "Call blitz", "description": "d", "action": "a"}
	]`}
	svc := NewCoachService(stub)

	recs := svc.Recommendations(context.Background(), behindSnapshot())
	require.Len(t, recs, 1)
	assert.Equal(t, "Call blitz", recs[0].Title)
	assert.Equal(t, llm.TaskCoach, stub.last.Task)
	assert.Contains(t, stub.last.UserPrompt, "Sam Vera")
	assert.Contains(t, stub.last.UserPrompt, "Days behind: 3")
}

func TestRecommendations_FallsBackOnError(t *testing.T) {
	stub := &stubClient{err: llm.ErrUnavailable}
	svc := NewCoachService(stub)

	recs := svc.Recommendations(context.Background(), behindSnapshot())
	assert.Equal(t, DeterministicRecommendations(behindSnapshot()), recs)
}

func TestRecommendations_FallsBackOnBadOutput(t *testing.T) {
	stub := &stubClient{text: `[{"priority": "urgent", "title": "x"}]`}
	svc := NewCoachService(stub)

	recs := svc.Recommendations(context.Background(), behindSnapshot())
	assert.Equal(t, DeterministicRecommendations(behindSnapshot()), recs)
}

func TestRecommendations_NilClientUsesFallback(t *testing.T) {
	svc := NewCoachService(nil)
	recs := svc.Recommendations(context.Background(), behindSnapshot())
	require.NotEmpty(t, recs)
	assert.Equal(t, PriorityHigh, recs[0].Priority)
}

func TestDailyAdvice_Fallback(t *testing.T) {
	svc := NewCoachService(nil)
	activities := []string{"a", "b", "c", "d", "e"}

	advice := svc.DailyAdvice(context.Background(), behindSnapshot(), 2, activities)
	assert.Equal(t, []string{"a", "b", "c"}, advice.Priorities)
	assert.NotEmpty(t, advice.Reasoning)
}

func TestReviewCall(t *testing.T) {
	stub := &stubClient{text: `{
		"scores": [{"category": "Opening", "score": 7, "feedback": "good"}],
		"overallScore": 7,
		"strengths": ["energy"],
		"improvements": ["pausing"]
	}`}
	svc := NewCoachService(stub)

	review, err := svc.ReviewCall(context.Background(), "PROSPECT: hello\nBDR: hi")
	require.NoError(t, err)
	assert.Equal(t, 7, review.OverallScore)
	assert.Equal(t, llm.TaskCallReview, stub.last.Task)
}

func TestReviewCall_Errors(t *testing.T) {
	svc := NewCoachService(nil)
	_, err := svc.ReviewCall(context.Background(), "transcript")
	assert.ErrorIs(t, err, llm.ErrUnavailable)

	stub := &stubClient{text: "{}"}
	svc = NewCoachService(stub)
	_, err = svc.ReviewCall(context.Background(), "   ")
	assert.Error(t, err)

	// Out-of-range scores are rejected rather than surfaced.
	stub = &stubClient{text: `{"scores": [{"category": "x", "score": 14}], "overallScore": 7}`}
	svc = NewCoachService(stub)
	_, err = svc.ReviewCall(context.Background(), "transcript")
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestTeamSummary_Fallback(t *testing.T) {
	svc := NewCoachService(nil)
	snaps := []app.CoachSnapshot{
		behindSnapshot(),
		{Name: "Pat Ode", State: domain.ScheduleAhead, DaysOffset: 2},
		{Name: "Kit Ray", State: domain.ScheduleNotStarted},
	}

	summary := svc.TeamSummary(context.Background(), snaps)
	assert.Contains(t, summary.Summary, "3 BDRs tracked")
	assert.Len(t, summary.NeedsAttention, 2)
	assert.Len(t, summary.Wins, 1)
	assert.NotEmpty(t, summary.Recommendations)
}

func TestRoleplayReply(t *testing.T) {
	stub := &stubClient{text: "  Who is this? I have two minutes.  "}
	svc := NewCoachService(stub)

	history := []RoleplayMessage{
		{Role: "bdr", Content: "Hi, this is Sam from Acme."},
		{Role: "prospect", Content: "I'm busy."},
	}
	reply, err := svc.RoleplayReply(context.Background(), ScenarioColdCall, history, "I'll be quick.")
	require.NoError(t, err)
	assert.Equal(t, "Who is this? I have two minutes.", reply)
	assert.Equal(t, llm.TaskRoleplay, stub.last.Task)
	assert.Contains(t, stub.last.UserPrompt, "BDR: Hi, this is Sam from Acme.")
	assert.Contains(t, stub.last.UserPrompt, "Prospect: I'm busy.")

	_, err = svc.RoleplayReply(context.Background(), RoleplayScenario("debate"), nil, "x")
	assert.Error(t, err)
}

func TestDeterministicRecommendations_CoverAllStates(t *testing.T) {
	for _, state := range []domain.ScheduleState{
		domain.ScheduleAhead, domain.ScheduleOnTrack,
		domain.ScheduleBehind, domain.ScheduleNotStarted,
	} {
		snap := app.CoachSnapshot{Name: "X", State: state, DaysOffset: 2}
		recs := DeterministicRecommendations(snap)
		require.NotEmpty(t, recs, "state %s", state)
		assert.NoError(t, ValidateRecommendations(recs), fmt.Sprintf("state %s", state))
	}
}
