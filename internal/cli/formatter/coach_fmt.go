package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rampkit/rampup/internal/coaching"
)

func priorityTag(priority string) string {
	switch priority {
	case coaching.PriorityHigh:
		return StyleRed.Render("[HIGH]")
	case coaching.PriorityMedium:
		return StyleYellow.Render("[MED]")
	case coaching.PriorityLow:
		return StyleGreen.Render("[LOW]")
	default:
		return StyleDim.Render("[" + strings.ToUpper(priority) + "]")
	}
}

// FormatRecommendations formats coaching recommendations for a manager.
func FormatRecommendations(recs []coaching.Recommendation) string {
	var b strings.Builder
	for i, r := range recs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s %s\n", priorityTag(r.Priority), Bold(r.Title)))
		if r.Description != "" {
			b.WriteString("  " + r.Description + "\n")
		}
		if r.Action != "" {
			b.WriteString("  " + StyleBlue.Render("→ "+r.Action) + "\n")
		}
	}
	return RenderBox("Coaching", b.String())
}

// FormatDailyAdvice formats the advisor's daily priority list.
func FormatDailyAdvice(advice coaching.DailyAdvice) string {
	var b strings.Builder
	for i, p := range advice.Priorities {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, p))
	}
	if advice.Reasoning != "" {
		b.WriteString("\n" + Dim(advice.Reasoning) + "\n")
	}
	return RenderBox("Today's Priorities", b.String())
}

// FormatCallReview formats a scored call review.
func FormatCallReview(review *coaching.CallReview) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Overall: %s\n\n", scoreStyle(review.OverallScore).Render(fmt.Sprintf("%d/10", review.OverallScore))))

	headers := []string{"CATEGORY", "SCORE", "FEEDBACK"}
	rows := make([][]string, 0, len(review.Scores))
	for _, s := range review.Scores {
		rows = append(rows, []string{
			s.Category,
			scoreStyle(s.Score).Render(fmt.Sprintf("%d/10", s.Score)),
			s.Feedback,
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if len(review.Strengths) > 0 {
		b.WriteString("\n" + Header("Strengths") + "\n")
		for _, s := range review.Strengths {
			b.WriteString(StyleGreen.Render("+ ") + s + "\n")
		}
	}
	if len(review.Improvements) > 0 {
		b.WriteString("\n" + Header("Improvements") + "\n")
		for _, s := range review.Improvements {
			b.WriteString(StyleYellow.Render("~ ") + s + "\n")
		}
	}

	return RenderBox("Call Review", b.String())
}

func scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 8:
		return StyleGreen
	case score >= 5:
		return StyleYellow
	default:
		return StyleRed
	}
}

// FormatTeamSummary formats the weekly team roll-up.
func FormatTeamSummary(summary coaching.TeamSummary) string {
	var b strings.Builder
	b.WriteString(summary.Summary + "\n")

	if len(summary.NeedsAttention) > 0 {
		b.WriteString("\n" + Header("Needs Attention") + "\n")
		for _, s := range summary.NeedsAttention {
			b.WriteString(StyleRed.Render("! ") + s + "\n")
		}
	}
	if len(summary.Wins) > 0 {
		b.WriteString("\n" + Header("Wins") + "\n")
		for _, s := range summary.Wins {
			b.WriteString(StyleGreen.Render("+ ") + s + "\n")
		}
	}
	if len(summary.Recommendations) > 0 {
		b.WriteString("\n" + Header("Recommendations") + "\n")
		for _, s := range summary.Recommendations {
			b.WriteString(StyleBlue.Render("→ ") + s + "\n")
		}
	}

	return RenderBox("Weekly Summary", b.String())
}
