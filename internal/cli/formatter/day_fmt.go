package formatter

import (
	"fmt"
	"strings"

	"github.com/rampkit/rampup/internal/app"
)

// FormatDay formats one calendar day's checklist.
func FormatDay(view *app.DayView) string {
	var b strings.Builder

	title := fmt.Sprintf("Day %d: %s", view.Day, view.Title)
	if view.Certification {
		title += " 🎯"
	}
	if view.Milestone {
		title += " 🏆"
	}
	b.WriteString(Bold(title) + "\n")

	var meta []string
	if view.Date != "" {
		meta = append(meta, view.Date)
	}
	if view.IsToday {
		meta = append(meta, StyleYellow.Render("today"))
	} else if view.IsPast {
		meta = append(meta, "past")
	}
	if view.Focus != "" {
		meta = append(meta, "Focus: "+view.Focus)
	}
	if len(meta) > 0 {
		b.WriteString(Dim(strings.Join(meta, "  ·  ")) + "\n")
	}
	b.WriteString("\n")

	for i, activity := range view.Activities {
		done := i < len(view.Done) && view.Done[i]
		line := fmt.Sprintf("%s %d. %s", CheckMark(done), i+1, activity)
		if done {
			line = StyleDim.Render(stripStyles(line))
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(SnapshotBar(view.Snapshot.Completed, view.Snapshot.Total, statusProgressBarWidth))
	if view.Complete {
		b.WriteString("  " + StyleGreen.Render("day complete"))
	}
	b.WriteString("\n")

	return b.String()
}

// stripStyles drops ANSI sequences so a line can be re-styled as a whole.
func stripStyles(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		if r == '\x1b' {
			inEscape = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
