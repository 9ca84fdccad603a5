package formatter

import (
	"fmt"
	"strings"

	"github.com/rampkit/rampup/internal/app"
	"github.com/rampkit/rampup/internal/catalog"
)

const rangeBarWidth = 12

// FormatPhases formats the per-phase progress table.
func FormatPhases(phases []app.PhaseView) string {
	headers := []string{"PHASE", "DAYS", "PROGRESS", "DAYS DONE"}
	rows := make([][]string, 0, len(phases))

	for _, p := range phases {
		rows = append(rows, []string{
			Bold(p.Name),
			Dim(fmt.Sprintf("%d-%d", p.StartDay, p.EndDay)),
			SnapshotBar(p.Snapshot.Completed, p.Snapshot.Total, rangeBarWidth),
			fmt.Sprintf("%d/%d", p.Snapshot.DaysComplete, p.Snapshot.TotalDays),
		})
	}

	return RenderTable(headers, rows)
}

// FormatWeeks formats the per-week progress table.
func FormatWeeks(weeks []app.WeekView) string {
	headers := []string{"WEEK", "PHASE", "DATES", "PROGRESS"}
	rows := make([][]string, 0, len(weeks))

	for _, w := range weeks {
		dates := w.DateRange
		if dates == "" {
			dates = "--"
		}
		rows = append(rows, []string{
			fmt.Sprintf("Week %d", w.Week),
			w.PhaseName,
			Dim(dates),
			SnapshotBar(w.Snapshot.Completed, w.Snapshot.Total, rangeBarWidth),
		})
	}

	return RenderTable(headers, rows)
}

// FormatTargets formats the expected activity volume per day range.
func FormatTargets(targets []catalog.ActivityTarget) string {
	headers := []string{"DAYS", "TOUCHES", "MEETINGS"}
	rows := make([][]string, 0, len(targets))

	for _, t := range targets {
		rows = append(rows, []string{t.Days, t.Touches, t.Meetings})
	}

	return RenderTable(headers, rows)
}

// FormatOverall formats the whole-program summary line.
func FormatOverall(report *app.RepReport) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(report.Rep.Name),
		SnapshotBar(report.Overall.Completed, report.Overall.Total, rangeBarWidth)))
	b.WriteString(Dim(fmt.Sprintf("%d of %d days complete", report.Overall.DaysComplete, report.Overall.TotalDays)))
	return b.String()
}
