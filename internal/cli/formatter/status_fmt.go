package formatter

import (
	"fmt"
	"strings"

	"github.com/rampkit/rampup/internal/app"
)

const statusProgressBarWidth = 10

// FormatStatus formats a rep report into a styled dashboard string.
func FormatStatus(report *app.RepReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", Bold(report.Rep.Name), Dim("<"+report.Rep.Email+">")))
	if report.StartDate != nil {
		b.WriteString(Dim("Started "+report.StartDate.Format("Jan 2, 2006")) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(PaceIndicator(report.Pace.State))
	b.WriteString("  " + PaceColor(report.Pace.State).Render(report.Pace.Message))
	b.WriteString("\n")

	if report.Pace.CurrentDay != nil {
		b.WriteString(Dim(fmt.Sprintf("Day %d of the program, %d days complete",
			*report.Pace.CurrentDay, report.CompletedDays)) + "\n")
	} else {
		b.WriteString(Dim(fmt.Sprintf("%d days complete", report.CompletedDays)) + "\n")
	}
	b.WriteString("\n")

	pct := 0.0
	if report.Overall.Total > 0 {
		pct = float64(report.Overall.Completed) / float64(report.Overall.Total)
	}
	b.WriteString(fmt.Sprintf("Overall  %s %s\n",
		RenderProgress(pct, statusProgressBarWidth),
		Dim(fmt.Sprintf("(%d/%d activities)", report.Overall.Completed, report.Overall.Total))))

	if len(report.Certifications) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Certifications") + "\n")
		for _, c := range report.Certifications {
			line := fmt.Sprintf("Day %-3d %s  %s", c.Day, CertBadge(c.Icon, c.Achieved), c.Name)
			if c.Evidence != nil {
				line += Dim("  [evidence: " + c.Evidence.Name + "]")
			}
			b.WriteString(line + "\n")
		}
	}

	return RenderBox("Ramp Status", b.String())
}
