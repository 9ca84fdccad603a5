package formatter

import (
	"github.com/rampkit/rampup/internal/domain"
)

// FormatRepList formats the roster table.
func FormatRepList(reps []*domain.Rep) string {
	headers := []string{"ID", "NAME", "EMAIL", "ROLE", "MANAGER"}
	rows := make([][]string, 0, len(reps))

	for _, r := range reps {
		manager := Dim("--")
		if r.ManagerID != nil {
			manager = TruncID(*r.ManagerID)
		}
		rows = append(rows, []string{
			TruncID(r.ID),
			Bold(r.Name),
			r.Email,
			RoleBadge(r.Role),
			manager,
		})
	}

	return RenderTable(headers, rows)
}
