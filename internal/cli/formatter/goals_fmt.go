package formatter

import (
	"fmt"

	"github.com/alexanderramin/beeline/internal/domain"
)

// FormatTrackedGoals renders the full set of tracker goals as a table.
func FormatTrackedGoals(goals []domain.GoalTelemetry) string {
	headers := []string{"SLUG", "TITLE", "BUFFER", "PLEDGE", "DUE"}

	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		urgency := domain.UrgencyForSafeDays(g.SafeDays)
		buffer := UrgencyColor(urgency).Render(fmt.Sprintf("%dd", g.SafeDays))
		rows = append(rows, []string{
			g.Slug,
			g.Title,
			buffer,
			fmt.Sprintf("$%.0f", g.Pledge),
			Dim(g.Summary),
		})
	}

	return RenderTable(headers, rows)
}

// FormatScheduledGoals renders the goals configured for scheduling.
func FormatScheduledGoals(goals []domain.ScheduledGoal) string {
	headers := []string{"SLUG", "NAME", "HOURS/UNIT"}

	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, []string{
			g.Slug,
			Bold(g.DisplayName),
			fmt.Sprintf("%.2f", g.HoursPerUnit),
		})
	}

	return RenderTable(headers, rows)
}
