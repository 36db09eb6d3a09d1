package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/beeline/internal/planner"
)

// FormatRequirements renders a calculation pass: one row per goal,
// a total line, and any per-goal fetch failures at the bottom.
func FormatRequirements(batch *planner.BatchResult, now time.Time) string {
	var b strings.Builder

	b.WriteString(Header("Today's Requirements"))
	b.WriteString("\n\n")

	headers := []string{"GOAL", "URGENCY", "HOURS", "DAILY", "DEADLINE", "PLEDGE"}
	rows := make([][]string, 0, len(batch.Requirements))
	for _, r := range batch.Requirements {
		hours := fmt.Sprintf("%.1fh", r.HoursNeeded)
		if !r.HasData {
			hours = StyleYellow.Render("?")
		}
		rows = append(rows, []string{
			Bold(r.DisplayName),
			UrgencyIndicator(r.Urgency),
			hours,
			Dim(fmt.Sprintf("%.1fh/d", r.HoursPerDay)),
			formatDeadline(r.Deadline, now),
			fmt.Sprintf("$%.0f", r.Pledge),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n",
		Dim("Total effort due:"),
		Bold(fmt.Sprintf("%.1f hours", batch.TotalHours()))))

	if len(batch.Failures) > 0 {
		b.WriteString("\n")
		for _, f := range batch.Failures {
			b.WriteString(StyleRed.Render(fmt.Sprintf("✗ %s: %v", f.Slug, f.Err)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// formatDeadline renders a deadline relative to now, colored by
// proximity.
func formatDeadline(deadline time.Time, now time.Time) string {
	days := int(deadline.Sub(now).Hours() / 24)
	text := deadline.Format("Mon Jan 2")
	switch {
	case days < 1:
		return StyleRed.Render(text)
	case days < 3:
		return StyleYellow.Render(text)
	case days > 180:
		return Dim("—")
	default:
		return StyleFg.Render(text)
	}
}
