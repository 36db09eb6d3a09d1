package formatter

import (
	"fmt"
	"strings"
	"time"
)

// ScheduleData carries a canonical schedule for rendering.
type ScheduleData struct {
	Text        string
	Detected    bool
	Malformed   []string
	GeneratedAt time.Time
}

// FormatSchedule renders a canonical schedule with styled headings and
// entry bullets. Undetected output is shown raw with a warning so the
// user still sees what the generator said.
func FormatSchedule(data ScheduleData) string {
	var b strings.Builder

	if !data.Detected {
		b.WriteString(StyleYellow.Render("⚠ No schedule block detected in the response:"))
		b.WriteString("\n\n")
		b.WriteString(data.Text)
		b.WriteString("\n")
		return b.String()
	}

	for _, line := range strings.Split(strings.TrimRight(data.Text, "\n"), "\n") {
		b.WriteString(styleScheduleLine(line))
		b.WriteString("\n")
	}

	if !data.GeneratedAt.IsZero() {
		b.WriteString("\n")
		b.WriteString(Dim("Generated " + data.GeneratedAt.Format("Mon Jan 2 15:04")))
		b.WriteString("\n")
	}

	if len(data.Malformed) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render(
			fmt.Sprintf("⚠ %d line(s) did not match the schedule format", len(data.Malformed))))
		b.WriteString("\n")
	}

	return b.String()
}

func styleScheduleLine(line string) string {
	switch {
	case strings.HasPrefix(line, "# "):
		return Header(strings.TrimPrefix(line, "# "))
	case strings.HasPrefix(line, "## "):
		return StyleHeader.Render(strings.TrimPrefix(line, "## "))
	case strings.HasPrefix(line, "- "):
		return styleEntryBullet(strings.TrimPrefix(line, "- "))
	default:
		return line
	}
}

// styleEntryBullet colors the time range blue and a trailing goal
// parenthetical purple. Malformed markers go red.
func styleEntryBullet(entry string) string {
	if strings.HasSuffix(entry, "[format?]") {
		return "  " + StyleRed.Render("✗ "+entry)
	}

	text := entry
	var goal string
	if open := strings.LastIndex(entry, " ("); open >= 0 && strings.HasSuffix(entry, ")") {
		text = entry[:open]
		goal = entry[open+2 : len(entry)-1]
	}

	var times, label string
	if colon := strings.Index(text, ": "); colon >= 0 {
		times = text[:colon]
		label = text[colon+2:]
	} else {
		label = text
	}

	var b strings.Builder
	b.WriteString("  ")
	if times != "" {
		b.WriteString(StyleBlue.Render(times))
		b.WriteString(Dim(":"))
		b.WriteString(" ")
	}
	b.WriteString(StyleFg.Render(label))
	if goal != "" {
		b.WriteString(" ")
		b.WriteString(StylePurple.Render("(" + goal + ")"))
	}
	return b.String()
}

// HistoryItem is one row of the stored-schedule listing.
type HistoryItem struct {
	Kind      string
	CreatedAt time.Time
	Entries   int
}

// FormatScheduleHistory renders stored schedules newest first.
func FormatScheduleHistory(items []HistoryItem) string {
	if len(items) == 0 {
		return Dim("No schedules stored yet.") + "\n"
	}

	headers := []string{"WHEN", "KIND", "ENTRIES"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		kind := StyleGreen.Render(item.Kind)
		if item.Kind == "refined" {
			kind = StyleBlue.Render(item.Kind)
		}
		rows = append(rows, []string{
			Bold(item.CreatedAt.Format("Mon Jan 2 15:04")),
			kind,
			fmt.Sprintf("%d", item.Entries),
		})
	}
	return RenderTable(headers, rows)
}

// FormatPushResult summarizes a calendar push.
func FormatPushResult(created int, errors []string) string {
	var b strings.Builder

	if created > 0 {
		b.WriteString(StyleGreen.Render(fmt.Sprintf("✓ Created %d event(s)", created)))
		b.WriteString("\n")
	}
	for _, e := range errors {
		b.WriteString(StyleRed.Render("✗ " + e))
		b.WriteString("\n")
	}
	if created == 0 && len(errors) == 0 {
		b.WriteString(Dim("Nothing to push."))
		b.WriteString("\n")
	}

	return b.String()
}
