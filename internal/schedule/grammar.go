package schedule

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alexanderramin/beeline/internal/domain"
)

// The generator is instructed to emit a fenced block labeled "schedule"
// with one entry per line, optionally followed by a "Notes:" section.
var (
	fenceRe = regexp.MustCompile("(?s)```schedule\\s*\\n(.*?)\\n```")
	entryRe = regexp.MustCompile(`^(\d{1,2}:\d{2} [AP]M) - (\d{1,2}:\d{2} [AP]M): (.*?)(?:\s*\(([^)]+)\))?\s*$`)
	notesRe = regexp.MustCompile(`(?s)Notes:\s*(.*)$`)
)

// malformedTag marks lines inside the fenced block that did not match
// the entry grammar. Tagged lines are preserved, never dropped.
const malformedTag = " [format?]"

// canonicalHeading opens every canonicalized schedule.
const canonicalHeading = "# Today's Schedule"

// FormatResult carries a canonicalized schedule and its parse outcome.
type FormatResult struct {
	// Text is the canonical bulleted schedule, or the raw input
	// unchanged when no fenced block was detected.
	Text string
	// Detected is false when the generator output had no recognizable
	// schedule block; Text is then a degraded fallback.
	Detected bool
	// Entries holds the well-formed lines in order.
	Entries []domain.ScheduleEntry
	// Malformed holds the original text of lines that failed to match
	// the entry grammar.
	Malformed []string
	// Notes is the free-text commentary after the "Notes:" heading.
	Notes string
}

// Canonicalize validates raw generator output against the schedule
// grammar and reassembles it into the canonical bulleted form. It never
// fails: undetectable input comes back raw with Detected unset, and
// malformed lines are tagged in place.
func Canonicalize(raw string) FormatResult {
	match := fenceRe.FindStringSubmatch(raw)
	if match == nil {
		return FormatResult{Text: raw}
	}

	result := FormatResult{Detected: true}

	if notes := notesRe.FindStringSubmatch(raw); notes != nil {
		result.Notes = strings.TrimSpace(notes[1])
	}

	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(match[1]), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		entry, ok := parseEntryLine(line)
		if !ok {
			result.Malformed = append(result.Malformed, line)
			lines = append(lines, line+malformedTag)
			continue
		}
		result.Entries = append(result.Entries, entry)
		lines = append(lines, formatEntry(entry))
	}

	var b strings.Builder
	b.WriteString(canonicalHeading + "\n\n")
	for _, line := range lines {
		b.WriteString("- " + line + "\n")
	}
	if result.Notes != "" {
		b.WriteString("\n## Notes\n\n" + result.Notes + "\n")
	}
	result.Text = b.String()

	return result
}

// StripCanonical reduces a canonical bulleted schedule back to raw
// entry lines, the form the generator expects as refinement input.
func StripCanonical(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "- ") {
			lines = append(lines, strings.TrimPrefix(line, "- "))
		}
	}
	return lines
}

// ParseEntries extracts well-formed schedule entries from any schedule
// text, canonical or raw. Headings, fences and unmatched lines are
// skipped.
func ParseEntries(text string) []domain.ScheduleEntry {
	var entries []domain.ScheduleEntry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "```") {
			continue
		}
		line = strings.TrimPrefix(line, "- ")

		if entry, ok := parseEntryLine(line); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func parseEntryLine(line string) (domain.ScheduleEntry, bool) {
	m := entryRe.FindStringSubmatch(line)
	if m == nil {
		return domain.ScheduleEntry{}, false
	}
	return domain.ScheduleEntry{
		Start: m[1],
		End:   m[2],
		Label: strings.TrimSpace(m[3]),
		Goal:  m[4],
	}, true
}

func formatEntry(e domain.ScheduleEntry) string {
	if e.Goal != "" {
		return fmt.Sprintf("%s - %s: %s (%s)", e.Start, e.End, e.Label, e.Goal)
	}
	return fmt.Sprintf("%s - %s: %s", e.Start, e.End, e.Label)
}
