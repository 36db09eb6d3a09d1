package calendar

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/beeline/internal/domain"
)

// breakColorID is the fixed palette tag for breaks and lunches; goal
// entries hash into the remaining palette deterministically.
const breakColorID = "7"

// PushResult reports a partial-success outcome: how many events were
// created plus an itemized error per entry that failed. A push is never
// all-or-nothing.
type PushResult struct {
	Created int
	Errors  []string
}

// Push creates one calendar event per schedule entry on the given day.
// An entry whose clock labels cannot be parsed, or whose creation call
// fails, is recorded as an error and the remaining entries still go
// through.
func Push(ctx context.Context, svc Service, entries []domain.ScheduleEntry, calendarID string, day time.Time) PushResult {
	var result PushResult

	for _, entry := range entries {
		start, err := resolveClock(entry.Start, day)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", entry.Label, err))
			continue
		}
		end, err := resolveClock(entry.End, day)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", entry.Label, err))
			continue
		}
		// An end before the start wraps past midnight.
		if end.Before(start) {
			end = end.Add(24 * time.Hour)
		}

		summary := entry.Label
		description := "Beeline schedule\nActivity: " + entry.Label
		if entry.Goal != "" {
			summary = fmt.Sprintf("%s (%s)", entry.Label, entry.Goal)
			description += "\nGoal: " + entry.Goal
		}

		_, err = svc.CreateEvent(ctx, EventRequest{
			CalendarID:  calendarID,
			Summary:     summary,
			Description: description,
			Start:       start,
			End:         end,
			ColorID:     colorTag(entry),
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to create event %s: %v", summary, err))
			continue
		}
		result.Created++
	}

	return result
}

// colorTag assigns a deterministic palette tag: breaks and lunches get
// a fixed tag, goal entries hash the goal name into the palette so the
// same goal always renders the same color, and everything else keeps
// the calendar default.
func colorTag(entry domain.ScheduleEntry) string {
	label := strings.ToLower(entry.Label)
	if strings.Contains(label, "break") || strings.Contains(label, "lunch") {
		return breakColorID
	}
	if entry.Goal != "" {
		var sum int
		for _, c := range entry.Goal {
			sum += int(c)
		}
		return strconv.Itoa(sum%11 + 1)
	}
	return ""
}

// clockFormats are the accepted clock label spellings, most specific
// first.
var clockFormats = []string{"3:04 PM", "3:04PM", "3 PM", "3PM"}

// resolveClock combines a clock label with the given calendar day.
func resolveClock(label string, day time.Time) (time.Time, error) {
	label = strings.TrimSpace(label)
	for _, format := range clockFormats {
		parsed, err := time.Parse(format, label)
		if err != nil {
			continue
		}
		return time.Date(day.Year(), day.Month(), day.Day(),
			parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), nil
	}
	return time.Time{}, fmt.Errorf("could not parse time %q", label)
}
