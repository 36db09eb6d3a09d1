package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/beeline/internal/domain"
)

// DayWindow bounds the day plan. Start is required; End is optional.
type DayWindow struct {
	Start string
	End   string
}

// GenerateSystemPrompt instructs the generator to plan a day around the
// goal requirements and emit the fenced schedule grammar.
const GenerateSystemPrompt = `You are a scheduling assistant that creates daily schedules based on tracked goals.
Create a realistic, hour-by-hour schedule for TODAY based on the requirements.

Guidelines:
1. Allocate time for each goal based on the hours needed
2. Create a balanced schedule with breaks and transitions
3. Prioritize activities with closer deadlines or higher pledges
4. If there's not enough time for all goals, prioritize and explain why

YOU MUST FOLLOW THIS EXACT FORMAT:

` + "```schedule" + `
START_TIME - END_TIME: ACTIVITY_NAME (GOAL_NAME)
START_TIME - END_TIME: ACTIVITY_NAME (GOAL_NAME)
...
` + "```" + `

Example:

` + "```schedule" + `
8:00 AM - 9:30 AM: Morning coding session (Programming)
9:30 AM - 9:45 AM: Break
9:45 AM - 11:15 AM: Continue coding (Programming)
11:15 AM - 12:00 PM: Read documentation (Reading)
12:00 PM - 1:00 PM: Lunch break
` + "```" + `

After the schedule, include a section titled "Notes:" with a brief explanation.

ALL TIMES must be in HH:MM AM/PM format (e.g., "8:00 AM").
For tracked goals, include the goal name in parentheses.
For breaks or other activities, parentheses are not needed.`

// RefineSystemPrompt instructs the generator to rework an existing
// schedule based on user feedback, in the same grammar.
const RefineSystemPrompt = `You are a scheduling assistant refining a schedule based on feedback.

YOU MUST FOLLOW THIS EXACT FORMAT:

` + "```schedule" + `
START_TIME - END_TIME: ACTIVITY_NAME (GOAL_NAME)
START_TIME - END_TIME: ACTIVITY_NAME (GOAL_NAME)
...
` + "```" + `

After the schedule, include a section titled "Notes:" with an explanation.

ALL TIMES must be in HH:MM AM/PM format (e.g., "8:00 AM").
For tracked goals, include the goal name in parentheses.
For breaks or other activities, parentheses are not needed.`

// BuildGeneratePrompt assembles the user prompt from the requirement
// set, the day window, and free-text preferences.
func BuildGeneratePrompt(reqs []domain.Requirement, window DayWindow, preferences string, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Today's date: %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(&b, "Start time: %s", window.Start)
	if window.End != "" {
		fmt.Fprintf(&b, ", End time: %s", window.End)
	}

	b.WriteString("\n\nGoals to schedule:\n")
	for _, r := range reqs {
		fmt.Fprintf(&b, "- %s: %.1f hours, deadline: %s, pledge: $%.0f\n",
			r.DisplayName, r.HoursNeeded, r.Deadline.Format("2006-01-02"), r.Pledge)
	}

	if preferences != "" {
		fmt.Fprintf(&b, "\nSpecial preferences or notes:\n%s\n", preferences)
	}

	b.WriteString("\nPlease create a detailed schedule for today based on these goals.")
	return b.String()
}

// BuildRefinePrompt embeds the previous schedule (stripped back to raw
// entry lines) together with the user's feedback.
func BuildRefinePrompt(previousCanonical, feedback string) string {
	lines := StripCanonical(previousCanonical)
	return fmt.Sprintf(
		"Here is the previous schedule:\n\n```schedule\n%s\n```\n\n"+
			"Please refine this schedule based on this feedback:\n%s\n\n"+
			"Return the schedule in the exact format specified with the ```schedule``` block.",
		strings.Join(lines, "\n"), feedback)
}
