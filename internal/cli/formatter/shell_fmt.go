package formatter

import (
	"fmt"
	"strings"
)

// FormatShellWelcome renders the banner shown when the shell starts.
func FormatShellWelcome() string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("beeline") + " " + Dim("interactive shell") + "\n")
	b.WriteString(Dim("Type 'help' for commands, 'exit' to leave.") + "\n")
	return b.String()
}

// FormatShellHelp renders the shell command overview.
func FormatShellHelp() string {
	rows := [][2]string{
		{"goals", "list all tracker goals"},
		{"scheduled", "list goals configured for scheduling"},
		{"req", "show hours needed per goal"},
		{"plan [notes...]", "generate today's schedule"},
		{"refine <feedback>", "rework the last schedule"},
		{"show", "print the last schedule"},
		{"push", "push the last schedule to the calendar"},
		{"schedule history", "list previously generated schedules"},
		{"log <slug> <value>", "record a datapoint"},
		{"clear", "clear the screen"},
		{"exit", "leave the shell"},
	}

	var b strings.Builder
	b.WriteString(Header("Shell Commands") + "\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			StyleGreen.Render(fmt.Sprintf("%-20s", r[0])),
			Dim(r[1])))
	}
	b.WriteString("\n" + Dim("All other CLI commands work directly (e.g. 'goal add reading').") + "\n")
	return b.String()
}
