package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/beeline/internal/config"
	"github.com/alexanderramin/beeline/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Goals        service.GoalService
	Requirements service.RequirementService
	Schedules    service.ScheduleService
	Push         service.PushService

	// ConfigStore is used directly by setup and calendar selection,
	// which edit configuration rather than go through a service.
	ConfigStore *config.Store

	// NewTracker builds a tracker client for credential verification
	// during setup.
	NewTracker service.ClientFactory

	// AuthorizeCalendar runs the calendar OAuth flow. Nil when calendar
	// support is not wired.
	AuthorizeCalendar AuthorizeFunc

	// IsInteractive reports whether stdin is a terminal. When it is and
	// no subcommand was given, the interactive shell starts.
	IsInteractive func() bool
}

// AuthorizeFunc runs an OAuth consent flow, prompting the user through
// promptFn with the consent URL.
type AuthorizeFunc func(promptFn func(authURL string) (string, error)) error

// NewRootCmd creates the top-level "beeline" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "beeline",
		Short: "Goal-driven day scheduler for Beeminder",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runShell(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newSetupCmd(app),
		newGoalCmd(app),
		newLogCmd(app),
		newRequirementsCmd(app),
		newScheduleCmd(app),
		newCalendarCmd(app),
		newShellCmd(app),
	)

	return root
}
