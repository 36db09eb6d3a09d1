package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/beeline/internal/cli/formatter"
)

func newCalendarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Manage the target Google Calendar",
	}

	cmd.AddCommand(
		newCalendarAuthCmd(app),
		newCalendarListCmd(app),
		newCalendarUseCmd(app),
	)

	return cmd
}

func newCalendarAuthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authorize calendar access",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.AuthorizeCalendar == nil {
				return fmt.Errorf("calendar support is not configured")
			}

			err := app.AuthorizeCalendar(func(authURL string) (string, error) {
				fmt.Printf("Open this URL in your browser:\n\n  %s\n\n", authURL)
				fmt.Print("Paste the authorization code: ")
				reader := bufio.NewReader(os.Stdin)
				code, err := reader.ReadString('\n')
				if err != nil {
					return "", err
				}
				return strings.TrimSpace(code), nil
			})
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.StyleGreen.Render("✓ Calendar access authorized."))
			return nil
		},
	}
}

func newCalendarListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available calendars",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := formatter.StartSpinner("Fetching calendars...")
			calendars, err := app.Push.ListCalendars(context.Background())
			stop()
			if err != nil {
				return err
			}

			cfg, err := app.ConfigStore.Load()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(calendars))
			for _, c := range calendars {
				marker := ""
				if c.ID == cfg.GoogleCalendarID {
					marker = formatter.StyleGreen.Render("✓")
				}
				rows = append(rows, []string{marker, c.Summary, formatter.Dim(c.ID)})
			}

			fmt.Printf("%s\n", formatter.RenderTable([]string{"", "NAME", "ID"}, rows))
			return nil
		},
	}
}

func newCalendarUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use [ID]",
		Short: "Set the target calendar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var calendarID string

			if len(args) == 1 {
				calendarID = args[0]
			} else {
				stop := formatter.StartSpinner("Fetching calendars...")
				calendars, err := app.Push.ListCalendars(context.Background())
				stop()
				if err != nil {
					return err
				}
				if len(calendars) == 0 {
					return fmt.Errorf("no calendars available")
				}

				options := make([]huh.Option[string], 0, len(calendars))
				for _, c := range calendars {
					options = append(options, huh.NewOption(c.Summary, c.ID))
				}
				if err := calendarSelectForm(options, &calendarID).Run(); err != nil {
					return err
				}
			}

			cfg, err := app.ConfigStore.Load()
			if err != nil {
				return err
			}
			cfg.GoogleCalendarID = calendarID
			if err := app.ConfigStore.Save(cfg); err != nil {
				return err
			}

			fmt.Printf("Target calendar set to %s.\n", formatter.Bold(calendarID))
			return nil
		},
	}
}
