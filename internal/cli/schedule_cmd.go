package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/beeline/internal/cli/formatter"
	"github.com/alexanderramin/beeline/internal/schedule"
	"github.com/alexanderramin/beeline/internal/service"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate, refine and push the day schedule",
	}

	cmd.AddCommand(
		newScheduleGenerateCmd(app),
		newScheduleRefineCmd(app),
		newScheduleShowCmd(app),
		newScheduleHistoryCmd(app),
		newSchedulePushCmd(app),
	)

	return cmd
}

func newScheduleGenerateCmd(app *App) *cobra.Command {
	var start, end, preferences string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a schedule for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			if start == "" {
				start = time.Now().Format("3:04 PM")
			}

			stop := formatter.StartSpinner("Generating schedule...")
			gen, err := app.Schedules.Generate(context.Background(),
				schedule.DayWindow{Start: start, End: end}, preferences)
			stop()
			if err != nil {
				if gen == nil {
					return err
				}
				// Generation succeeded but persistence failed; show the
				// schedule anyway and surface the warning.
				fmt.Println(formatter.StyleYellow.Render(fmt.Sprintf("⚠ %v", err)))
			}

			fmt.Print(formatter.FormatSchedule(scheduleData(gen)))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Day start time (e.g. \"8:00 AM\", defaults to now)")
	cmd.Flags().StringVar(&end, "end", "", "Day end time (e.g. \"10:00 PM\")")
	cmd.Flags().StringVar(&preferences, "notes", "", "Free-text preferences for the planner")

	return cmd
}

func newScheduleRefineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refine [FEEDBACK...]",
		Short: "Refine the last schedule with feedback",
		RunE: func(cmd *cobra.Command, args []string) error {
			feedback := strings.Join(args, " ")
			if feedback == "" {
				if err := feedbackForm(&feedback).Run(); err != nil {
					return err
				}
			}
			if strings.TrimSpace(feedback) == "" {
				return fmt.Errorf("feedback is required")
			}

			stop := formatter.StartSpinner("Refining schedule...")
			gen, err := app.Schedules.Refine(context.Background(), feedback)
			stop()
			if err != nil {
				if gen == nil {
					return err
				}
				fmt.Println(formatter.StyleYellow.Render(fmt.Sprintf("⚠ %v", err)))
			}

			fmt.Print(formatter.FormatSchedule(scheduleData(gen)))
			return nil
		},
	}

	return cmd
}

func newScheduleShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the last generated schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := app.Schedules.Last(context.Background())
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatSchedule(scheduleData(gen)))
			return nil
		},
	}
}

func newScheduleHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously generated schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Schedules.History(context.Background(), limit)
			if err != nil {
				return err
			}

			items := make([]formatter.HistoryItem, 0, len(records))
			for _, rec := range records {
				items = append(items, formatter.HistoryItem{
					Kind:      string(rec.Kind),
					CreatedAt: rec.CreatedAt.Local(),
					Entries:   len(schedule.ParseEntries(rec.Body)),
				})
			}

			fmt.Print(formatter.FormatScheduleHistory(items))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of schedules to list")

	return cmd
}

func newSchedulePushCmd(app *App) *cobra.Command {
	var calendarID, date string

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Push the last schedule to Google Calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now()
			if date != "" {
				parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				day = parsed
			}

			stop := formatter.StartSpinner("Pushing to calendar...")
			result, err := app.Push.Push(context.Background(), calendarID, day)
			stop()
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatPushResult(result.Created, result.Errors))
			return nil
		},
	}

	cmd.Flags().StringVar(&calendarID, "calendar", "", "Target calendar ID (defaults to the configured one)")
	cmd.Flags().StringVar(&date, "date", "", "Day to place events on (YYYY-MM-DD, defaults to today)")

	return cmd
}

func scheduleData(gen *service.GeneratedSchedule) formatter.ScheduleData {
	return formatter.ScheduleData{
		Text:        gen.Text,
		Detected:    gen.Detected,
		Malformed:   gen.Malformed,
		GeneratedAt: gen.GeneratedAt,
	}
}
