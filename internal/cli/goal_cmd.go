package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/beeline/internal/cli/formatter"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals and the scheduled set",
	}

	cmd.AddCommand(
		newGoalListCmd(app),
		newGoalScheduledCmd(app),
		newGoalAddCmd(app),
		newGoalUpdateCmd(app),
		newGoalRemoveCmd(app),
	)

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all goals on the Beeminder account",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := formatter.StartSpinner("Fetching goals...")
			goals, err := app.Goals.ListTracked(context.Background())
			stop()
			if err != nil {
				return err
			}

			if len(goals) == 0 {
				fmt.Println("No goals found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatTrackedGoals(goals))
			return nil
		},
	}
}

func newGoalScheduledCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "scheduled",
		Short: "List goals configured for scheduling",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := app.Goals.ListScheduled(context.Background())
			if err != nil {
				return err
			}

			if len(goals) == 0 {
				fmt.Println("No goals configured. Add one with 'goal add SLUG'.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatScheduledGoals(goals))
			return nil
		},
	}
}

func newGoalAddCmd(app *App) *cobra.Command {
	var name string
	var hours float64

	cmd := &cobra.Command{
		Use:   "add SLUG",
		Short: "Add a goal to the scheduled set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := args[0]

			stop := formatter.StartSpinner("Verifying goal...")
			err := app.Goals.Add(context.Background(), slug, name, hours)
			stop()
			if err != nil {
				return err
			}

			fmt.Printf("Added goal %s to the scheduled set.\n", formatter.Bold(slug))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (defaults to the goal's title)")
	cmd.Flags().Float64Var(&hours, "hours-per-unit", 1, "Hours of work one goal unit represents")

	return cmd
}

func newGoalUpdateCmd(app *App) *cobra.Command {
	var name string
	var hours float64

	cmd := &cobra.Command{
		Use:   "update SLUG",
		Short: "Update a scheduled goal's parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("hours-per-unit") {
				return fmt.Errorf("nothing to update: pass --name or --hours-per-unit")
			}
			if !cmd.Flags().Changed("hours-per-unit") {
				hours = 0
			}

			if err := app.Goals.Update(context.Background(), args[0], name, hours); err != nil {
				return err
			}

			fmt.Printf("Updated goal %s.\n", formatter.Bold(args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().Float64Var(&hours, "hours-per-unit", 0, "Hours of work one goal unit represents")

	return cmd
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove SLUG",
		Short: "Remove a goal from the scheduled set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Goals.Remove(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Printf("Removed goal %s from the scheduled set.\n", formatter.Bold(args[0]))
			return nil
		},
	}
}
