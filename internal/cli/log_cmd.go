package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/beeline/internal/cli/formatter"
)

func newLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log SLUG VALUE [COMMENT...]",
		Short: "Record a datapoint on a goal",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := args[0]
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}
			comment := strings.Join(args[2:], " ")

			stop := formatter.StartSpinner("Recording datapoint...")
			dp, err := app.Goals.LogProgress(context.Background(), slug, value, comment)
			stop()
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.StyleGreen.Render(
				fmt.Sprintf("✓ Logged %g on %s (id %s)", dp.Value, slug, dp.ID)))
			return nil
		},
	}
}
