package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/beeline/internal/cli/formatter"
)

func newRequirementsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "requirements",
		Aliases: []string{"req"},
		Short:   "Show hours needed per scheduled goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := formatter.StartSpinner("Calculating requirements...")
			batch, err := app.Requirements.Calculate(context.Background())
			stop()
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatRequirements(batch, time.Now()))
			return nil
		},
	}
}
