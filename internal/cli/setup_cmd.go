package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/beeline/internal/cli/formatter"
)

func newSetupCmd(app *App) *cobra.Command {
	var username, token, llmKey string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Configure Beeminder credentials",
		Long: `Store your Beeminder username and auth token, and optionally an
API key for schedule generation. Credentials are verified against the
API before saving. Run with no flags for an interactive form.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := app.ConfigStore.Load()
			if err != nil {
				return err
			}

			if username == "" && token == "" {
				form := credentialsForm(&username, &token, &llmKey, cfg.Username)
				if err := form.Run(); err != nil {
					return err
				}
			}

			username = strings.TrimSpace(username)
			token = strings.TrimSpace(token)
			if username == "" || token == "" {
				return fmt.Errorf("username and auth token are required")
			}

			stop := formatter.StartSpinner("Verifying credentials...")
			err = app.NewTracker(username, token).CheckAuth(ctx)
			stop()
			if err != nil {
				return fmt.Errorf("credential check failed: %w", err)
			}

			cfg.Username = username
			cfg.AuthToken = token
			if llmKey != "" {
				cfg.LLMAPIKey = strings.TrimSpace(llmKey)
			}
			if err := app.ConfigStore.Save(cfg); err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.StyleGreen.Render("✓ Credentials verified and saved."))
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Beeminder username")
	cmd.Flags().StringVar(&token, "token", "", "Beeminder auth token")
	cmd.Flags().StringVar(&llmKey, "llm-key", "", "API key for schedule generation")

	return cmd
}

func credentialsForm(username, token, llmKey *string, currentUsername string) *huh.Form {
	usernameTitle := "Beeminder username"
	if currentUsername != "" {
		usernameTitle = fmt.Sprintf("Beeminder username (current: %s)", currentUsername)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(usernameTitle).
				Value(username),
			huh.NewInput().
				Title("Auth token").
				Description("Find it at beeminder.com/api/v1/auth_token.json").
				EchoMode(huh.EchoModePassword).
				Value(token),
			huh.NewInput().
				Title("Generation API key (optional)").
				Description("Leave blank to set via BEELINE_LLM_API_KEY instead").
				EchoMode(huh.EchoModePassword).
				Value(llmKey),
		),
	).WithTheme(beelineHuhTheme()).WithShowHelp(false)
}
