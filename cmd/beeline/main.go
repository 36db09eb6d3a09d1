package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/beeline/internal/beeminder"
	"github.com/alexanderramin/beeline/internal/calendar"
	"github.com/alexanderramin/beeline/internal/cli"
	"github.com/alexanderramin/beeline/internal/config"
	"github.com/alexanderramin/beeline/internal/db"
	"github.com/alexanderramin/beeline/internal/llm"
	"github.com/alexanderramin/beeline/internal/repository"
	"github.com/alexanderramin/beeline/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	store := config.NewStore(configPath)

	// Determine DB path: env var or default ~/.beeline/beeline.db
	dbPath := os.Getenv("BEELINE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".beeline", "beeline.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	scheduleRepo := repository.NewSQLiteScheduleRepo(database)

	newTracker := func(username, authToken string) beeminder.Client {
		return beeminder.NewClient(beeminder.DefaultConfig(username, authToken))
	}

	// The env var wins; the config file key is the fallback.
	llmCfg := llm.LoadConfig()
	if llmCfg.APIKey == "" {
		if cfg, err := store.Load(); err == nil {
			llmCfg.APIKey = cfg.LLMAPIKey
		}
	}
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	llmClient := llm.NewChatClient(llmCfg, observer)

	credentialsPath, tokenPath, err := googleAuthPaths()
	if err != nil {
		return err
	}
	newCalendar := func(ctx context.Context) (calendar.Service, error) {
		return calendar.NewGoogleService(ctx, credentialsPath, tokenPath)
	}

	goalSvc := service.NewGoalService(store, newTracker)
	reqSvc := service.NewRequirementService(store, newTracker)
	schedSvc := service.NewScheduleService(reqSvc, llmClient, scheduleRepo)
	pushSvc := service.NewPushService(store, schedSvc, newCalendar)

	app := &cli.App{
		Goals:        goalSvc,
		Requirements: reqSvc,
		Schedules:    schedSvc,
		Push:         pushSvc,
		ConfigStore:  store,
		NewTracker:   newTracker,
		AuthorizeCalendar: func(promptFn func(authURL string) (string, error)) error {
			return calendar.Authorize(context.Background(), credentialsPath, tokenPath, promptFn)
		},
	}

	// Detect interactive terminal for shell-only entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// googleAuthPaths resolves the OAuth client secret and token locations,
// overridable via env for non-default installs.
func googleAuthPaths() (credentials, token string, err error) {
	credentials = os.Getenv("BEELINE_GOOGLE_CREDENTIALS")
	token = os.Getenv("BEELINE_GOOGLE_TOKEN")
	if credentials != "" && token != "" {
		return credentials, token, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", fmt.Errorf("finding home directory: %w", err)
	}
	if credentials == "" {
		credentials = filepath.Join(home, ".beeline", "google_credentials.json")
	}
	if token == "" {
		token = filepath.Join(home, ".beeline", "google_token.json")
	}
	return credentials, token, nil
}
