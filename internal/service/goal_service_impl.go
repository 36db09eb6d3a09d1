package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/beeline/internal/beeminder"
	"github.com/alexanderramin/beeline/internal/config"
	"github.com/alexanderramin/beeline/internal/domain"
)

// ClientFactory builds a tracker client from stored credentials. It is
// injected so tests can substitute fakes and so credentials are read
// fresh from config on every call.
type ClientFactory func(username, authToken string) beeminder.Client

type goalService struct {
	store     *config.Store
	newClient ClientFactory
}

func NewGoalService(store *config.Store, newClient ClientFactory) GoalService {
	return &goalService{store: store, newClient: newClient}
}

// client loads the config and builds an authenticated tracker client.
func (s *goalService) client() (*config.Config, beeminder.Client, error) {
	cfg, err := s.store.Load()
	if err != nil {
		return nil, nil, err
	}
	if !cfg.HasCredentials() {
		return nil, nil, ErrNoCredentials
	}
	return cfg, s.newClient(cfg.Username, cfg.AuthToken), nil
}

func (s *goalService) ListTracked(ctx context.Context) ([]domain.GoalTelemetry, error) {
	_, client, err := s.client()
	if err != nil {
		return nil, err
	}
	return client.GetGoals(ctx)
}

func (s *goalService) ListScheduled(ctx context.Context) ([]domain.ScheduledGoal, error) {
	cfg, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return cfg.ScheduledGoals(), nil
}

func (s *goalService) Add(ctx context.Context, slug, displayName string, hoursPerUnit float64) error {
	if hoursPerUnit <= 0 {
		return fmt.Errorf("%s: %w (got %g)", slug, ErrInvalidHoursPerUnit, hoursPerUnit)
	}

	cfg, client, err := s.client()
	if err != nil {
		return err
	}
	if _, ok := cfg.Goals[slug]; ok {
		return fmt.Errorf("%s: %w", slug, ErrAlreadyScheduled)
	}

	// Verify the goal exists before persisting it.
	telemetry, err := client.GetGoal(ctx, slug)
	if err != nil {
		return err
	}
	if displayName == "" {
		displayName = telemetry.Title
	}
	if displayName == "" {
		displayName = slug
	}

	cfg.Goals[slug] = config.GoalConfig{DisplayName: displayName, HoursPerUnit: hoursPerUnit}
	return s.store.Save(cfg)
}

func (s *goalService) Update(ctx context.Context, slug, displayName string, hoursPerUnit float64) error {
	if hoursPerUnit < 0 {
		return fmt.Errorf("%s: %w (got %g)", slug, ErrInvalidHoursPerUnit, hoursPerUnit)
	}

	cfg, err := s.store.Load()
	if err != nil {
		return err
	}
	gc, ok := cfg.Goals[slug]
	if !ok {
		return fmt.Errorf("%s: %w", slug, ErrNotScheduled)
	}

	if displayName != "" {
		gc.DisplayName = displayName
	}
	if hoursPerUnit > 0 {
		gc.HoursPerUnit = hoursPerUnit
	}
	cfg.Goals[slug] = gc
	return s.store.Save(cfg)
}

func (s *goalService) Remove(ctx context.Context, slug string) error {
	cfg, err := s.store.Load()
	if err != nil {
		return err
	}
	if _, ok := cfg.Goals[slug]; !ok {
		return fmt.Errorf("%s: %w", slug, ErrNotScheduled)
	}
	delete(cfg.Goals, slug)
	return s.store.Save(cfg)
}

func (s *goalService) LogProgress(ctx context.Context, slug string, value float64, comment string) (*beeminder.Datapoint, error) {
	_, client, err := s.client()
	if err != nil {
		return nil, err
	}

	dp, err := client.CreateDatapoint(ctx, slug, beeminder.NewDatapoint{
		Value:     value,
		Timestamp: time.Now().Unix(),
		Comment:   comment,
		RequestID: uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}

	// Refresh so the next telemetry fetch reflects the new datapoint.
	// Best effort; the datapoint is already recorded.
	_ = client.RefreshGoal(ctx, slug)

	return dp, nil
}
