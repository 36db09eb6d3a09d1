package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/beeline/internal/beeminder"
	"github.com/alexanderramin/beeline/internal/config"
	"github.com/alexanderramin/beeline/internal/db"
	"github.com/alexanderramin/beeline/internal/domain"
	"github.com/alexanderramin/beeline/internal/llm"
	"github.com/alexanderramin/beeline/internal/repository"
)

func f64(v float64) *float64 { return &v }

// fakeTracker implements beeminder.Client for tests.
type fakeTracker struct {
	goals      map[string]*domain.GoalTelemetry
	created    []beeminder.NewDatapoint
	refreshed  []string
	authErr    error
	createErr  error
	getGoalErr error
}

func (f *fakeTracker) GetGoals(ctx context.Context) ([]domain.GoalTelemetry, error) {
	var out []domain.GoalTelemetry
	for _, g := range f.goals {
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeTracker) GetGoal(ctx context.Context, slug string) (*domain.GoalTelemetry, error) {
	if f.getGoalErr != nil {
		return nil, f.getGoalErr
	}
	g, ok := f.goals[slug]
	if !ok {
		return nil, beeminder.ErrGoalNotFound
	}
	return g, nil
}

func (f *fakeTracker) GetDatapoints(ctx context.Context, slug string) ([]beeminder.Datapoint, error) {
	return nil, nil
}

func (f *fakeTracker) CreateDatapoint(ctx context.Context, slug string, dp beeminder.NewDatapoint) (*beeminder.Datapoint, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, dp)
	return &beeminder.Datapoint{ID: "dp-1", Value: dp.Value, Comment: dp.Comment, Timestamp: dp.Timestamp}, nil
}

func (f *fakeTracker) RefreshGoal(ctx context.Context, slug string) error {
	f.refreshed = append(f.refreshed, slug)
	return nil
}

func (f *fakeTracker) CheckAuth(ctx context.Context) error {
	return f.authErr
}

// fakeGenerator implements llm.Client and returns a canned response.
type fakeGenerator struct {
	response string
	err      error
	requests []llm.GenerateRequest
}

func (f *fakeGenerator) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &llm.GenerateResponse{Text: f.response, Model: "fake"}, nil
}

func newTestStore(t *testing.T, cfg *config.Config) *config.Store {
	t.Helper()
	store := config.NewStore(filepath.Join(t.TempDir(), "config.json"))
	if cfg != nil {
		require.NoError(t, store.Save(cfg))
	}
	return store
}

func newTestScheduleRepo(t *testing.T) repository.ScheduleRepo {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return repository.NewSQLiteScheduleRepo(database)
}

func trackerFactory(tracker *fakeTracker) ClientFactory {
	return func(username, authToken string) beeminder.Client { return tracker }
}
