package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/beeline/internal/config"
	"github.com/alexanderramin/beeline/internal/domain"
)

func TestCalculate_NoCredentials(t *testing.T) {
	svc := NewRequirementService(newTestStore(t, nil), trackerFactory(&fakeTracker{}))

	_, err := svc.Calculate(context.Background())
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestCalculate_NoScheduledGoals(t *testing.T) {
	svc := NewRequirementService(configuredStore(t, nil), trackerFactory(&fakeTracker{}))

	_, err := svc.Calculate(context.Background())
	assert.ErrorIs(t, err, ErrNoScheduledGoals)
}

func TestCalculate_DerivesRequirements(t *testing.T) {
	deadline := time.Now().Add(48 * time.Hour).Unix()
	tracker := &fakeTracker{goals: map[string]*domain.GoalTelemetry{
		"reading": {
			Slug:          "reading",
			Title:         "Reading",
			CurrentValue:  f64(10),
			TargetValue:   f64(14),
			DeadlineEpoch: deadline,
			SafeDays:      2,
			Pledge:        5,
			Rate:          7,
			RateUnit:      domain.RateWeek,
			Direction:     1,
		},
	}}
	store := configuredStore(t, map[string]config.GoalConfig{
		"reading": {DisplayName: "Reading", HoursPerUnit: 0.5},
	})
	svc := NewRequirementService(store, trackerFactory(tracker))

	batch, err := svc.Calculate(context.Background())
	require.NoError(t, err)
	require.Len(t, batch.Requirements, 1)

	req := batch.Requirements[0]
	assert.True(t, req.HasData)
	assert.Equal(t, domain.UrgencySoon, req.Urgency)
	assert.InDelta(t, 2.0, req.HoursNeeded, 1e-9)
	assert.Empty(t, batch.Failures)
}

func TestCalculate_PartialFailureReported(t *testing.T) {
	tracker := &fakeTracker{goals: map[string]*domain.GoalTelemetry{
		"reading": {Slug: "reading", CurrentValue: f64(1), TargetValue: f64(2), SafeDays: 5},
	}}
	store := configuredStore(t, map[string]config.GoalConfig{
		"reading": {DisplayName: "Reading", HoursPerUnit: 1},
		"writing": {DisplayName: "Writing", HoursPerUnit: 1},
	})
	svc := NewRequirementService(store, trackerFactory(tracker))

	batch, err := svc.Calculate(context.Background())
	require.NoError(t, err)
	assert.Len(t, batch.Requirements, 1)
	require.Len(t, batch.Failures, 1)
	assert.Equal(t, "writing", batch.Failures[0].Slug)
}
