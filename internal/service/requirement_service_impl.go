package service

import (
	"context"

	"github.com/alexanderramin/beeline/internal/config"
	"github.com/alexanderramin/beeline/internal/planner"
)

type requirementService struct {
	store     *config.Store
	newClient ClientFactory
}

func NewRequirementService(store *config.Store, newClient ClientFactory) RequirementService {
	return &requirementService{store: store, newClient: newClient}
}

func (s *requirementService) Calculate(ctx context.Context) (*planner.BatchResult, error) {
	cfg, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if !cfg.HasCredentials() {
		return nil, ErrNoCredentials
	}

	goals := cfg.ScheduledGoals()
	if len(goals) == 0 {
		return nil, ErrNoScheduledGoals
	}

	client := s.newClient(cfg.Username, cfg.AuthToken)
	result := planner.NewCalculator(client).Calculate(ctx, goals)
	return &result, nil
}
