package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/beeline/internal/llm"
	"github.com/alexanderramin/beeline/internal/repository"
	"github.com/alexanderramin/beeline/internal/schedule"
)

type scheduleService struct {
	requirements RequirementService
	llm          llm.Client
	schedules    repository.ScheduleRepo
	now          func() time.Time
}

func NewScheduleService(requirements RequirementService, llmClient llm.Client, schedules repository.ScheduleRepo) ScheduleService {
	return &scheduleService{
		requirements: requirements,
		llm:          llmClient,
		schedules:    schedules,
		now:          time.Now,
	}
}

func (s *scheduleService) Generate(ctx context.Context, window schedule.DayWindow, preferences string) (*GeneratedSchedule, error) {
	batch, err := s.requirements.Calculate(ctx)
	if err != nil {
		return nil, err
	}
	if len(batch.Requirements) == 0 {
		return nil, fmt.Errorf("no goal telemetry available (%d goals failed)", len(batch.Failures))
	}

	now := s.now()
	resp, err := s.llm.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSchedule,
		SystemPrompt: schedule.GenerateSystemPrompt,
		UserPrompt:   schedule.BuildGeneratePrompt(batch.Requirements, window, preferences, now),
	})
	if err != nil {
		return nil, err
	}

	return s.persist(ctx, resp.Text, repository.KindGenerated, now)
}

func (s *scheduleService) Refine(ctx context.Context, feedback string) (*GeneratedSchedule, error) {
	previous, _, err := s.schedules.GetLast(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoSchedule
		}
		return nil, err
	}

	resp, err := s.llm.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskRefine,
		SystemPrompt: schedule.RefineSystemPrompt,
		UserPrompt:   schedule.BuildRefinePrompt(previous, feedback),
	})
	if err != nil {
		return nil, err
	}

	return s.persist(ctx, resp.Text, repository.KindRefined, s.now())
}

// defaultHistoryLimit bounds history listings when no limit is given.
const defaultHistoryLimit = 10

func (s *scheduleService) History(ctx context.Context, limit int) ([]*repository.ScheduleRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.schedules.ListHistory(ctx, limit)
}

func (s *scheduleService) Last(ctx context.Context) (*GeneratedSchedule, error) {
	body, generatedAt, err := s.schedules.GetLast(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoSchedule
		}
		return nil, err
	}
	return &GeneratedSchedule{
		Text:        body,
		Detected:    true,
		Entries:     schedule.ParseEntries(body),
		GeneratedAt: generatedAt,
	}, nil
}

// persist canonicalizes raw generator output and stores it. The
// schedule is returned even when storing fails.
func (s *scheduleService) persist(ctx context.Context, raw string, kind repository.ScheduleKind, at time.Time) (*GeneratedSchedule, error) {
	result := schedule.Canonicalize(raw)
	gen := &GeneratedSchedule{
		Text:        result.Text,
		Detected:    result.Detected,
		Entries:     result.Entries,
		Malformed:   result.Malformed,
		Notes:       result.Notes,
		GeneratedAt: at,
	}

	if err := s.schedules.SaveLast(ctx, result.Text, at); err != nil {
		return gen, fmt.Errorf("saving schedule: %w", err)
	}
	if err := s.schedules.AppendHistory(ctx, &repository.ScheduleRecord{
		ID:        uuid.NewString(),
		Body:      result.Text,
		Kind:      kind,
		CreatedAt: at,
	}); err != nil {
		return gen, fmt.Errorf("recording schedule history: %w", err)
	}
	return gen, nil
}
