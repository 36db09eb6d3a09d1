package service

import (
	"context"
	"time"

	"github.com/alexanderramin/beeline/internal/beeminder"
	"github.com/alexanderramin/beeline/internal/calendar"
	"github.com/alexanderramin/beeline/internal/domain"
	"github.com/alexanderramin/beeline/internal/planner"
	"github.com/alexanderramin/beeline/internal/repository"
	"github.com/alexanderramin/beeline/internal/schedule"
)

type GoalService interface {
	// ListTracked fetches every goal on the Beeminder account.
	ListTracked(ctx context.Context) ([]domain.GoalTelemetry, error)
	// ListScheduled returns the goals configured for scheduling.
	ListScheduled(ctx context.Context) ([]domain.ScheduledGoal, error)
	// Add requires a positive hoursPerUnit; Update treats zero as
	// "leave unchanged" so partial updates work, but rejects negatives.
	Add(ctx context.Context, slug, displayName string, hoursPerUnit float64) error
	Update(ctx context.Context, slug, displayName string, hoursPerUnit float64) error
	Remove(ctx context.Context, slug string) error
	// LogProgress records a datapoint on a goal and refreshes it.
	LogProgress(ctx context.Context, slug string, value float64, comment string) (*beeminder.Datapoint, error)
}

type RequirementService interface {
	// Calculate fetches fresh telemetry for every scheduled goal and
	// derives requirements.
	Calculate(ctx context.Context) (*planner.BatchResult, error)
}

// GeneratedSchedule is a schedule produced or retrieved by the
// ScheduleService, already canonicalized.
type GeneratedSchedule struct {
	Text        string
	Detected    bool
	Entries     []domain.ScheduleEntry
	Malformed   []string
	Notes       string
	GeneratedAt time.Time
}

type ScheduleService interface {
	Generate(ctx context.Context, window schedule.DayWindow, preferences string) (*GeneratedSchedule, error)
	Refine(ctx context.Context, feedback string) (*GeneratedSchedule, error)
	// Last returns the most recently stored schedule.
	Last(ctx context.Context) (*GeneratedSchedule, error)
	// History returns stored schedules, newest first. A non-positive
	// limit applies a default.
	History(ctx context.Context, limit int) ([]*repository.ScheduleRecord, error)
}

type PushService interface {
	// Push projects the last schedule onto a calendar for the given day.
	Push(ctx context.Context, calendarID string, day time.Time) (*calendar.PushResult, error)
	ListCalendars(ctx context.Context) ([]calendar.Calendar, error)
}
