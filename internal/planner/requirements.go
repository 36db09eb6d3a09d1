package planner

import (
	"context"
	"math"
	"time"

	"github.com/alexanderramin/beeline/internal/domain"
)

// noDeadlineHorizon substitutes for a missing derail time so goals
// without deadline pressure sort last instead of first.
const noDeadlineHorizon = 365 * 24 * time.Hour

// RequirementInput pairs a goal's scheduling config with a fresh
// telemetry snapshot.
type RequirementInput struct {
	Goal      domain.ScheduledGoal
	Telemetry domain.GoalTelemetry
	Now       time.Time
}

// ComputeRequirement derives the normalized scheduling demand for one
// goal. Pure function of its input; parse failures inside the telemetry
// degrade to zero rather than erroring.
func ComputeRequirement(input RequirementInput) domain.Requirement {
	t := input.Telemetry

	deadline := input.Now.Add(noDeadlineHorizon)
	if t.DeadlineEpoch > 0 {
		deadline = time.Unix(t.DeadlineEpoch, 0)
	}

	req := domain.Requirement{
		Slug:        input.Goal.Slug,
		DisplayName: input.Goal.DisplayName,
		Deadline:    deadline,
		SafeDays:    t.SafeDays,
		Urgency:     domain.UrgencyForSafeDays(t.SafeDays),
		Pledge:      t.Pledge,
		Summary:     t.Summary,
	}

	due := ResolveDueAmount(t)
	if due.Kind == domain.DueUnknown {
		if req.Summary == "" {
			req.Summary = "Missing datapoints"
		}
		return req
	}

	req.HasData = true
	req.UnitsNeeded = due.Delta
	req.HoursNeeded = math.Abs(due.Delta) * input.Goal.HoursPerUnit
	req.HoursPerDay = math.Abs(dailyRate(t.Rate, t.RateUnit)) * input.Goal.HoursPerUnit
	return req
}

// dailyRate normalizes a commitment rate to per-day units.
func dailyRate(rate float64, unit domain.RateUnit) float64 {
	switch unit {
	case domain.RateYear:
		return rate / 365
	case domain.RateMonth:
		return rate / 30
	case domain.RateWeek:
		return rate / 7
	case domain.RateHour:
		return rate * 24
	default:
		return rate
	}
}

// GoalFetcher is the slice of the tracker client the calculator needs.
type GoalFetcher interface {
	GetGoal(ctx context.Context, slug string) (*domain.GoalTelemetry, error)
}

// GoalFailure records a goal whose telemetry fetch failed during a
// batch pass.
type GoalFailure struct {
	Slug string
	Err  error
}

// BatchResult is the outcome of one calculation pass: requirements for
// every goal that could be fetched, plus itemized per-goal failures.
type BatchResult struct {
	Requirements []domain.Requirement
	Failures     []GoalFailure
}

// TotalHours sums the effort due now across goals with usable data.
func (r BatchResult) TotalHours() float64 {
	var total float64
	for _, req := range r.Requirements {
		total += req.HoursNeeded
	}
	return total
}

// Calculator turns scheduled goals into requirements by fetching
// telemetry one goal at a time.
type Calculator struct {
	fetcher GoalFetcher
	now     func() time.Time
}

// NewCalculator creates a Calculator backed by the given fetcher.
func NewCalculator(fetcher GoalFetcher) *Calculator {
	return &Calculator{fetcher: fetcher, now: time.Now}
}

// Calculate runs one pass over the given goals in order. A single
// goal's fetch failure is recorded and the batch continues; the batch
// itself never fails.
func (c *Calculator) Calculate(ctx context.Context, goals []domain.ScheduledGoal) BatchResult {
	now := c.now()
	var result BatchResult

	for _, goal := range goals {
		telemetry, err := c.fetcher.GetGoal(ctx, goal.Slug)
		if err != nil {
			result.Failures = append(result.Failures, GoalFailure{Slug: goal.Slug, Err: err})
			continue
		}
		result.Requirements = append(result.Requirements, ComputeRequirement(RequirementInput{
			Goal:      goal,
			Telemetry: *telemetry,
			Now:       now,
		}))
	}

	return result
}
