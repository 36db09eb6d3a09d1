package calendar

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alexanderramin/beeline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	events  []EventRequest
	failFor map[string]error
}

func (f *fakeService) ListCalendars(context.Context) ([]Calendar, error) {
	return []Calendar{{ID: "primary", Summary: "Primary"}}, nil
}

func (f *fakeService) CreateEvent(_ context.Context, req EventRequest) (string, error) {
	if err, ok := f.failFor[req.Summary]; ok {
		return "", err
	}
	f.events = append(f.events, req)
	return "evt-" + req.Summary, nil
}

var day = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

func TestPush_CreatesEventsWithResolvedTimes(t *testing.T) {
	svc := &fakeService{}
	result := Push(context.Background(), svc, []domain.ScheduleEntry{
		{Start: "9:00 AM", End: "10:30 AM", Label: "Writing", Goal: "Thesis"},
		{Start: "10:30 AM", End: "10:45 AM", Label: "Break"},
	}, "primary", day)

	assert.Equal(t, 2, result.Created)
	assert.Empty(t, result.Errors)
	require.Len(t, svc.events, 2)

	first := svc.events[0]
	assert.Equal(t, "Writing (Thesis)", first.Summary)
	assert.Equal(t, time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC), first.Start)
	assert.Equal(t, time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC), first.End)
	assert.Contains(t, first.Description, "Goal: Thesis")
}

func TestPush_EndBeforeStartWrapsToNextDay(t *testing.T) {
	svc := &fakeService{}
	result := Push(context.Background(), svc, []domain.ScheduleEntry{
		{Start: "11:30 PM", End: "12:15 AM", Label: "Night review", Goal: "Reading"},
	}, "primary", day)

	require.Equal(t, 1, result.Created)
	assert.Equal(t, time.Date(2025, 3, 15, 23, 30, 0, 0, time.UTC), svc.events[0].Start)
	assert.Equal(t, time.Date(2025, 3, 16, 0, 15, 0, 0, time.UTC), svc.events[0].End)
}

func TestPush_FailureCollectedBatchContinues(t *testing.T) {
	svc := &fakeService{failFor: map[string]error{
		"Writing (Thesis)": errors.New("quota exceeded"),
	}}
	result := Push(context.Background(), svc, []domain.ScheduleEntry{
		{Start: "9:00 AM", End: "10:00 AM", Label: "Writing", Goal: "Thesis"},
		{Start: "10:00 AM", End: "10:15 AM", Label: "Break"},
	}, "primary", day)

	assert.Equal(t, 1, result.Created)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Writing (Thesis)")
	assert.Contains(t, result.Errors[0], "quota exceeded")
}

func TestPush_UnparseableTimeReported(t *testing.T) {
	svc := &fakeService{}
	result := Push(context.Background(), svc, []domain.ScheduleEntry{
		{Start: "whenever", End: "10:00 AM", Label: "Vague block"},
	}, "primary", day)

	assert.Equal(t, 0, result.Created)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Vague block")
}

func TestColorTag_BreakAndLunchFixed(t *testing.T) {
	assert.Equal(t, breakColorID, colorTag(domain.ScheduleEntry{Label: "Lunch break"}))
	assert.Equal(t, breakColorID, colorTag(domain.ScheduleEntry{Label: "Quick Break", Goal: "Reading"}))
}

func TestColorTag_GoalDeterministicInPalette(t *testing.T) {
	a := colorTag(domain.ScheduleEntry{Label: "Write", Goal: "Thesis"})
	b := colorTag(domain.ScheduleEntry{Label: "Edit", Goal: "Thesis"})
	assert.Equal(t, a, b)

	n, err := strconv.Atoi(a)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1)
	assert.LessOrEqual(t, n, 11)
}

func TestColorTag_NoGoalNoColor(t *testing.T) {
	assert.Equal(t, "", colorTag(domain.ScheduleEntry{Label: "Commute"}))
}
