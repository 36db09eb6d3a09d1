package formatter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/beeline/internal/domain"
	"github.com/alexanderramin/beeline/internal/planner"
)

func TestFormatRequirements(t *testing.T) {
	now := time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)
	batch := &planner.BatchResult{
		Requirements: []domain.Requirement{
			{
				DisplayName: "Reading",
				Urgency:     domain.UrgencySoon,
				HoursNeeded: 2,
				HoursPerDay: 0.5,
				Deadline:    now.Add(48 * time.Hour),
				Pledge:      5,
				HasData:     true,
			},
			{
				DisplayName: "Writing",
				Urgency:     domain.UrgencyDistant,
				Deadline:    now.Add(365 * 24 * time.Hour),
			},
		},
	}

	out := FormatRequirements(batch, now)
	assert.Contains(t, out, "TODAY'S REQUIREMENTS")
	assert.Contains(t, out, "Reading")
	assert.Contains(t, out, "SOON")
	assert.Contains(t, out, "2.0h")
	assert.Contains(t, out, "2.0 hours")
	// Missing data renders "?" instead of a zero.
	assert.Contains(t, out, "?")
}

func TestFormatRequirements_Failures(t *testing.T) {
	batch := &planner.BatchResult{
		Failures: []planner.GoalFailure{
			{Slug: "ghost", Err: errors.New("goal not found")},
		},
	}

	out := FormatRequirements(batch, time.Now())
	assert.Contains(t, out, "ghost")
	assert.Contains(t, out, "goal not found")
}
