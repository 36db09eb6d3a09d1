package domain

import "time"

// Urgency classifies how soon a goal needs attention, derived purely
// from its safety buffer.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyTomorrow Urgency = "tomorrow"
	UrgencySoon     Urgency = "soon"
	UrgencyRoutine  Urgency = "routine"
	UrgencyDistant  Urgency = "distant"
)

// UrgencyForSafeDays maps a safety buffer to its urgency class.
// Boundaries are half-open on the low end: exactly 1 safe day is
// "tomorrow", not "critical".
func UrgencyForSafeDays(days int) Urgency {
	switch {
	case days < 1:
		return UrgencyCritical
	case days < 2:
		return UrgencyTomorrow
	case days < 3:
		return UrgencySoon
	case days < 7:
		return UrgencyRoutine
	default:
		return UrgencyDistant
	}
}

// Requirement is the normalized scheduling demand for one goal,
// recomputed on every calculation pass and never persisted.
type Requirement struct {
	Slug        string
	DisplayName string

	Deadline time.Time
	SafeDays int
	Urgency  Urgency

	// UnitsNeeded is the signed progress delta resolved from telemetry.
	UnitsNeeded float64
	// HoursNeeded is the non-negative effort due now.
	HoursNeeded float64
	// HoursPerDay is the steady-state daily effort implied by the
	// goal's commitment rate.
	HoursPerDay float64

	Pledge  float64
	Summary string

	// HasData is false when the current value or minimum-due figure
	// could not be determined. Zero hours then mean "unknown", not
	// "no work needed".
	HasData bool
}
