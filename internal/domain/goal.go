package domain

// RateUnit is the time unit a goal's commitment rate is expressed in,
// matching the tracker's wire values.
type RateUnit string

const (
	RateYear  RateUnit = "y"
	RateMonth RateUnit = "m"
	RateWeek  RateUnit = "w"
	RateDay   RateUnit = "d"
	RateHour  RateUnit = "h"
)

// ScheduledGoal is a tracked goal the user has opted into daily scheduling.
// HoursPerUnit converts one unit of goal progress into hours of effort.
type ScheduledGoal struct {
	Slug         string
	DisplayName  string
	HoursPerUnit float64
}

// DueKind discriminates the two telemetry shapes for "what's owed":
// a target/current delta, or a pre-computed bare-minimum figure.
type DueKind string

const (
	DueTargetDelta DueKind = "target_delta"
	DueMinimum     DueKind = "minimum_due"
	DueUnknown     DueKind = "unknown"
)

// GoalTelemetry is a point-in-time snapshot of a goal fetched from the
// tracker. It is never cached beyond the current calculation pass.
type GoalTelemetry struct {
	Slug  string
	Title string

	// CurrentValue is nil when the goal has no datapoints yet.
	CurrentValue *float64
	// TargetValue is nil for goals that express their commitment only
	// through a rate and bare-minimum figure.
	TargetValue *float64

	// DeadlineEpoch is the derail time in Unix seconds; 0 means the
	// tracker reported no deadline.
	DeadlineEpoch int64
	// SafeDays is how many days remain before the goal derails if no
	// further progress is made. May be zero or negative.
	SafeDays int

	Pledge   float64
	Rate     float64
	RateUnit RateUnit

	// Direction is positive when progress must rise to meet the target
	// and negative when it must fall.
	Direction int

	// MinimumDue is the bare-minimum progress owed right now, encoded
	// either as a decimal number or a sign-prefixed HH:MM duration.
	MinimumDue string

	Summary string
	Units   string
}
