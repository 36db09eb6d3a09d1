package service

import "errors"

var (
	// ErrNoCredentials means Beeminder credentials are missing; setup
	// must run first.
	ErrNoCredentials = errors.New("beeminder credentials not configured (run setup)")

	// ErrNoScheduledGoals means no goals are configured for scheduling.
	ErrNoScheduledGoals = errors.New("no goals configured for scheduling")

	// ErrNoSchedule means no schedule has been generated yet.
	ErrNoSchedule = errors.New("no schedule has been generated yet")

	// ErrNotScheduled means the named goal is not in the scheduled set.
	ErrNotScheduled = errors.New("goal is not configured for scheduling")

	// ErrAlreadyScheduled means the named goal is already in the
	// scheduled set.
	ErrAlreadyScheduled = errors.New("goal is already configured for scheduling")

	// ErrInvalidHoursPerUnit means a non-positive hours-per-unit was
	// supplied.
	ErrInvalidHoursPerUnit = errors.New("hours per unit must be positive")
)
