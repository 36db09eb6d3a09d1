package beeminder

import "errors"

var (
	// ErrUnauthorized indicates the tracker rejected the credentials.
	ErrUnauthorized = errors.New("beeminder rejected credentials")

	// ErrGoalNotFound indicates the requested goal slug does not exist.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrUnavailable indicates the tracker could not be reached.
	ErrUnavailable = errors.New("beeminder unreachable")
)
