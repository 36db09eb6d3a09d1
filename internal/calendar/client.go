package calendar

import (
	"context"
	"errors"
	"time"
)

// ErrNotAuthorized indicates no usable OAuth token is available yet.
var ErrNotAuthorized = errors.New("google calendar not authorized")

// Calendar is one calendar the user can push schedules to.
type Calendar struct {
	ID      string
	Summary string
}

// EventRequest describes a single event to create.
type EventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	// ColorID is the provider's small fixed palette tag; empty means
	// the calendar default.
	ColorID string
}

// Service is the narrow calendar surface the projector consumes.
type Service interface {
	// ListCalendars returns the calendars visible to the user.
	ListCalendars(ctx context.Context) ([]Calendar, error)

	// CreateEvent creates one event and returns its provider ID.
	CreateEvent(ctx context.Context, req EventRequest) (string, error)
}
