package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/beeline/internal/calendar"
	"github.com/alexanderramin/beeline/internal/config"
)

// CalendarFactory builds a calendar service on demand, so the OAuth
// token is only loaded when a push or listing is requested.
type CalendarFactory func(ctx context.Context) (calendar.Service, error)

type pushService struct {
	store       *config.Store
	schedules   ScheduleService
	newCalendar CalendarFactory
}

func NewPushService(store *config.Store, schedules ScheduleService, newCalendar CalendarFactory) PushService {
	return &pushService{store: store, schedules: schedules, newCalendar: newCalendar}
}

func (s *pushService) Push(ctx context.Context, calendarID string, day time.Time) (*calendar.PushResult, error) {
	last, err := s.schedules.Last(ctx)
	if err != nil {
		return nil, err
	}
	if len(last.Entries) == 0 {
		return nil, fmt.Errorf("last schedule has no parseable entries")
	}

	if calendarID == "" {
		cfg, err := s.store.Load()
		if err != nil {
			return nil, err
		}
		calendarID = cfg.GoogleCalendarID
	}
	if calendarID == "" {
		calendarID = "primary"
	}

	svc, err := s.newCalendar(ctx)
	if err != nil {
		return nil, err
	}

	result := calendar.Push(ctx, svc, last.Entries, calendarID, day)
	return &result, nil
}

func (s *pushService) ListCalendars(ctx context.Context) ([]calendar.Calendar, error) {
	svc, err := s.newCalendar(ctx)
	if err != nil {
		return nil, err
	}
	return svc.ListCalendars(ctx)
}
