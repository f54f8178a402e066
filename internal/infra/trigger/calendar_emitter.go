// Package trigger implements the unlock trigger sink on Google Calendar.
// Downstream automation watches the door-control calendar and performs the
// physical action for each inserted event.
package trigger

import (
	"context"
	"time"

	"doorman/config"
	"doorman/internal/domain/service"
	"doorman/internal/errors"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type calendarEmitter struct {
	service    *calendar.Service
	calendarID string
}

// NewCalendarEmitter creates the calendar-backed trigger emitter.
func NewCalendarEmitter(ctx context.Context, cfg *config.CalendarConfig) (service.TriggerEmitter, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize calendar service")
	}

	return &calendarEmitter{
		service:    svc,
		calendarID: cfg.CalendarID,
	}, nil
}

// Emit inserts the unlock event on the door-control channel. The event's
// RoomID names that channel; it falls back to the emitter's configured
// calendar when unset.
func (e *calendarEmitter) Emit(ctx context.Context, event *service.TriggerEvent) (*service.TriggerConfirmation, error) {
	calendarID := event.RoomID
	if calendarID == "" {
		calendarID = e.calendarID
	}

	inserted, err := e.service.Events.Insert(calendarID, &calendar.Event{
		Id:          event.EventID,
		Summary:     event.Summary,
		Description: event.Description,
		Start:       &calendar.EventDateTime{DateTime: event.Start.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: event.End.Format(time.RFC3339)},
	}).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "insert trigger event")
	}
	if inserted == nil {
		return nil, nil
	}

	confirmation := &service.TriggerConfirmation{
		EventID: inserted.Id,
		Link:    inserted.HtmlLink,
	}
	if created, err := time.Parse(time.RFC3339, inserted.Created); err == nil {
		confirmation.Created = created
	}

	return confirmation, nil
}
