// Package access holds the pure time-window arithmetic for authorization
// records. Nothing here touches storage or the clock; callers supply "now".
package access

import (
	"time"

	"doorman/internal/domain/entity"
	"doorman/internal/errors"
)

// ReservationGrace is the fixed tolerance applied on both sides of a
// reservation's nominal window.
const ReservationGrace = 30 * time.Minute

const (
	dateLayout = "2006-01-02"
)

var clockLayouts = []string{"15:04", "15:04:05"}

// Window is a closed time interval. A window whose End precedes its Start is
// permanently rejecting.
type Window struct {
	Start time.Time
	End   time.Time
}

// Expand widens the window by d on both sides.
func (w Window) Expand(d time.Duration) Window {
	return Window{Start: w.Start.Add(-d), End: w.End.Add(d)}
}

// Contains reports whether t falls inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	if w.End.Before(w.Start) {
		return false
	}

	return !t.Before(w.Start) && !t.After(w.End)
}

// ReservationWindow computes a reservation's nominal window in loc. An end
// time earlier than the start time rolls the end forward to the next day.
// Malformed date or clock strings yield an error, never a passing window.
func ReservationWindow(res *entity.Reservation, loc *time.Location) (Window, error) {
	day, err := time.ParseInLocation(dateLayout, res.Date, loc)
	if err != nil {
		return Window{}, errors.Wrapf(err, "parse reservation date %q", res.Date)
	}

	start, err := atClock(day, res.StartTime, loc)
	if err != nil {
		return Window{}, errors.Wrapf(err, "parse reservation start time %q", res.StartTime)
	}

	end, err := atClock(day, res.EndTime, loc)
	if err != nil {
		return Window{}, errors.Wrapf(err, "parse reservation end time %q", res.EndTime)
	}

	// A booking across midnight ends on the following day.
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}

	return Window{Start: start, End: end}, nil
}

// GrantWindow returns a temporary access grant's absolute window. An
// inverted ValidFrom/ValidUntil pair is a valid, permanently rejecting
// window rather than an error.
func GrantWindow(grant *entity.TemporaryAccess) Window {
	return Window{Start: grant.ValidFrom, End: grant.ValidUntil}
}

func atClock(day time.Time, clock string, loc *time.Location) (time.Time, error) {
	var parsed time.Time
	var err error
	for _, layout := range clockLayouts {
		parsed, err = time.Parse(layout, clock)
		if err == nil {
			return time.Date(day.Year(), day.Month(), day.Day(),
				parsed.Hour(), parsed.Minute(), parsed.Second(), 0, loc), nil
		}
	}

	return time.Time{}, errors.WithStack(err)
}
