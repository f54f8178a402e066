// Package service defines the interfaces for infrastructure services.
package service

import (
	"context"
	"time"
)

// TriggerEvent is the durable unlock record handed to downstream automation.
type TriggerEvent struct {
	Summary     string // Fixed action label.
	Description string // References the consumed record's kind, id and holder.
	Start       time.Time
	End         time.Time
	EventID     string // Generated identifier, unique per verification attempt.
	RoomID      string // Fixed sentinel for the door-control channel.
}

// TriggerConfirmation acknowledges that the sink accepted the event.
type TriggerConfirmation struct {
	EventID string
	Link    string
	Created time.Time
}

// TriggerEmitter is the durable side-effect sink watched by the automation
// that performs the physical action. A nil confirmation without error is
// treated as emission failure by callers.
type TriggerEmitter interface {
	Emit(ctx context.Context, event *TriggerEvent) (*TriggerConfirmation, error)
}
