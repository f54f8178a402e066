// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"doorman/internal/domain/entity"
	"doorman/internal/errors"
)

// Domain-specific errors for access-record persistence.
var (
	// ErrReservationNotFound is returned when no reservation carries the secret.
	ErrReservationNotFound = errors.New("reservation not found")
	// ErrGrantNotFound is returned when no temporary access grant matches the id.
	ErrGrantNotFound = errors.New("temporary access grant not found")
	// ErrInvalidationConflict is returned when the conditional consume guard
	// fails because another request invalidated the record first.
	ErrInvalidationConflict = errors.New("record already consumed")
)

// ReservationRepository defines lookup and one-time consumption of
// reservation records.
type ReservationRepository interface {
	// FindBySecret retrieves the reservation whose live secret equals the
	// presented value. At most one match is returned; the store treats the
	// first match as authoritative.
	FindBySecret(ctx context.Context, secret string) (*entity.Reservation, error)

	// ConsumeSecret atomically overwrites the reservation's secret with the
	// tombstone, guarded by the secret still equaling current. A failed
	// guard returns ErrInvalidationConflict.
	ConsumeSecret(ctx context.Context, id, current, tombstone string) error
}
