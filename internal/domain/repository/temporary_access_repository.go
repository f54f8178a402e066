package repository

import (
	"context"

	"doorman/internal/domain/entity"
)

// TemporaryAccessRepository defines lookup and one-time consumption of
// ad-hoc access grants.
type TemporaryAccessRepository interface {
	// FindByID retrieves the grant whose document ID equals the presented
	// secret.
	FindByID(ctx context.Context, id string) (*entity.TemporaryAccess, error)

	// Expire atomically transitions the grant from active to expired,
	// guarded by the status still being active. A failed guard returns
	// ErrInvalidationConflict.
	Expire(ctx context.Context, id string) error
}
