package firestore

import (
	"context"

	"doorman/config"
	"doorman/internal/domain/entity"
	"doorman/internal/domain/repository"
	"doorman/internal/errors"
	"doorman/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type temporaryAccessRepository struct {
	client     *firestore.Client
	collection string
}

// NewTemporaryAccessRepository creates a Firestore-backed grant repository.
func NewTemporaryAccessRepository(client *firestore.Client, cfg *config.Config) repository.TemporaryAccessRepository {
	return &temporaryAccessRepository{
		client:     client,
		collection: cfg.Access.TemporaryCollection,
	}
}

// FindByID looks up a grant by its document ID.
func (r *temporaryAccessRepository) FindByID(ctx context.Context, id string) (*entity.TemporaryAccess, error) {
	doc, err := r.client.Collection(r.collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrGrantNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get grant document")
	}

	var grant model.TemporaryAccessModel
	if err := doc.DataTo(&grant); err != nil {
		return nil, errors.Wrap(err, "decode grant document")
	}

	return grant.ToEntity(doc.Ref.ID), nil
}

// Expire transitions the grant to expired inside a transaction, guarded by
// the status still being active.
func (r *temporaryAccessRepository) Expire(ctx context.Context, id string) error {
	ref := r.client.Collection(r.collection).Doc(id)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if status.Code(err) == codes.NotFound {
			return repository.ErrInvalidationConflict
		}
		if err != nil {
			return errors.Wrap(err, "read grant in transaction")
		}

		stored, err := doc.DataAt("status")
		if err != nil {
			return errors.Wrap(err, "read grant status field")
		}
		if stored != string(entity.GrantStatusActive) {
			return repository.ErrInvalidationConflict
		}

		return errors.WithStack(tx.Update(ref, []firestore.Update{
			{Path: "status", Value: string(entity.GrantStatusExpired)},
			{Path: "expiredAt", Value: firestore.ServerTimestamp},
		}))
	})
	if err != nil {
		if errors.Is(err, repository.ErrInvalidationConflict) {
			return repository.ErrInvalidationConflict
		}

		return errors.Wrap(err, "expire grant")
	}

	return nil
}
