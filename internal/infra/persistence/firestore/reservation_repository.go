package firestore

import (
	"context"

	"doorman/config"
	"doorman/internal/domain/entity"
	"doorman/internal/domain/repository"
	"doorman/internal/errors"
	"doorman/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type reservationRepository struct {
	client     *firestore.Client
	collection string
}

// NewReservationRepository creates a Firestore-backed reservation repository.
func NewReservationRepository(client *firestore.Client, cfg *config.Config) repository.ReservationRepository {
	return &reservationRepository{
		client:     client,
		collection: cfg.Access.ReservationCollection,
	}
}

// FindBySecret looks up the reservation holding the live secret. The query
// is limited to one result; the first match is authoritative even if the
// store violates the uniqueness contract.
func (r *reservationRepository) FindBySecret(ctx context.Context, secret string) (*entity.Reservation, error) {
	iter := r.client.Collection(r.collection).
		Where("secret", "==", secret).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrReservationNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "query reservations by secret")
	}

	var reservation model.ReservationModel
	if err := doc.DataTo(&reservation); err != nil {
		return nil, errors.Wrap(err, "decode reservation document")
	}

	return reservation.ToEntity(doc.Ref.ID), nil
}

// ConsumeSecret tombstones the reservation secret inside a transaction,
// guarded by the secret still equaling the previously observed value. The
// guard, not the earlier read, decides the race: exactly one concurrent
// request wins.
func (r *reservationRepository) ConsumeSecret(ctx context.Context, id, current, tombstone string) error {
	ref := r.client.Collection(r.collection).Doc(id)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if status.Code(err) == codes.NotFound {
			return repository.ErrInvalidationConflict
		}
		if err != nil {
			return errors.Wrap(err, "read reservation in transaction")
		}

		stored, err := doc.DataAt("secret")
		if err != nil {
			return errors.Wrap(err, "read reservation secret field")
		}
		if stored != current {
			return repository.ErrInvalidationConflict
		}

		return errors.WithStack(tx.Update(ref, []firestore.Update{
			{Path: "secret", Value: tombstone},
			{Path: "usedAt", Value: firestore.ServerTimestamp},
		}))
	})
	if err != nil {
		if errors.Is(err, repository.ErrInvalidationConflict) {
			return repository.ErrInvalidationConflict
		}

		return errors.Wrap(err, "consume reservation secret")
	}

	return nil
}
