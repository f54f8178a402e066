package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"doorman/config"
	"doorman/internal/domain/entity"
	domainerrors "doorman/internal/domain/errors"
	"doorman/internal/domain/repository"
	"doorman/internal/domain/service"
	"doorman/internal/errors"
	"doorman/internal/infra/metrics"
	mockRepo "doorman/internal/mocks/repository"
	mockSvc "doorman/internal/mocks/service"
	"doorman/internal/usecase"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceFixture struct {
	reservationRepo *mockRepo.MockReservationRepository
	temporaryRepo   *mockRepo.MockTemporaryAccessRepository
	triggerEmitter  *mockSvc.MockTriggerEmitter
	qrcodeService   *mockSvc.MockQRCodeService
	metrics         *metrics.AccessMetrics
	service         usecase.VerificationUsecase
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	f := &serviceFixture{
		reservationRepo: mockRepo.NewMockReservationRepository(t),
		temporaryRepo:   mockRepo.NewMockTemporaryAccessRepository(t),
		triggerEmitter:  mockSvc.NewMockTriggerEmitter(t),
		qrcodeService:   mockSvc.NewMockQRCodeService(t),
		metrics:         metrics.New(),
	}

	cfg := &config.Config{
		Calendar: &config.CalendarConfig{
			CalendarID:  "door-control",
			EventSpan:   5 * time.Minute,
			EmitTimeout: time.Second,
		},
	}

	svc, err := NewVerificationService(VerificationServiceParams{
		ReservationRepo: f.reservationRepo,
		TemporaryRepo:   f.temporaryRepo,
		TriggerEmitter:  f.triggerEmitter,
		QRCodeService:   f.qrcodeService,
		Metrics:         f.metrics,
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	f.service = svc

	return f
}

// reservationValidNow covers the whole local day, so "now" is always inside.
func reservationValidNow(secret string) *entity.Reservation {
	return &entity.Reservation{
		ID:        "res-1",
		Date:      time.Now().Format("2006-01-02"),
		StartTime: "00:00",
		EndTime:   "23:59",
		Secret:    secret,
		UserName:  "Lin Wei",
		Room:      "A201",
	}
}

// reservationLongPast ended a week ago, far outside any grace period.
func reservationLongPast(secret string) *entity.Reservation {
	return &entity.Reservation{
		ID:        "res-2",
		Date:      time.Now().AddDate(0, 0, -7).Format("2006-01-02"),
		StartTime: "10:00",
		EndTime:   "11:00",
		Secret:    secret,
		UserName:  "Lin Wei",
	}
}

func TestVerifySecret_EmptySecret(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.VerifySecret(context.Background(), "   ")
	assert.ErrorIs(t, err, domainerrors.ErrMissingSecret)
}

func TestVerifySecret_NotFoundInEitherCollection(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	f.reservationRepo.EXPECT().
		FindBySecret(ctx, "unknown").
		Return(nil, repository.ErrReservationNotFound)
	f.temporaryRepo.EXPECT().
		FindByID(ctx, "unknown").
		Return(nil, repository.ErrGrantNotFound)

	_, err := f.service.VerifySecret(ctx, "unknown")
	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestVerifySecret_ReservationAccepted(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	res := reservationValidNow("secret-1")

	f.reservationRepo.EXPECT().
		FindBySecret(ctx, "secret-1").
		Return(res, nil)
	f.reservationRepo.EXPECT().
		ConsumeSecret(ctx, "res-1", "secret-1", mock.AnythingOfType("string")).
		Run(func(ctx context.Context, id, current, tombstone string) {
			assert.True(t, strings.HasPrefix(tombstone, "used-"))
			assert.True(t, strings.HasSuffix(tombstone, "secret-1"))
		}).
		Return(nil)
	f.triggerEmitter.EXPECT().
		Emit(mock.Anything, mock.AnythingOfType("*service.TriggerEvent")).
		Run(func(ctx context.Context, event *service.TriggerEvent) {
			assert.Equal(t, "Door unlock", event.Summary)
			assert.Equal(t, "door-control", event.RoomID)
			assert.Contains(t, event.Description, "res-1")
			assert.Contains(t, event.Description, "Lin Wei")
			assert.NotEmpty(t, event.EventID)
			assert.Equal(t, 5*time.Minute, event.End.Sub(event.Start))
		}).
		Return(&service.TriggerConfirmation{EventID: "evt-1"}, nil)

	result, err := f.service.VerifySecret(ctx, "secret-1")
	require.NoError(t, err)
	assert.Equal(t, entity.KindReservation, result.Kind)
	assert.Equal(t, "res-1", result.RecordID)
	assert.Equal(t, "Lin Wei", result.Holder)
	assert.True(t, result.TriggerEmitted)
}

func TestVerifySecret_ReservationOutsideWindow_NoGrantFallback(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	// The grant repository gets no expectations: a reservation match is
	// authoritative even when it is rejected, and any fallback lookup
	// fails this test.
	f.reservationRepo.EXPECT().
		FindBySecret(ctx, "secret-2").
		Return(reservationLongPast("secret-2"), nil)

	_, err := f.service.VerifySecret(ctx, "secret-2")
	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestVerifySecret_ReservationMalformedDate(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	res := reservationValidNow("secret-3")
	res.Date = "not-a-date"

	f.reservationRepo.EXPECT().
		FindBySecret(ctx, "secret-3").
		Return(res, nil)

	_, err := f.service.VerifySecret(ctx, "secret-3")
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

func TestVerifySecret_GrantAccepted(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	grant := &entity.TemporaryAccess{
		ID:         "grant-1",
		Status:     entity.GrantStatusActive,
		ValidFrom:  time.Now().Add(-time.Hour),
		ValidUntil: time.Now().Add(time.Hour),
		UserEmail:  "visitor@example.com",
	}

	f.reservationRepo.EXPECT().
		FindBySecret(ctx, "grant-1").
		Return(nil, repository.ErrReservationNotFound)
	f.temporaryRepo.EXPECT().
		FindByID(ctx, "grant-1").
		Return(grant, nil)
	f.temporaryRepo.EXPECT().
		Expire(ctx, "grant-1").
		Return(nil)
	f.triggerEmitter.EXPECT().
		Emit(mock.Anything, mock.AnythingOfType("*service.TriggerEvent")).
		Return(&service.TriggerConfirmation{EventID: "evt-2"}, nil)

	result, err := f.service.VerifySecret(ctx, "grant-1")
	require.NoError(t, err)
	assert.Equal(t, entity.KindTemporaryAccess, result.Kind)
	assert.Equal(t, "visitor@example.com", result.Holder)
	assert.True(t, result.TriggerEmitted)
}

func TestVerifySecret_GrantInactiveRejectedRegardlessOfTime(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	grant := &entity.TemporaryAccess{
		ID:         "grant-2",
		Status:     entity.GrantStatusExpired,
		ValidFrom:  time.Now().Add(-time.Hour),
		ValidUntil: time.Now().Add(time.Hour),
	}

	f.reservationRepo.EXPECT().
		FindBySecret(ctx, "grant-2").
		Return(nil, repository.ErrReservationNotFound)
	f.temporaryRepo.EXPECT().
		FindByID(ctx, "grant-2").
		Return(grant, nil)

	_, err := f.service.VerifySecret(ctx, "grant-2")
	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestVerifySecret_GrantOutsideWindow(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	grant := &entity.TemporaryAccess{
		ID:         "grant-3",
		Status:     entity.GrantStatusActive,
		ValidFrom:  time.Now().Add(-2 * time.Hour),
		ValidUntil: time.Now().Add(-time.Hour),
	}

	f.reservationRepo.EXPECT().
		FindBySecret(ctx, "grant-3").
		Return(nil, repository.ErrReservationNotFound)
	f.temporaryRepo.EXPECT().
		FindByID(ctx, "grant-3").
		Return(grant, nil)

	_, err := f.service.VerifySecret(ctx, "grant-3")
	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestVerifySecret_InvalidationConflictRejected(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	res := reservationValidNow("secret-4")

	// The trigger emitter gets no expectations: a lost invalidation race
	// must never emit an unlock event.
	f.reservationRepo.EXPECT().
		FindBySecret(ctx, "secret-4").
		Return(res, nil)
	f.reservationRepo.EXPECT().
		ConsumeSecret(ctx, "res-1", "secret-4", mock.AnythingOfType("string")).
		Return(repository.ErrInvalidationConflict)

	_, err := f.service.VerifySecret(ctx, "secret-4")
	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestVerifySecret_StoreUnreachable(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	f.reservationRepo.EXPECT().
		FindBySecret(ctx, "secret-5").
		Return(nil, errors.New("deadline exceeded"))

	_, err := f.service.VerifySecret(ctx, "secret-5")
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestVerifySecret_TriggerFailureStillSucceeds(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	res := reservationValidNow("secret-6")

	f.reservationRepo.EXPECT().
		FindBySecret(ctx, "secret-6").
		Return(res, nil)
	f.reservationRepo.EXPECT().
		ConsumeSecret(ctx, "res-1", "secret-6", mock.AnythingOfType("string")).
		Return(nil)
	f.triggerEmitter.EXPECT().
		Emit(mock.Anything, mock.AnythingOfType("*service.TriggerEvent")).
		Return(nil, errors.New("calendar unavailable"))

	result, err := f.service.VerifySecret(ctx, "secret-6")
	require.NoError(t, err)
	assert.False(t, result.TriggerEmitted)
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.TriggerFailures))
}

func TestVerifySecret_NilConfirmationCountsAsTriggerFailure(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	res := reservationValidNow("secret-7")

	f.reservationRepo.EXPECT().
		FindBySecret(ctx, "secret-7").
		Return(res, nil)
	f.reservationRepo.EXPECT().
		ConsumeSecret(ctx, "res-1", "secret-7", mock.AnythingOfType("string")).
		Return(nil)
	f.triggerEmitter.EXPECT().
		Emit(mock.Anything, mock.AnythingOfType("*service.TriggerEvent")).
		Return(nil, nil)

	result, err := f.service.VerifySecret(ctx, "secret-7")
	require.NoError(t, err)
	assert.False(t, result.TriggerEmitted)
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.TriggerFailures))
}

func TestTombstoneSecret(t *testing.T) {
	at := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	tombstone := TombstoneSecret("abc123", at)
	assert.Equal(t, "used-20260310T143000Z-abc123", tombstone)
	assert.NotEqual(t, "abc123", tombstone)
}

func TestPassQR_LiveReservation(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	f.reservationRepo.EXPECT().
		FindBySecret(ctx, "secret-8").
		Return(reservationValidNow("secret-8"), nil)
	f.qrcodeService.EXPECT().
		GeneratePassQR("secret-8").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := f.service.PassQR(ctx, "secret-8")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestPassQR_ConsumedGrantRejected(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	f.reservationRepo.EXPECT().
		FindBySecret(ctx, "grant-4").
		Return(nil, repository.ErrReservationNotFound)
	f.temporaryRepo.EXPECT().
		FindByID(ctx, "grant-4").
		Return(&entity.TemporaryAccess{ID: "grant-4", Status: entity.GrantStatusExpired}, nil)

	_, err := f.service.PassQR(ctx, "grant-4")
	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}
