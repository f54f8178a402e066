package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"doorman/config"
	"doorman/internal/domain/access"
	"doorman/internal/domain/entity"
	domainerrors "doorman/internal/domain/errors"
	"doorman/internal/domain/repository"
	"doorman/internal/domain/service"
	"doorman/internal/errors"
	"doorman/internal/infra/metrics"
	"doorman/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	// unlockSummary is the fixed action label downstream automation matches on.
	unlockSummary = "Door unlock"

	defaultEventSpan   = 5 * time.Minute
	defaultEmitTimeout = 10 * time.Second
)

type verificationService struct {
	reservationRepo repository.ReservationRepository
	temporaryRepo   repository.TemporaryAccessRepository
	triggerEmitter  service.TriggerEmitter
	qrcodeService   service.QRCodeService
	metrics         *metrics.AccessMetrics
	logger          *slog.Logger

	location    *time.Location
	roomID      string
	eventSpan   time.Duration
	emitTimeout time.Duration
}

// VerificationServiceParams holds dependencies for VerificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	ReservationRepo repository.ReservationRepository
	TemporaryRepo   repository.TemporaryAccessRepository
	TriggerEmitter  service.TriggerEmitter `optional:"true"`
	QRCodeService   service.QRCodeService
	Metrics         *metrics.AccessMetrics
	Config          *config.Config
	Logger          *slog.Logger
}

// NewVerificationService creates the access-control decision engine.
func NewVerificationService(params VerificationServiceParams) (usecase.VerificationUsecase, error) {
	location, err := params.Config.Location()
	if err != nil {
		return nil, err
	}

	svc := &verificationService{
		reservationRepo: params.ReservationRepo,
		temporaryRepo:   params.TemporaryRepo,
		triggerEmitter:  params.TriggerEmitter,
		qrcodeService:   params.QRCodeService,
		metrics:         params.Metrics,
		logger:          params.Logger,
		location:        location,
		eventSpan:       defaultEventSpan,
		emitTimeout:     defaultEmitTimeout,
	}

	if calendar := params.Config.Calendar; calendar != nil {
		svc.roomID = calendar.CalendarID
		if calendar.EventSpan > 0 {
			svc.eventSpan = calendar.EventSpan
		}
		if calendar.EmitTimeout > 0 {
			svc.emitTimeout = calendar.EmitTimeout
		}
	}

	return svc, nil
}

// VerifySecret orchestrates resolve, window check, invalidation and trigger
// emission. Invalidation is attempted only for an accepted window; the
// trigger is attempted only after invalidation succeeded, and its outcome
// never changes the caller-facing result.
func (s *verificationService) VerifySecret(ctx context.Context, secret string) (*usecase.VerifyResult, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, domainerrors.ErrMissingSecret
	}

	outcome, err := s.resolve(ctx, secret)
	if err != nil {
		s.metrics.ObserveOutcome(metrics.OutcomeInfraError)
		s.logger.Error("resolving secret failed",
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrStoreUnavailable.WrapMessage("resolve secret")
	}

	switch outcome.Decision {
	case entity.DecisionNotFound:
		s.metrics.ObserveOutcome(metrics.OutcomeNotFound)
		s.logger.Info("no record matches presented secret")

		return nil, domainerrors.ErrAccessDenied
	case entity.DecisionRejectedExpired:
		s.metrics.ObserveOutcome(metrics.OutcomeRejectedExpired)
		s.logger.Info("record matched but outside permitted window",
			slog.String("kind", string(outcome.Kind)),
			slog.String("record_id", outcome.RecordID()),
		)

		return nil, domainerrors.ErrAccessDenied
	case entity.DecisionRejectedInactive:
		s.metrics.ObserveOutcome(metrics.OutcomeRejectedInactive)
		s.logger.Info("grant matched but is no longer active",
			slog.String("record_id", outcome.RecordID()),
			slog.String("status", string(outcome.Grant.Status)),
		)

		return nil, domainerrors.ErrAccessDenied
	case entity.DecisionAccepted:
		// fall through to invalidation
	default:
		return nil, domainerrors.ErrInternalError.WrapMessage(fmt.Sprintf("unknown decision %q", outcome.Decision))
	}

	if err := s.invalidate(ctx, outcome); err != nil {
		if errors.Is(err, repository.ErrInvalidationConflict) {
			s.metrics.ObserveOutcome(metrics.OutcomeConflict)
			s.logger.Warn("record was consumed by a concurrent request",
				slog.String("kind", string(outcome.Kind)),
				slog.String("record_id", outcome.RecordID()),
			)

			return nil, domainerrors.ErrAccessDenied
		}

		s.metrics.ObserveOutcome(metrics.OutcomeInfraError)
		s.logger.Error("invalidating record failed",
			slog.Any("error", err),
			slog.String("kind", string(outcome.Kind)),
			slog.String("record_id", outcome.RecordID()),
		)

		return nil, domainerrors.ErrStoreUnavailable.WrapMessage("invalidate record")
	}

	s.metrics.ObserveOutcome(metrics.OutcomeAccepted)

	return &usecase.VerifyResult{
		Kind:           outcome.Kind,
		RecordID:       outcome.RecordID(),
		Holder:         outcome.Holder(),
		TriggerEmitted: s.emitTrigger(ctx, outcome),
	}, nil
}

// resolve locates the candidate record for a secret. A reservation match is
// authoritative: an out-of-window reservation never falls through to the
// grant lookup, even if the same value matches a grant id.
func (s *verificationService) resolve(ctx context.Context, secret string) (*entity.VerificationOutcome, error) {
	res, err := s.reservationRepo.FindBySecret(ctx, secret)
	switch {
	case err == nil:
		window, werr := access.ReservationWindow(res, s.location)
		if werr != nil {
			// Malformed stored data is store corruption, not a user rejection.
			return nil, errors.Wrap(werr, "reservation window")
		}

		outcome := &entity.VerificationOutcome{Kind: entity.KindReservation, Reservation: res}
		if window.Expand(access.ReservationGrace).Contains(time.Now()) {
			outcome.Decision = entity.DecisionAccepted
		} else {
			outcome.Decision = entity.DecisionRejectedExpired
		}

		return outcome, nil
	case !errors.Is(err, repository.ErrReservationNotFound):
		return nil, errors.Wrap(err, "find reservation by secret")
	}

	grant, err := s.temporaryRepo.FindByID(ctx, secret)
	switch {
	case err == nil:
		outcome := &entity.VerificationOutcome{Kind: entity.KindTemporaryAccess, Grant: grant}
		switch {
		case !grant.IsActive():
			outcome.Decision = entity.DecisionRejectedInactive
		case access.GrantWindow(grant).Contains(time.Now()):
			outcome.Decision = entity.DecisionAccepted
		default:
			outcome.Decision = entity.DecisionRejectedExpired
		}

		return outcome, nil
	case errors.Is(err, repository.ErrGrantNotFound):
		return &entity.VerificationOutcome{Decision: entity.DecisionNotFound}, nil
	default:
		return nil, errors.Wrap(err, "find grant by id")
	}
}

// invalidate performs the one-time-use transition on the matched record. The
// conditional guard lives in the repository; a lost race surfaces as
// repository.ErrInvalidationConflict.
func (s *verificationService) invalidate(ctx context.Context, outcome *entity.VerificationOutcome) error {
	switch outcome.Kind {
	case entity.KindReservation:
		res := outcome.Reservation
		tombstone := TombstoneSecret(res.Secret, time.Now())

		return s.reservationRepo.ConsumeSecret(ctx, res.ID, res.Secret, tombstone)
	case entity.KindTemporaryAccess:
		return s.temporaryRepo.Expire(ctx, outcome.Grant.ID)
	default:
		return errors.Errorf("unknown record kind %q", outcome.Kind)
	}
}

// emitTrigger asks the sink to record the unlock event. Failures are logged
// as critical and counted, never surfaced: the secret holder was already
// validated and consumed, only the actuation path is degraded.
func (s *verificationService) emitTrigger(ctx context.Context, outcome *entity.VerificationOutcome) bool {
	if s.triggerEmitter == nil {
		s.metrics.TriggerFailures.Inc()
		s.logger.Error("no trigger emitter configured, door will not open",
			slog.String("kind", string(outcome.Kind)),
			slog.String("record_id", outcome.RecordID()),
		)

		return false
	}

	now := time.Now()
	event := &service.TriggerEvent{
		Summary: unlockSummary,
		Description: fmt.Sprintf("%s %s verified for %s",
			outcome.Kind, outcome.RecordID(), outcome.Holder()),
		Start:   now,
		End:     now.Add(s.eventSpan),
		EventID: newEventID(),
		RoomID:  s.roomID,
	}

	// The caller's request may complete before the sink does; keep the
	// emission bounded by its own timeout, detached from request cancellation.
	emitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.emitTimeout)
	defer cancel()

	confirmation, err := s.triggerEmitter.Emit(emitCtx, event)
	if err != nil || confirmation == nil {
		s.metrics.TriggerFailures.Inc()
		s.logger.Error("trigger emission failed, door will not open",
			slog.Any("error", err),
			slog.String("kind", string(outcome.Kind)),
			slog.String("record_id", outcome.RecordID()),
			slog.String("event_id", event.EventID),
		)

		return false
	}

	return true
}

// PassQR renders the scannable pass for a still-live secret.
func (s *verificationService) PassQR(ctx context.Context, secret string) ([]byte, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, domainerrors.ErrMissingSecret
	}

	live, err := s.isLive(ctx, secret)
	if err != nil {
		s.logger.Error("pass lookup failed", slog.Any("error", err))

		return nil, domainerrors.ErrStoreUnavailable.WrapMessage("pass lookup")
	}
	if !live {
		return nil, domainerrors.ErrAccessDenied
	}

	png, err := s.qrcodeService.GeneratePassQR(secret)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("render pass qr")
	}

	return png, nil
}

// isLive reports whether the secret still matches an unconsumed record.
// Reservation precedence mirrors resolve.
func (s *verificationService) isLive(ctx context.Context, secret string) (bool, error) {
	_, err := s.reservationRepo.FindBySecret(ctx, secret)
	switch {
	case err == nil:
		return true, nil
	case !errors.Is(err, repository.ErrReservationNotFound):
		return false, errors.Wrap(err, "find reservation by secret")
	}

	grant, err := s.temporaryRepo.FindByID(ctx, secret)
	switch {
	case err == nil:
		return grant.IsActive(), nil
	case errors.Is(err, repository.ErrGrantNotFound):
		return false, nil
	default:
		return false, errors.Wrap(err, "find grant by id")
	}
}

// TombstoneSecret derives the consumed marker for a reservation secret. It
// stays traceable to the original value but can never again equal a live
// secret.
func TombstoneSecret(secret string, at time.Time) string {
	return fmt.Sprintf("used-%s-%s", at.UTC().Format("20060102T150405Z"), secret)
}

func newEventID() string {
	// Calendar event ids only allow lowercase base32hex characters, which
	// the dashless uuid hex form satisfies.
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
