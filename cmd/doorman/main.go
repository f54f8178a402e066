package main

import (
	"context"
	"log/slog"
	"os"

	"doorman/config"
	"doorman/internal/delivery"
	"doorman/internal/delivery/http"
	"doorman/internal/delivery/http/router/handler"
	"doorman/internal/domain/service"
	logs "doorman/internal/infra/log"
	"doorman/internal/infra/metrics"
	"doorman/internal/infra/persistence/firestore"
	"doorman/internal/infra/qrcode"
	"doorman/internal/infra/trigger"
	"doorman/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		firestore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewReservationRepository,
			firestore.NewTemporaryAccessRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newTriggerEmitter,
			newQRCodeService,
		),
	)
}

// newTriggerEmitter creates the calendar trigger emitter. Without calendar
// configuration the service runs in a documented degraded mode: secrets are
// still consumed and verified, but every emission is logged and counted as a
// trigger failure.
func newTriggerEmitter(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.TriggerEmitter, error) {
	if cfg.Calendar == nil {
		logger.Warn("no calendar configured, trigger emission is disabled")

		return nil, nil
	}

	return trigger.NewCalendarEmitter(ctx, cfg.Calendar)
}

// newQRCodeService creates the pass QR renderer.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewVerificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewVerificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
