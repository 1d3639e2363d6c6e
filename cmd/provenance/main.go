package main

import (
	"context"
	"log/slog"
	"os"

	"provenance/config"
	"provenance/internal/delivery"
	"provenance/internal/delivery/api"
	apimiddleware "provenance/internal/delivery/api/middleware"
	"provenance/internal/delivery/api/router/handler"
	"provenance/internal/infra/auth"
	"provenance/internal/infra/embedding"
	"provenance/internal/infra/imaging"
	"provenance/internal/infra/ledger"
	logs "provenance/internal/infra/log"
	"provenance/internal/infra/notification"
	"provenance/internal/infra/persistence/postgres"
	"provenance/internal/infra/pubsub"
	"provenance/internal/infra/qrcode"
	"provenance/internal/infra/similarity"
	"provenance/internal/infra/storage"
	"provenance/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewRecordRepository,
			postgres.NewVerificationRepository,
			postgres.NewUserRepository,
			postgres.NewNonceRepository,
			postgres.NewSessionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewWalletVerifier,
			embedding.NewEmbeddingService,
			imaging.NewFingerprintExtractor,
			imaging.NewWatermarkEmbedder,
			similarity.New,
			storage.New,
			ledger.New,
			qrcode.NewQRCodeServiceFromConfig,
			// The API owns the websocket hub; lifecycle events raised here go straight to it
			notification.NewHub,
			notification.NewNotifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthenticationService,
			impl.NewLifecycleService,
			impl.NewRecordService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewImageHandler,
			handler.NewRecordHandler,
			handler.NewSessionHandler,
			handler.NewRealtimeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
