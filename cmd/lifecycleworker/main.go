package main

import (
	"context"
	"log/slog"
	"os"

	"provenance/config"
	"provenance/internal/delivery"
	"provenance/internal/delivery/worker"
	"provenance/internal/delivery/worker/handler"
	"provenance/internal/delivery/worker/job"
	"provenance/internal/infra/auth"
	"provenance/internal/infra/ledger"
	logs "provenance/internal/infra/log"
	"provenance/internal/infra/notification"
	"provenance/internal/infra/persistence/postgres"
	"provenance/internal/infra/pubsub"
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
		injectHandler(),
		injectDelivery(),
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
		// Mint enqueues the soft listing
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewRecordRepository,
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
			similarity.New,
			storage.New,
			ledger.New,
			// No hub in this process; events are relayed to the API and fanned out to Firebase
			notification.NewNotifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLifecycleService,
			impl.NewReconciliationService,
			impl.NewSessionService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				job.NewReconciliationJob,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				job.NewSessionCleanupJob,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
