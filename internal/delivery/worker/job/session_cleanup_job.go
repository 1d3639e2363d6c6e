package job

import (
	"context"
	"log/slog"
	"time"

	"provenance/internal/delivery"
	"provenance/internal/usecase"

	"go.uber.org/fx"
)

const sessionCleanupInterval = time.Hour

// SessionCleanupJobParams holds dependencies for the session cleanup job, injected by Fx.
type SessionCleanupJobParams struct {
	fx.In

	Lc        fx.Lifecycle
	Logger    *slog.Logger
	SessionUC usecase.SessionUsecase
}

// NewSessionCleanupJob removes expired nonces and sessions hourly.
func NewSessionCleanupJob(params SessionCleanupJobParams) delivery.Delivery {
	return newPeriodicJob(params.Lc, "session-cleanup", sessionCleanupInterval, params.Logger, func(ctx context.Context) error {
		removed, err := params.SessionUC.CleanupExpired(ctx)
		if err != nil {
			return err
		}

		if removed > 0 {
			params.Logger.Info("Expired sessions removed", slog.Int64("removed", removed))
		}

		return nil
	})
}
