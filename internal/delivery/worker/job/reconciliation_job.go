package job

import (
	"context"
	"log/slog"

	"provenance/config"
	"provenance/internal/delivery"
	"provenance/internal/usecase"

	"go.uber.org/fx"
)

// ReconciliationJobParams holds dependencies for the reconciliation job, injected by Fx.
type ReconciliationJobParams struct {
	fx.In

	Lc               fx.Lifecycle
	Config           *config.Config
	Logger           *slog.Logger
	ReconciliationUC usecase.ReconciliationUsecase
}

// NewReconciliationJob backs up fingerprint vectors of ledger-confirmed records on a fixed interval.
func NewReconciliationJob(params ReconciliationJobParams) delivery.Delivery {
	cfg := params.Config.Reconciliation
	if !cfg.Enabled {
		return disabled{}
	}

	return newPeriodicJob(params.Lc, "reconciliation", cfg.Interval, params.Logger, func(ctx context.Context) error {
		report, err := params.ReconciliationUC.RunOnce(ctx)
		if err != nil {
			return err
		}

		if report.Scanned > 0 {
			params.Logger.Info("Reconciliation sweep finished",
				slog.Int("scanned", report.Scanned),
				slog.Int("repaired", report.Repaired),
				slog.Int("failed", report.Failed),
			)
		}

		return nil
	})
}

// disabled is a no-op job
type disabled struct{}

func (disabled) Serve(context.Context) error { return nil }
