package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"provenance/config"
	"provenance/internal/domain/constants"
	"provenance/internal/domain/entity"
	"provenance/internal/domain/repository"
	"provenance/internal/domain/service"
	"provenance/internal/usecase"

	"github.com/pkg/errors"
	"github.com/sethvargo/go-retry"
	"go.uber.org/fx"
)

// reconciliationService implements the ReconciliationUsecase interface.
type reconciliationService struct {
	recordRepo  repository.RecordRepository
	index       service.SimilarityIndex
	storage     service.ContentStorage
	notifier    service.Notifier
	batchSize   int
	maxAttempts int
	retryPolicy func() retry.Backoff
	logger      *slog.Logger
}

// ReconciliationServiceParams holds dependencies for ReconciliationService, injected by Fx.
type ReconciliationServiceParams struct {
	fx.In

	RecordRepo repository.RecordRepository
	Index      service.SimilarityIndex
	Storage    service.ContentStorage
	Notifier   service.Notifier
	Config     *config.Config
	Logger     *slog.Logger
}

// NewReconciliationService is the constructor for reconciliationService.
func NewReconciliationService(params ReconciliationServiceParams) usecase.ReconciliationUsecase {
	cfg := params.Config.Reconciliation
	maxAttempts := max(cfg.MaxAttempts, 1)
	backoff := max(cfg.Backoff, time.Millisecond)

	return &reconciliationService{
		recordRepo:  params.RecordRepo,
		index:       params.Index,
		storage:     params.Storage,
		notifier:    params.Notifier,
		batchSize:   cfg.BatchSize,
		maxAttempts: maxAttempts,
		retryPolicy: func() retry.Backoff {
			return retry.WithMaxRetries(uint64(maxAttempts-1), retry.NewConstant(backoff))
		},
		logger: params.Logger,
	}
}

// fingerprintBackup is the durable copy of a vector
type fingerprintBackup struct {
	ID        string    `json:"id"`
	RecordID  string    `json:"record_id"`
	Vector    []float32 `json:"vector"`
	CreatedAt time.Time `json:"created_at"`
}

// RunOnce backs up the vectors of one batch of ledger-confirmed records.
func (srv *reconciliationService) RunOnce(ctx context.Context) (*usecase.ReconciliationReport, error) {
	records, err := srv.recordRepo.FindMissingFingerprintBackup(ctx, srv.batchSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find records missing a fingerprint backup")
	}

	report := &usecase.ReconciliationReport{Scanned: len(records)}
	for _, record := range records {
		if ctx.Err() != nil {
			return report, errors.WithStack(ctx.Err())
		}

		written, err := srv.backupWithRetry(ctx, record)
		if err != nil {
			report.Failed++
			srv.logger.Error("[Reconciler] Fingerprint backup failed",
				slog.String("record_id", record.ID.String()),
				slog.Int("attempts", srv.maxAttempts),
				slog.Any("error", err),
			)

			continue
		}
		if !written {
			continue
		}

		report.Repaired++
		notify(ctx, srv.notifier, srv.logger, record, entity.EventBlob, map[string]string{
			"blob_ref": record.Fingerprint.BlobRef,
		})
	}

	if report.Scanned > 0 {
		srv.logger.Info("[Reconciler] Sweep completed",
			slog.Int("scanned", report.Scanned),
			slog.Int("repaired", report.Repaired),
			slog.Int("failed", report.Failed),
		)
	}

	return report, nil
}

func (srv *reconciliationService) backupWithRetry(ctx context.Context, record *entity.AuthenticatedRecord) (bool, error) {
	attempt := 0

	return retry.DoValue(ctx, srv.retryPolicy(), func(ctx context.Context) (bool, error) {
		attempt++

		written, err := srv.backup(ctx, record)
		if err != nil {
			srv.logger.Warn("[Reconciler] Backup attempt failed",
				slog.String("record_id", record.ID.String()),
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)

			return false, retry.RetryableError(err)
		}

		return written, nil
	})
}

func (srv *reconciliationService) backup(ctx context.Context, record *entity.AuthenticatedRecord) (bool, error) {
	vectors, err := srv.index.Retrieve(ctx, []string{record.Fingerprint.ID})
	if err != nil {
		return false, errors.Wrap(err, "failed to retrieve vector")
	}
	vector, ok := vectors[record.Fingerprint.ID]
	if !ok {
		return false, errors.Errorf("fingerprint %s not found in index", record.Fingerprint.ID)
	}

	data, err := json.Marshal(&fingerprintBackup{
		ID:        record.Fingerprint.ID,
		RecordID:  record.ID.String(),
		Vector:    vector,
		CreatedAt: record.CreatedAt,
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to encode vector backup")
	}

	blobRef, err := srv.storage.Upload(ctx, constants.StoragePrefixFingerprint, data, "application/json")
	if err != nil {
		return false, errors.Wrap(err, "failed to upload vector backup")
	}

	written, err := srv.recordRepo.SetFingerprintBlobRef(ctx, record.ID, blobRef)
	if err != nil {
		return false, errors.Wrap(err, "failed to store backup reference")
	}
	if written {
		record.Fingerprint.BlobRef = blobRef
	}

	return written, nil
}
