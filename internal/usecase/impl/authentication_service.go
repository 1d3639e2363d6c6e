// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"provenance/config"
	deliverycontext "provenance/internal/delivery/context"
	"provenance/internal/domain/constants"
	"provenance/internal/domain/entity"
	domainerrors "provenance/internal/domain/errors"
	"provenance/internal/domain/repository"
	"provenance/internal/domain/service"
	"provenance/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const defaultMatchPageSize = 50

// authenticationService implements the AuthenticationUsecase interface.
type authenticationService struct {
	txManager  repository.TransactionManager
	recordRepo repository.RecordRepository
	extractor  service.FingerprintExtractor
	watermark  service.WatermarkEmbedder
	index      service.SimilarityIndex
	storage    service.ContentStorage
	publisher  service.TaskPublisher
	notifier   service.Notifier
	threshold  float64
	limit      int
	maxBytes   int64
	now        func() time.Time
	logger     *slog.Logger
}

// AuthenticationServiceParams holds dependencies for AuthenticationService, injected by Fx.
type AuthenticationServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RecordRepo repository.RecordRepository
	Extractor  service.FingerprintExtractor
	Watermark  service.WatermarkEmbedder
	Index      service.SimilarityIndex
	Storage    service.ContentStorage
	Publisher  service.TaskPublisher
	Notifier   service.Notifier
	Config     *config.Config
	Logger     *slog.Logger
}

// NewAuthenticationService is the constructor for authenticationService.
func NewAuthenticationService(params AuthenticationServiceParams) usecase.AuthenticationUsecase {
	return &authenticationService{
		txManager:  params.TxManager,
		recordRepo: params.RecordRepo,
		extractor:  params.Extractor,
		watermark:  params.Watermark,
		index:      params.Index,
		storage:    params.Storage,
		publisher:  params.Publisher,
		notifier:   params.Notifier,
		threshold:  params.Config.Similarity.Threshold,
		limit:      params.Config.Similarity.Limit,
		maxBytes:   params.Config.Upload.MaxBytes,
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *authenticationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit registers a distinct image. Nothing is persisted unless every step before record creation succeeds.
func (srv *authenticationService) Submit(ctx context.Context, input *usecase.SubmitInput) (*entity.AuthenticatedRecord, error) {
	if err := srv.validateImage(input.Image, input.ContentType); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Submitting image for authentication",
		slog.String("owner_id", input.OwnerID.String()),
		slog.Int("size", len(input.Image)),
	)

	// 1. Fingerprint and watermark independently
	var (
		fingerprint *service.Fingerprint
		watermarked []byte
	)
	payload := &entity.WatermarkPayload{
		Creator:      input.OwnerID.String(),
		Timestamp:    srv.now().UTC(),
		Nonce:        strings.ReplaceAll(uuid.NewString(), "-", ""),
		OriginalHash: entity.ContentHash(input.Image),
		Version:      constants.WatermarkVersion,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		fp, err := srv.extractor.Extract(groupCtx, input.Image, input.ContentType)
		if err != nil {
			return err
		}
		fingerprint = fp

		return nil
	})
	group.Go(func() error {
		marked, err := srv.watermark.Embed(input.Image, payload)
		if err != nil {
			return err
		}
		watermarked = marked

		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, errors.WithStack(err)
	}

	// 2. Dedup pass
	matches, err := srv.index.Query(ctx, fingerprint.Vector, 1, 0, srv.threshold)
	if err != nil {
		return nil, domainerrors.NewExternalCallError("similarity-index", err)
	}
	if len(matches) > 0 {
		srv.log(ctx).Info("Rejected duplicate submission",
			slog.String("match_id", matches[0].ID),
			slog.Float64("score", matches[0].Score),
		)

		return nil, domainerrors.NewDuplicateContentError(matches[0].ID, matches[0].Score)
	}

	// 3. Durable writes
	originalRef, err := srv.storage.Upload(ctx, constants.StoragePrefixOriginal, input.Image, input.ContentType)
	if err != nil {
		return nil, domainerrors.NewExternalCallError("storage", err)
	}
	watermarkedRef, err := srv.storage.Upload(ctx, constants.StoragePrefixWatermarked, watermarked, "image/png")
	if err != nil {
		return nil, domainerrors.NewExternalCallError("storage", err)
	}

	now := srv.now().UTC()
	record := &entity.AuthenticatedRecord{
		ID:             uuid.New(),
		OwnerID:        input.OwnerID,
		SessionID:      input.SessionID,
		OriginalRef:    originalRef,
		WatermarkedRef: watermarkedRef,
		ContentHash:    fingerprint.ContentHash,
		PerceptualHash: fingerprint.PerceptualHash,
		Fingerprint:    entity.Fingerprint{ID: uuid.NewString()},
		Status:         entity.RecordStatusUploaded,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = srv.index.Upsert(ctx, record.Fingerprint.ID, fingerprint.Vector, map[string]any{
		"record_id":    record.ID.String(),
		"owner_id":     record.OwnerID.String(),
		"content_hash": record.ContentHash,
	})
	if err != nil {
		return nil, domainerrors.NewExternalCallError("similarity-index", err)
	}

	if err := srv.recordRepo.Create(ctx, record); err != nil {
		if delErr := srv.index.Delete(ctx, record.Fingerprint.ID); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned fingerprint",
				slog.String("fingerprint_id", record.Fingerprint.ID),
				slog.Any("error", delErr),
			)
		}
		if errors.Is(err, repository.ErrRecordAlreadyExists) {
			return nil, domainerrors.NewDuplicateContentError("", 1)
		}

		return nil, errors.Wrap(err, "failed to create record")
	}

	srv.log(ctx).Info("Image authenticated",
		slog.String("record_id", record.ID.String()),
		slog.String("fingerprint_id", record.Fingerprint.ID),
	)

	// 4. Hand off to the lifecycle worker
	if err := enqueue(ctx, srv.publisher, record.ID, entity.ActionMint); err != nil {
		srv.log(ctx).Error("Failed to enqueue mint, the owner can request it again",
			slog.String("record_id", record.ID.String()),
			slog.Any("error", err),
		)
	}
	notify(ctx, srv.notifier, srv.log(ctx), record, entity.EventUploaded, map[string]string{
		"watermarked_ref": record.WatermarkedRef,
	})

	return record, nil
}

// Verify checks a query image against the corpus and records every match at or above the threshold.
func (srv *authenticationService) Verify(ctx context.Context, input *usecase.VerifyInput) (*usecase.VerifyResult, error) {
	if err := srv.validateImage(input.Image, input.ContentType); err != nil {
		return nil, err
	}

	var (
		fingerprint *service.Fingerprint
		payload     *entity.WatermarkPayload
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		fp, err := srv.extractor.Extract(groupCtx, input.Image, input.ContentType)
		if err != nil {
			return err
		}
		fingerprint = fp

		return nil
	})
	group.Go(func() error {
		extracted, err := srv.watermark.Extract(input.Image)
		if err != nil {
			if !errors.Is(err, service.ErrWatermarkNotFound) {
				srv.log(ctx).Debug("Watermark extraction failed", slog.Any("error", err))
			}

			return nil
		}
		payload = extracted

		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, errors.WithStack(err)
	}

	matches, err := srv.allMatches(ctx, fingerprint.Vector)
	if err != nil {
		return nil, domainerrors.NewExternalCallError("similarity-index", err)
	}

	result := &usecase.VerifyResult{
		Matches:   []*usecase.VerificationMatch{},
		Watermark: payload,
	}
	if len(matches) == 0 {
		return result, nil
	}

	fingerprintIDs := make([]string, 0, len(matches))
	for _, match := range matches {
		fingerprintIDs = append(fingerprintIDs, match.ID)
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recordRepo := repoFactory.NewRecordRepository()
		verificationRepo := repoFactory.NewVerificationRepository()

		records, err := recordRepo.FindByFingerprintIDs(ctx, fingerprintIDs)
		if err != nil {
			return errors.Wrap(err, "failed to find matched records")
		}

		byFingerprint := make(map[string]*entity.AuthenticatedRecord, len(records))
		for _, record := range records {
			byFingerprint[record.Fingerprint.ID] = record
		}

		now := srv.now().UTC()
		for _, match := range matches {
			record, ok := byFingerprint[match.ID]
			if !ok {
				continue
			}

			verification := &entity.Verification{
				ID:         uuid.New(),
				ImageID:    record.ID,
				VerifierID: input.VerifierID,
				Score:      match.Score,
				CreatedAt:  now,
			}
			if err := verificationRepo.Create(ctx, verification); err != nil {
				return errors.Wrap(err, "failed to record verification")
			}

			result.Matches = append(result.Matches, &usecase.VerificationMatch{Record: record, Score: match.Score})
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to record verifications", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify image")
	}

	result.Found = len(result.Matches) > 0
	srv.log(ctx).Info("Verification completed",
		slog.Int("candidates", len(matches)),
		slog.Int("matches", len(result.Matches)),
	)

	return result, nil
}

// allMatches pages through the index until a short page; the configured limit is only a page size.
func (srv *authenticationService) allMatches(ctx context.Context, vector []float32) ([]service.SimilarityMatch, error) {
	pageSize := srv.limit
	if pageSize <= 0 {
		pageSize = defaultMatchPageSize
	}

	var matches []service.SimilarityMatch
	for offset := 0; ; offset += pageSize {
		page, err := srv.index.Query(ctx, vector, pageSize, offset, srv.threshold)
		if err != nil {
			return nil, err
		}
		matches = append(matches, page...)
		if len(page) < pageSize {
			return matches, nil
		}
	}
}

func (srv *authenticationService) validateImage(image []byte, contentType string) error {
	if len(image) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("image is required")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return domainerrors.ErrUnsupportedMediaType.WithDetails(contentType)
	}
	if srv.maxBytes > 0 && int64(len(image)) > srv.maxBytes {
		return domainerrors.ErrPayloadTooLarge
	}

	return nil
}
