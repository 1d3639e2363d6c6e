package impl

import (
	"context"
	"encoding/json"
	"log/slog"
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
)

// lifecycleService implements the LifecycleUsecase interface.
// Every step claims the record first so concurrent or repeated deliveries of a task run it at most once.
type lifecycleService struct {
	recordRepo repository.RecordRepository
	userRepo   repository.UserRepository
	index      service.SimilarityIndex
	storage    service.ContentStorage
	ledger     service.Ledger
	publisher  service.TaskPublisher
	notifier   service.Notifier
	claimLease time.Duration
	minBid     uint64
	expiry     time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

// LifecycleServiceParams holds dependencies for LifecycleService, injected by Fx.
type LifecycleServiceParams struct {
	fx.In

	RecordRepo repository.RecordRepository
	UserRepo   repository.UserRepository
	Index      service.SimilarityIndex
	Storage    service.ContentStorage
	Ledger     service.Ledger
	Publisher  service.TaskPublisher
	Notifier   service.Notifier
	Config     *config.Config
	Logger     *slog.Logger
}

// NewLifecycleService is the constructor for lifecycleService.
func NewLifecycleService(params LifecycleServiceParams) usecase.LifecycleUsecase {
	return &lifecycleService{
		recordRepo: params.RecordRepo,
		userRepo:   params.UserRepo,
		index:      params.Index,
		storage:    params.Storage,
		ledger:     params.Ledger,
		publisher:  params.Publisher,
		notifier:   params.Notifier,
		claimLease: params.Config.Lifecycle.ClaimLease,
		minBid:     params.Config.Listing.MinBid,
		expiry:     params.Config.Listing.Expiry,
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *lifecycleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestMint enqueues the mint step for an owned record.
func (srv *lifecycleService) RequestMint(ctx context.Context, identity *entity.Identity, recordID uuid.UUID) error {
	return srv.request(ctx, identity, recordID, entity.ActionMint)
}

// RequestSoftList enqueues the soft-list step for an owned record.
func (srv *lifecycleService) RequestSoftList(ctx context.Context, identity *entity.Identity, recordID uuid.UUID) error {
	return srv.request(ctx, identity, recordID, entity.ActionSoftList)
}

func (srv *lifecycleService) request(ctx context.Context, identity *entity.Identity, recordID uuid.UUID, action entity.LifecycleAction) error {
	record, err := srv.findOwned(ctx, identity, recordID)
	if err != nil {
		return err
	}

	if !record.CanStart(action) {
		return domainerrors.NewPreconditionError(recordID.String(), string(action), string(record.Status))
	}

	if err := enqueue(ctx, srv.publisher, recordID, action); err != nil {
		return errors.Wrapf(err, "failed to enqueue %s", action)
	}

	srv.log(ctx).Info("Lifecycle step accepted",
		slog.String("record_id", recordID.String()),
		slog.String("action", string(action)),
	)

	return nil
}

// Confirm records the external confirmation of a soft listing.
func (srv *lifecycleService) Confirm(ctx context.Context, identity *entity.Identity, recordID uuid.UUID) (*entity.AuthenticatedRecord, error) {
	err := srv.recordRepo.Confirm(ctx, recordID, identity.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrClaimRejected) {
			return nil, errors.Wrap(err, "failed to confirm listing")
		}

		record, findErr := srv.findOwned(ctx, identity, recordID)
		if findErr != nil {
			return nil, findErr
		}

		return nil, domainerrors.NewPreconditionError(recordID.String(), "confirm", string(record.Status))
	}

	record, err := srv.recordRepo.FindByID(ctx, recordID, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload record")
	}

	srv.log(ctx).Info("Listing confirmed", slog.String("record_id", recordID.String()))
	notify(ctx, srv.notifier, srv.log(ctx), record, entity.EventListed, map[string]string{
		"listing_id": record.Ledger.ListingID,
	})

	return record, nil
}

// Redrive re-enqueues the step that failed. The step itself re-checks its precondition.
func (srv *lifecycleService) Redrive(ctx context.Context, identity *entity.Identity, recordID uuid.UUID) (entity.LifecycleAction, error) {
	record, err := srv.findOwned(ctx, identity, recordID)
	if err != nil {
		return "", err
	}

	action := record.FailedAction
	if record.Status != entity.RecordStatusError || !action.IsValid() || !record.CanStart(action) {
		return "", domainerrors.NewPreconditionError(recordID.String(), "redrive", string(record.Status))
	}

	if err := enqueue(ctx, srv.publisher, recordID, action); err != nil {
		return "", errors.Wrapf(err, "failed to enqueue %s", action)
	}

	srv.log(ctx).Info("Failed step redriven",
		slog.String("record_id", recordID.String()),
		slog.String("action", string(action)),
	)

	return action, nil
}

// ExecuteTask dispatches a queued step.
func (srv *lifecycleService) ExecuteTask(ctx context.Context, task *service.LifecycleTask) error {
	recordID, err := uuid.Parse(task.RecordID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid record id in task")
	}

	switch task.Action {
	case entity.ActionMint:
		_, err = srv.Mint(ctx, recordID)
	case entity.ActionSoftList:
		_, err = srv.SoftList(ctx, recordID)
	default:
		return domainerrors.ErrValidationFailed.WrapMessage("unknown lifecycle action " + string(task.Action))
	}

	return err
}

// Mint registers the record on the ledger and enqueues the soft listing.
func (srv *lifecycleService) Mint(ctx context.Context, recordID uuid.UUID) (*entity.AuthenticatedRecord, error) {
	record, err := srv.claim(ctx, recordID, entity.ActionMint)
	if err != nil {
		return nil, err
	}

	owner, err := srv.userRepo.FindByID(ctx, record.OwnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find record owner")
	}

	// 1. Vector from the index, for the fingerprint digest
	vectors, err := srv.index.Retrieve(ctx, []string{record.Fingerprint.ID})
	if err != nil {
		return nil, srv.fail(ctx, record, entity.ActionMint, domainerrors.NewExternalCallError("similarity-index", err))
	}
	vector, ok := vectors[record.Fingerprint.ID]
	if !ok {
		return nil, srv.fail(ctx, record, entity.ActionMint, domainerrors.NewExternalCallError("similarity-index",
			errors.Errorf("fingerprint %s not found", record.Fingerprint.ID)))
	}

	// 2. Metadata document
	document := buildMetadataDocument(record, vector, srv.storage.URL, srv.now().UTC())
	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode metadata document")
	}
	metadataRef, err := srv.storage.Upload(ctx, constants.StoragePrefixMetadata, data, "application/json")
	if err != nil {
		return nil, srv.fail(ctx, record, entity.ActionMint, domainerrors.NewExternalCallError("storage", err))
	}

	// 3. Ledger
	receipt, err := srv.ledger.Mint(ctx, &service.MintRequest{
		RecordID:     record.ID.String(),
		Owner:        owner.WalletAddress,
		ImageRef:     record.OriginalRef,
		WatermarkRef: record.WatermarkedRef,
		MetadataRef:  metadataRef,
		ContentHash:  record.ContentHash,
	})
	if err != nil {
		return nil, srv.fail(ctx, record, entity.ActionMint, domainerrors.NewExternalCallError("ledger", err))
	}

	// The token exists now; record it even if the caller has gone away.
	result := repository.MintResult{TxHash: receipt.Digest, TokenID: receipt.ID, MetadataRef: metadataRef}
	if err := srv.recordRepo.CompleteMint(context.WithoutCancel(ctx), record.ID, result); err != nil {
		srv.log(ctx).Error("Token minted but the record was not updated",
			slog.String("record_id", record.ID.String()),
			slog.String("token_id", receipt.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to complete mint")
	}

	record.Status = entity.RecordStatusMinted
	record.MetadataRef = metadataRef
	record.Ledger.TxHash = receipt.Digest
	record.Ledger.TokenID = receipt.ID
	srv.released(record)

	srv.log(ctx).Info("Record minted",
		slog.String("record_id", record.ID.String()),
		slog.String("token_id", receipt.ID),
	)

	if err := enqueue(ctx, srv.publisher, record.ID, entity.ActionSoftList); err != nil {
		srv.log(ctx).Error("Failed to enqueue soft-list",
			slog.String("record_id", record.ID.String()),
			slog.Any("error", err),
		)
	}
	notify(ctx, srv.notifier, srv.log(ctx), record, entity.EventMinted, map[string]string{
		"token_id": receipt.ID,
		"tx_hash":  receipt.Digest,
	})

	return record, nil
}

// SoftList opens a marketplace listing with the configured policy.
func (srv *lifecycleService) SoftList(ctx context.Context, recordID uuid.UUID) (*entity.AuthenticatedRecord, error) {
	record, err := srv.claim(ctx, recordID, entity.ActionSoftList)
	if err != nil {
		return nil, err
	}

	owner, err := srv.userRepo.FindByID(ctx, record.OwnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find record owner")
	}

	receipt, err := srv.ledger.CreateListing(ctx, &service.ListingRequest{
		TokenID:   record.Ledger.TokenID,
		Owner:     owner.WalletAddress,
		MinBid:    srv.minBid,
		ExpiresAt: srv.now().UTC().Add(srv.expiry),
	})
	if err != nil {
		return nil, srv.fail(ctx, record, entity.ActionSoftList, domainerrors.NewExternalCallError("ledger", err))
	}

	result := repository.ListingResult{ListingID: receipt.ID, TxHash: receipt.Digest}
	if err := srv.recordRepo.CompleteSoftList(context.WithoutCancel(ctx), record.ID, result); err != nil {
		srv.log(ctx).Error("Listing created but the record was not updated",
			slog.String("record_id", record.ID.String()),
			slog.String("listing_id", receipt.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to complete soft-list")
	}

	record.Status = entity.RecordStatusSoftListed
	record.Ledger.ListingID = receipt.ID
	record.Ledger.ListingTxHash = receipt.Digest
	srv.released(record)

	srv.log(ctx).Info("Record soft-listed",
		slog.String("record_id", record.ID.String()),
		slog.String("listing_id", receipt.ID),
	)
	notify(ctx, srv.notifier, srv.log(ctx), record, entity.EventSoftListed, map[string]string{
		"listing_id": receipt.ID,
		"tx_hash":    receipt.Digest,
	})

	return record, nil
}

// claim takes the record for action. A rejected claim is told apart as missing, busy or out of order.
func (srv *lifecycleService) claim(ctx context.Context, recordID uuid.UUID, action entity.LifecycleAction) (*entity.AuthenticatedRecord, error) {
	record, err := srv.recordRepo.Claim(ctx, recordID, action, srv.claimLease)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, repository.ErrClaimRejected) {
		return nil, errors.Wrap(err, "failed to claim record")
	}

	current, err := srv.recordRepo.FindByID(ctx, recordID, false)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, domainerrors.ErrRecordNotFound.WrapMessage(recordID.String())
		}

		return nil, errors.Wrap(err, "failed to find record")
	}

	if current.CanStart(action) {
		return nil, domainerrors.ErrRecordBusy.WrapMessage(string(current.PendingAction) + " in progress")
	}

	return nil, domainerrors.NewPreconditionError(recordID.String(), string(action), string(current.Status))
}

// fail moves the claimed record to error. The cause is returned unless the store write itself failed.
func (srv *lifecycleService) fail(ctx context.Context, record *entity.AuthenticatedRecord, action entity.LifecycleAction, cause *domainerrors.ExternalCallError) error {
	srv.log(ctx).Error("Lifecycle step failed",
		slog.String("record_id", record.ID.String()),
		slog.String("action", string(action)),
		slog.Any("error", cause),
	)

	if err := srv.recordRepo.MarkFailed(context.WithoutCancel(ctx), record.ID, action, cause.Error()); err != nil {
		return errors.Wrap(err, "failed to mark record as failed")
	}

	record.Status = entity.RecordStatusError
	record.FailedAction = action
	record.LastError = cause.Error()
	srv.released(record)

	notify(ctx, srv.notifier, srv.log(ctx), record, entity.EventError, map[string]string{
		"action": string(action),
		"error":  cause.Error(),
	})

	return cause
}

func (srv *lifecycleService) released(record *entity.AuthenticatedRecord) {
	record.PendingAction = ""
	record.PendingSince = nil
	record.UpdatedAt = srv.now().UTC()
	if record.Status != entity.RecordStatusError {
		record.FailedAction = ""
		record.LastError = ""
	}
}

func (srv *lifecycleService) findOwned(ctx context.Context, identity *entity.Identity, recordID uuid.UUID) (*entity.AuthenticatedRecord, error) {
	record, err := srv.recordRepo.FindByID(ctx, recordID, false)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, domainerrors.ErrRecordNotFound.WrapMessage(recordID.String())
		}

		return nil, errors.Wrap(err, "failed to find record")
	}

	if record.OwnerID != identity.UserID {
		return nil, domainerrors.ErrForbidden.WrapMessage("record does not belong to caller")
	}

	return record, nil
}

// enqueue publishes a lifecycle task carrying the request id for tracing
func enqueue(ctx context.Context, publisher service.TaskPublisher, recordID uuid.UUID, action entity.LifecycleAction) error {
	return publisher.PublishLifecycleTask(ctx, &service.LifecycleTask{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		RecordID:   recordID.String(),
		Action:     action,
		EnqueuedAt: time.Now().UTC(),
	})
}

// notify is best effort; a lost event never fails the step that produced it
func notify(ctx context.Context, notifier service.Notifier, logger *slog.Logger, record *entity.AuthenticatedRecord, eventType entity.EventType, data map[string]string) {
	if record.SessionID == "" {
		return
	}

	if err := notifier.Notify(ctx, record.SessionID, entity.NewLifecycleEvent(eventType, record, data)); err != nil {
		logger.Warn("Failed to notify lifecycle event",
			slog.String("record_id", record.ID.String()),
			slog.String("event", string(eventType)),
			slog.Any("error", err),
		)
	}
}
