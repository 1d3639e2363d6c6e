package postgres

import (
	"context"
	"time"

	"provenance/internal/domain/entity"
	domainerrors "provenance/internal/domain/errors"
	"provenance/internal/domain/repository"
	"provenance/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const defaultListLimit = 20

// recordRepository implements repository.RecordRepository using GORM.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *gorm.DB) repository.RecordRepository {
	return &recordRepository{db: db}
}

// Create inserts a new record. Uniqueness on original_ref and fingerprint_id backs the similarity gate.
func (repo *recordRepository) Create(ctx context.Context, record *entity.AuthenticatedRecord) error {
	recordM := fromRecordDomain(record)

	if err := repo.db.WithContext(ctx).Omit("Verifications").Create(recordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrRecordAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("record owner does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid record status")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create record")
	}

	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// FindByID retrieves a record, optionally with its verification history in insertion order.
func (repo *recordRepository) FindByID(ctx context.Context, id uuid.UUID, withVerifications bool) (*entity.AuthenticatedRecord, error) {
	return findRecord(repo.db.WithContext(ctx), id, withVerifications)
}

func findRecord(query *gorm.DB, id uuid.UUID, withVerifications bool) (*entity.AuthenticatedRecord, error) {
	var recordM model.AuthenticatedRecordModel

	if withVerifications {
		query = query.Preload("Verifications", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		})
	}

	if err := query.Where("id = ?", id).First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find record by id")
	}

	return toRecordDomain(&recordM), nil
}

// FindByFingerprintIDs returns the records owning the given vector ids.
func (repo *recordRepository) FindByFingerprintIDs(ctx context.Context, fingerprintIDs []string) ([]*entity.AuthenticatedRecord, error) {
	if len(fingerprintIDs) == 0 {
		return []*entity.AuthenticatedRecord{}, nil
	}

	var recordMs []*model.AuthenticatedRecordModel
	if err := repo.db.WithContext(ctx).Where("fingerprint_id IN ?", fingerprintIDs).Find(&recordMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find records by fingerprint ids")
	}

	return toRecordDomainList(recordMs), nil
}

// List returns one page of records, newest first, and the total number of matches.
func (repo *recordRepository) List(ctx context.Context, filter repository.RecordFilter) ([]*entity.AuthenticatedRecord, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.AuthenticatedRecordModel{})
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count records")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	var recordMs []*model.AuthenticatedRecordModel
	if err := query.Order("created_at DESC").Limit(limit).Offset(filter.Offset).Find(&recordMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list records")
	}

	return toRecordDomainList(recordMs), total, nil
}

// Claim is the compare-and-set guarding every lifecycle step.
func (repo *recordRepository) Claim(
	ctx context.Context,
	id uuid.UUID,
	action entity.LifecycleAction,
	lease time.Duration,
) (*entity.AuthenticatedRecord, error) {
	now := time.Now().UTC()

	query := repo.db.WithContext(ctx).
		Model(&model.AuthenticatedRecordModel{}).
		Where("id = ?", id).
		Where("status IN ?", statusValues(action.SourceStatuses())).
		Where("(pending_action = '' OR pending_since IS NULL OR pending_since < ?)", now.Add(-lease))

	switch action {
	case entity.ActionMint:
		query = query.Where("token_id = ''")
	case entity.ActionSoftList:
		query = query.Where("token_id <> '' AND listing_id = ''")
	default:
		return nil, errors.Errorf("unknown lifecycle action %q", action)
	}

	result := query.Updates(map[string]any{
		"pending_action": string(action),
		"pending_since":  now,
		"updated_at":     now,
	})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim record")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrClaimRejected
	}

	// Replicas may not have seen the claim yet.
	return findRecord(repo.db.WithContext(ctx).Clauses(dbresolver.Write), id, false)
}

// CompleteMint stores the ledger result of a claimed mint.
func (repo *recordRepository) CompleteMint(ctx context.Context, id uuid.UUID, result repository.MintResult) error {
	return repo.completeClaim(ctx, id, entity.ActionMint, map[string]any{
		"tx_hash":      result.TxHash,
		"token_id":     result.TokenID,
		"metadata_ref": result.MetadataRef,
		"status":       string(entity.RecordStatusMinted),
	})
}

// CompleteSoftList stores the listing of a claimed soft-list.
func (repo *recordRepository) CompleteSoftList(ctx context.Context, id uuid.UUID, result repository.ListingResult) error {
	return repo.completeClaim(ctx, id, entity.ActionSoftList, map[string]any{
		"listing_id":      result.ListingID,
		"listing_tx_hash": result.TxHash,
		"status":          string(entity.RecordStatusSoftListed),
	})
}

// MarkFailed moves a claimed record to error.
func (repo *recordRepository) MarkFailed(ctx context.Context, id uuid.UUID, action entity.LifecycleAction, reason string) error {
	return repo.completeClaim(ctx, id, action, map[string]any{
		"status":        string(entity.RecordStatusError),
		"failed_action": string(action),
		"last_error":    reason,
	})
}

func (repo *recordRepository) completeClaim(ctx context.Context, id uuid.UUID, action entity.LifecycleAction, values map[string]any) error {
	values["pending_action"] = ""
	values["pending_since"] = nil
	values["updated_at"] = time.Now().UTC()
	if _, ok := values["failed_action"]; !ok {
		values["failed_action"] = ""
		values["last_error"] = ""
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AuthenticatedRecordModel{}).
		Where("id = ? AND pending_action = ?", id, string(action)).
		Updates(values)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to complete lifecycle step")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClaimRejected
	}

	return nil
}

// Confirm moves a soft-listed record owned by ownerID to listed.
func (repo *recordRepository) Confirm(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuthenticatedRecordModel{}).
		Where("id = ? AND owner_id = ? AND status = ? AND pending_action = ''", id, ownerID, string(entity.RecordStatusSoftListed)).
		Updates(map[string]any{
			"status":     string(entity.RecordStatusListed),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to confirm listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClaimRejected
	}

	return nil
}

// FindMissingFingerprintBackup selects the oldest ledger-confirmed records lacking a vector backup.
func (repo *recordRepository) FindMissingFingerprintBackup(ctx context.Context, limit int) ([]*entity.AuthenticatedRecord, error) {
	var recordMs []*model.AuthenticatedRecordModel

	err := repo.db.WithContext(ctx).
		Where("token_id <> '' AND fingerprint_id <> '' AND fingerprint_blob_ref = ''").
		Order("updated_at ASC").
		Limit(limit).
		Find(&recordMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find records missing fingerprint backup")
	}

	return toRecordDomainList(recordMs), nil
}

// SetFingerprintBlobRef writes the backup reference only while none is stored.
func (repo *recordRepository) SetFingerprintBlobRef(ctx context.Context, id uuid.UUID, blobRef string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AuthenticatedRecordModel{}).
		Where("id = ? AND fingerprint_blob_ref = ''", id).
		Update("fingerprint_blob_ref", blobRef)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to set fingerprint blob ref")
	}

	return result.RowsAffected > 0, nil
}

// verificationRepository implements repository.VerificationRepository using GORM.
type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository creates a new verification repository
func NewVerificationRepository(db *gorm.DB) repository.VerificationRepository {
	return &verificationRepository{db: db}
}

// Create appends a verification row.
func (repo *verificationRepository) Create(ctx context.Context, verification *entity.Verification) error {
	verificationM := fromVerificationDomain(verification)

	if err := repo.db.WithContext(ctx).Create(verificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRecordNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create verification")
	}

	verification.CreatedAt = verificationM.CreatedAt

	return nil
}

// FindByImageID lists the verifications of one record, oldest first.
func (repo *verificationRepository) FindByImageID(ctx context.Context, imageID uuid.UUID) ([]*entity.Verification, error) {
	var verificationMs []*model.VerificationModel
	if err := repo.db.WithContext(ctx).Where("image_id = ?", imageID).Order("created_at ASC").Find(&verificationMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find verifications")
	}

	verifications := make([]*entity.Verification, 0, len(verificationMs))
	for _, v := range verificationMs {
		verifications = append(verifications, toVerificationDomain(v))
	}

	return verifications, nil
}

// --- Mapper Functions ---

func statusValues(statuses []entity.RecordStatus) []string {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	return values
}

func toRecordDomainList(recordMs []*model.AuthenticatedRecordModel) []*entity.AuthenticatedRecord {
	records := make([]*entity.AuthenticatedRecord, 0, len(recordMs))
	for _, r := range recordMs {
		records = append(records, toRecordDomain(r))
	}

	return records
}

func toRecordDomain(data *model.AuthenticatedRecordModel) *entity.AuthenticatedRecord {
	if data == nil {
		return nil
	}

	record := &entity.AuthenticatedRecord{
		ID:             data.ID,
		OwnerID:        data.OwnerID,
		SessionID:      data.SessionID,
		OriginalRef:    data.OriginalRef,
		WatermarkedRef: data.WatermarkedRef,
		MetadataRef:    data.MetadataRef,
		ContentHash:    data.ContentHash,
		PerceptualHash: data.PerceptualHash,
		Fingerprint: entity.Fingerprint{
			ID:      data.FingerprintID,
			BlobRef: data.FingerprintBlobRef,
		},
		Ledger: entity.LedgerInfo{
			TxHash:        data.TxHash,
			TokenID:       data.TokenID,
			ListingID:     data.ListingID,
			ListingTxHash: data.ListingTxHash,
		},
		Status:        entity.RecordStatus(data.Status),
		FailedAction:  entity.LifecycleAction(data.FailedAction),
		LastError:     data.LastError,
		PendingAction: entity.LifecycleAction(data.PendingAction),
		PendingSince:  data.PendingSince,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	if len(data.Verifications) > 0 {
		record.Verifications = make([]*entity.Verification, 0, len(data.Verifications))
		for i := range data.Verifications {
			record.Verifications = append(record.Verifications, toVerificationDomain(&data.Verifications[i]))
		}
	}

	return record
}

func fromRecordDomain(data *entity.AuthenticatedRecord) *model.AuthenticatedRecordModel {
	if data == nil {
		return nil
	}

	return &model.AuthenticatedRecordModel{
		ID:                 data.ID,
		OwnerID:            data.OwnerID,
		SessionID:          data.SessionID,
		OriginalRef:        data.OriginalRef,
		WatermarkedRef:     data.WatermarkedRef,
		MetadataRef:        data.MetadataRef,
		ContentHash:        data.ContentHash,
		PerceptualHash:     data.PerceptualHash,
		FingerprintID:      data.Fingerprint.ID,
		FingerprintBlobRef: data.Fingerprint.BlobRef,
		TxHash:             data.Ledger.TxHash,
		TokenID:            data.Ledger.TokenID,
		ListingID:          data.Ledger.ListingID,
		ListingTxHash:      data.Ledger.ListingTxHash,
		Status:             string(data.Status),
		FailedAction:       string(data.FailedAction),
		LastError:          data.LastError,
		PendingAction:      string(data.PendingAction),
		PendingSince:       data.PendingSince,
	}
}

func toVerificationDomain(data *model.VerificationModel) *entity.Verification {
	return &entity.Verification{
		ID:         data.ID,
		ImageID:    data.ImageID,
		VerifierID: data.VerifierID,
		Score:      data.Score,
		CreatedAt:  data.CreatedAt,
	}
}

func fromVerificationDomain(data *entity.Verification) *model.VerificationModel {
	return &model.VerificationModel{
		ID:         data.ID,
		ImageID:    data.ImageID,
		VerifierID: data.VerifierID,
		Score:      data.Score,
	}
}
