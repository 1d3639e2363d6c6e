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
	"gorm.io/gorm/clause"
)

type nonceRepository struct {
	db *gorm.DB
}

// NewNonceRepository creates a new nonce repository
func NewNonceRepository(db *gorm.DB) repository.NonceRepository {
	return &nonceRepository{db: db}
}

// Replace keeps at most one live nonce per wallet. Concurrent challenges for the same wallet
// collapse into one row through the unique wallet index; the last writer wins.
func (repo *nonceRepository) Replace(ctx context.Context, nonce *entity.Nonce) error {
	nonceM := &model.NonceModel{
		ID:            nonce.ID,
		WalletAddress: nonce.WalletAddress,
		NonceHash:     nonce.NonceHash,
		CreatedAt:     nonce.CreatedAt,
		ExpiresAt:     nonce.ExpiresAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "wallet_address"}},
			DoUpdates: clause.AssignmentColumns([]string{"id", "nonce_hash", "created_at", "expires_at"}),
		}).
		Create(nonceM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace nonce")
	}

	nonce.CreatedAt = nonceM.CreatedAt

	return nil
}

// FindByWalletAddress returns the most recent nonce of the wallet.
func (repo *nonceRepository) FindByWalletAddress(ctx context.Context, walletAddress string) (*entity.Nonce, error) {
	var nonceM model.NonceModel

	err := repo.db.WithContext(ctx).
		Where("wallet_address = ?", walletAddress).
		Order("created_at DESC").
		First(&nonceM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNonceNotFound
		}

		return nil, errors.Wrap(err, "failed to find nonce")
	}

	return &entity.Nonce{
		ID:            nonceM.ID,
		WalletAddress: nonceM.WalletAddress,
		NonceHash:     nonceM.NonceHash,
		CreatedAt:     nonceM.CreatedAt,
		ExpiresAt:     nonceM.ExpiresAt,
	}, nil
}

// Consume deletes the nonce; only the first caller sees a deleted row.
func (repo *nonceRepository) Consume(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NonceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume nonce")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNonceNotFound
	}

	return nil
}

func (repo *nonceRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).Where("expires_at < ?", before).Delete(&model.NonceModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired nonces")
	}

	return result.RowsAffected, nil
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := &model.SessionModel{
		ID:        session.ID,
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.CreatedAt = sessionM.CreatedAt

	return nil
}

func (repo *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return &entity.Session{
		ID:        sessionM.ID,
		UserID:    sessionM.UserID,
		ExpiresAt: sessionM.ExpiresAt,
		CreatedAt: sessionM.CreatedAt,
	}, nil
}

func (repo *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SessionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

func (repo *sessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).Where("expires_at < ?", before).Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired sessions")
	}

	return result.RowsAffected, nil
}
