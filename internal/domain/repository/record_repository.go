package repository

import (
	"context"
	"time"

	"provenance/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrRecordNotFound is returned when no record matches.
	ErrRecordNotFound = errors.New("record not found")
	// ErrRecordAlreadyExists is returned when originalRef or the fingerprint id is already taken.
	ErrRecordAlreadyExists = errors.New("record with the same content already exists")
	// ErrClaimRejected is returned when a conditional update matched no row: the record
	// is in the wrong status or another step holds a live claim on it.
	ErrClaimRejected = errors.New("record claim rejected")
)

// RecordFilter narrows a record listing.
type RecordFilter struct {
	OwnerID *uuid.UUID
	Status  entity.RecordStatus
	Limit   int
	Offset  int
}

// MintResult is what a successful mint persists.
type MintResult struct {
	TxHash      string
	TokenID     string
	MetadataRef string
}

// ListingResult is what a successful soft-list persists.
type ListingResult struct {
	ListingID string
	TxHash    string
}

// RecordRepository persists authenticated records. Every status change is a compare-and-set.
type RecordRepository interface {
	// Create inserts a record in status uploaded.
	Create(ctx context.Context, record *entity.AuthenticatedRecord) error

	// FindByID retrieves a record. Verifications are loaded when withVerifications is set.
	FindByID(ctx context.Context, id uuid.UUID, withVerifications bool) (*entity.AuthenticatedRecord, error)

	// FindByFingerprintIDs returns the records owning the given vector ids; unknown ids are skipped.
	FindByFingerprintIDs(ctx context.Context, fingerprintIDs []string) ([]*entity.AuthenticatedRecord, error)

	// List returns a page of records and the total count.
	List(ctx context.Context, filter RecordFilter) ([]*entity.AuthenticatedRecord, int64, error)

	// Claim marks action as in flight when the record is in one of the action's source statuses
	// and no live claim exists. A claim older than lease is considered abandoned.
	Claim(ctx context.Context, id uuid.UUID, action entity.LifecycleAction, lease time.Duration) (*entity.AuthenticatedRecord, error)

	// CompleteMint stores the mint result, moves the record to minted and releases the claim.
	CompleteMint(ctx context.Context, id uuid.UUID, result MintResult) error

	// CompleteSoftList stores the listing, moves the record to soft-listed and releases the claim.
	CompleteSoftList(ctx context.Context, id uuid.UUID, result ListingResult) error

	// MarkFailed moves the claimed record to error and records which action failed.
	MarkFailed(ctx context.Context, id uuid.UUID, action entity.LifecycleAction, reason string) error

	// Confirm moves an owned soft-listed record to listed.
	Confirm(ctx context.Context, id, ownerID uuid.UUID) error

	// FindMissingFingerprintBackup selects ledger-confirmed records without a durable vector backup.
	FindMissingFingerprintBackup(ctx context.Context, limit int) ([]*entity.AuthenticatedRecord, error)

	// SetFingerprintBlobRef stores the backup reference only if none is set yet.
	// It reports whether a row was written.
	SetFingerprintBlobRef(ctx context.Context, id uuid.UUID, blobRef string) (bool, error)
}

// VerificationRepository appends verification rows.
type VerificationRepository interface {
	Create(ctx context.Context, verification *entity.Verification) error
	FindByImageID(ctx context.Context, imageID uuid.UUID) ([]*entity.Verification, error)
}
