// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// RecordStatus is the lifecycle state of an authenticated record.
type RecordStatus string

const (
	RecordStatusUploaded   RecordStatus = "uploaded"
	RecordStatusMinted     RecordStatus = "minted"
	RecordStatusSoftListed RecordStatus = "soft-listed"
	RecordStatusListed     RecordStatus = "listed"
	RecordStatusError      RecordStatus = "error"
)

// IsValid reports whether s is a known status.
func (s RecordStatus) IsValid() bool {
	switch s {
	case RecordStatusUploaded, RecordStatusMinted, RecordStatusSoftListed, RecordStatusListed, RecordStatusError:
		return true
	}

	return false
}

// Rank orders the forward states. error has no rank and returns -1.
func (s RecordStatus) Rank() int {
	switch s {
	case RecordStatusUploaded:
		return 0
	case RecordStatusMinted:
		return 1
	case RecordStatusSoftListed:
		return 2
	case RecordStatusListed:
		return 3
	default:
		return -1
	}
}

// LifecycleAction names a retryable pipeline step.
type LifecycleAction string

const (
	ActionMint     LifecycleAction = "mint"
	ActionSoftList LifecycleAction = "soft-list"
)

// IsValid reports whether a is a known action.
func (a LifecycleAction) IsValid() bool {
	return a == ActionMint || a == ActionSoftList
}

// SourceStatuses returns the statuses a record may be in for a to start.
// error is always included so a failed step can be driven again.
func (a LifecycleAction) SourceStatuses() []RecordStatus {
	switch a {
	case ActionMint:
		return []RecordStatus{RecordStatusUploaded, RecordStatusError}
	case ActionSoftList:
		return []RecordStatus{RecordStatusMinted, RecordStatusError}
	default:
		return nil
	}
}

// TargetStatus is the status reached when a succeeds.
func (a LifecycleAction) TargetStatus() RecordStatus {
	switch a {
	case ActionMint:
		return RecordStatusMinted
	case ActionSoftList:
		return RecordStatusSoftListed
	default:
		return ""
	}
}

// Fingerprint points at the record's vector in the similarity index and its durable backup.
type Fingerprint struct {
	ID      string `json:"id"`
	BlobRef string `json:"blob_ref,omitempty"`
}

// LedgerInfo is filled in as ledger steps succeed; any subset may be empty.
type LedgerInfo struct {
	TxHash        string `json:"tx_hash,omitempty"`
	TokenID       string `json:"token_id,omitempty"`
	ListingID     string `json:"listing_id,omitempty"`
	ListingTxHash string `json:"listing_tx_hash,omitempty"`
}

// AuthenticatedRecord is the canonical record of one distinct image.
type AuthenticatedRecord struct {
	ID             uuid.UUID       `json:"id"`
	OwnerID        uuid.UUID       `json:"owner_id"`
	SessionID      string          `json:"-"`
	OriginalRef    string          `json:"original_ref"`
	WatermarkedRef string          `json:"watermarked_ref"`
	MetadataRef    string          `json:"metadata_ref,omitempty"`
	ContentHash    string          `json:"content_hash"`
	PerceptualHash string          `json:"perceptual_hash"`
	Fingerprint    Fingerprint     `json:"fingerprint"`
	Ledger         LedgerInfo      `json:"ledger"`
	Status         RecordStatus    `json:"status"`
	FailedAction   LifecycleAction `json:"failed_action,omitempty"`
	LastError      string          `json:"last_error,omitempty"`
	PendingAction  LifecycleAction `json:"-"`
	PendingSince   *time.Time      `json:"-"`
	Verifications  []*Verification `json:"verifications,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CanStart reports whether action's precondition holds for the current state.
func (r *AuthenticatedRecord) CanStart(action LifecycleAction) bool {
	if !slices.Contains(action.SourceStatuses(), r.Status) {
		return false
	}

	switch action {
	case ActionMint:
		return r.Ledger.TokenID == ""
	case ActionSoftList:
		return r.Ledger.TokenID != "" && r.Ledger.ListingID == ""
	default:
		return false
	}
}

// NeedsFingerprintBackup reports whether the record is ledger-confirmed but lacks a durable vector backup.
func (r *AuthenticatedRecord) NeedsFingerprintBackup() bool {
	return r.Ledger.TokenID != "" && r.Fingerprint.ID != "" && r.Fingerprint.BlobRef == ""
}
