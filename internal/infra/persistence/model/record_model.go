package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthenticatedRecordModel is the GORM model for the 'authenticated_records' table.
type AuthenticatedRecordModel struct {
	ID                 uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OwnerID            uuid.UUID           `gorm:"type:uuid;not null;index"`
	SessionID          string              `gorm:"type:varchar(64);not null;default:''"`
	OriginalRef        string              `gorm:"type:varchar(512);not null;uniqueIndex"`
	WatermarkedRef     string              `gorm:"type:varchar(512);not null"`
	MetadataRef        string              `gorm:"type:varchar(512);not null;default:''"`
	ContentHash        string              `gorm:"type:char(64);not null"`
	PerceptualHash     string              `gorm:"type:varchar(64);not null;default:''"`
	FingerprintID      string              `gorm:"type:varchar(64);not null;uniqueIndex"`
	FingerprintBlobRef string              `gorm:"type:varchar(512);not null;default:''"`
	TxHash             string              `gorm:"type:varchar(128);not null;default:''"`
	TokenID            string              `gorm:"type:varchar(128);not null;default:''"`
	ListingID          string              `gorm:"type:varchar(128);not null;default:''"`
	ListingTxHash      string              `gorm:"type:varchar(128);not null;default:''"`
	Status             string              `gorm:"type:varchar(16);not null;index"`
	FailedAction       string              `gorm:"type:varchar(16);not null;default:''"`
	LastError          string              `gorm:"type:text;not null;default:''"`
	PendingAction      string              `gorm:"type:varchar(16);not null;default:''"`
	PendingSince       *time.Time          `gorm:"type:timestamptz"`
	Verifications      []VerificationModel `gorm:"foreignKey:ImageID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time           `gorm:"not null;default:now()"`
	UpdatedAt          time.Time           `gorm:"not null;default:now()"`
}

// TableName specifies the table name for GORM
func (AuthenticatedRecordModel) TableName() string {
	return "authenticated_records"
}

// VerificationModel is the GORM model for the 'verifications' table.
type VerificationModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ImageID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	VerifierID *uuid.UUID `gorm:"type:uuid"`
	Score      float64    `gorm:"type:double precision;not null"`
	CreatedAt  time.Time  `gorm:"not null;default:now()"`
}

// TableName specifies the table name for GORM
func (VerificationModel) TableName() string {
	return "verifications"
}
