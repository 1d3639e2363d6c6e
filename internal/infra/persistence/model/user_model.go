// Package model contains the GORM persistence models. They mirror the SQL schema in the migrations package.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM model for the 'users' table.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	WalletAddress string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name          string    `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt     time.Time `gorm:"not null;default:now()"`
	UpdatedAt     time.Time `gorm:"not null;default:now()"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// NonceModel is the GORM model for the 'nonces' table.
type NonceModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	WalletAddress string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	NonceHash     string    `gorm:"type:varchar(255);not null"`
	CreatedAt     time.Time `gorm:"not null;default:now()"`
	ExpiresAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (NonceModel) TableName() string {
	return "nonces"
}

// SessionModel is the GORM model for the 'sessions' table.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}
