package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a wallet holder. Users are created on their first successful login.
type User struct {
	ID            uuid.UUID `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	Name          string    `json:"name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Identity is the authenticated caller attached to every pipeline entry point.
type Identity struct {
	UserID        uuid.UUID
	WalletAddress string
	SessionID     uuid.UUID
}
