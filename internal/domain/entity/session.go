package entity

import (
	"time"

	"github.com/google/uuid"
)

// Nonce is a single-use login challenge. Only its bcrypt hash is persisted.
type Nonce struct {
	ID            uuid.UUID
	WalletAddress string
	NonceHash     string
	CreatedAt     time.Time
	ExpiresAt     time.Time
}

// IsExpired reports whether the challenge can no longer be used.
func (n *Nonce) IsExpired(now time.Time) bool {
	return !now.Before(n.ExpiresAt)
}

// Session is created at login and never renewed.
type Session struct {
	ID        uuid.UUID `json:"session_id"`
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsExpired reports whether the session's absolute expiry has passed.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
