package repository

import (
	"context"
	"time"

	"provenance/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrNonceNotFound is returned when no live nonce exists for a wallet.
	ErrNonceNotFound = errors.New("nonce not found")
	// ErrSessionNotFound is returned when a session does not exist.
	ErrSessionNotFound = errors.New("session not found")
)

// NonceRepository stores login challenges.
type NonceRepository interface {
	// Replace deletes every prior nonce of the wallet and stores nonce.
	Replace(ctx context.Context, nonce *entity.Nonce) error

	// FindByWalletAddress returns the live nonce for the wallet.
	FindByWalletAddress(ctx context.Context, walletAddress string) (*entity.Nonce, error)

	// Consume deletes the nonce. It returns ErrNonceNotFound if another caller consumed it first.
	Consume(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes nonces that expired before the given time.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// SessionRepository stores login sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes sessions that expired before the given time.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
