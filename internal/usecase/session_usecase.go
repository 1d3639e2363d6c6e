package usecase

import (
	"context"

	"provenance/internal/domain/entity"

	"github.com/google/uuid"
)

// NonceOutput is the login challenge handed to a wallet.
type NonceOutput struct {
	Nonce   string `json:"nonce"`
	Message string `json:"message"`
}

// LoginInput is a signed login challenge.
type LoginInput struct {
	WalletAddress string
	Nonce         string
	// Signature is the base58 ed25519 signature of the login message
	Signature string
}

// LoginOutput returns the session token after a successful login.
type LoginOutput struct {
	Token   string          `json:"token"`
	Session *entity.Session `json:"session"`
	User    *entity.User    `json:"user"`
}

// SessionUsecase defines wallet login and session management.
type SessionUsecase interface {
	RequestNonce(ctx context.Context, walletAddress string) (*NonceOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	// Authenticate resolves a bearer token to the caller. The stored session is authoritative.
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, name string) (*entity.User, error)
	// CleanupExpired removes expired nonces and sessions.
	CleanupExpired(ctx context.Context) (int64, error)
}
