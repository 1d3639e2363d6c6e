package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims defines the claims of a user session token.
type SessionClaims struct {
	UserID        uuid.UUID `json:"uid"`
	SessionID     uuid.UUID `json:"sid"`
	WalletAddress string    `json:"wallet"`
	jwt.RegisteredClaims
}

// ServiceClaims defines the claims of a service-to-service token.
type ServiceClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateSessionToken signs a bearer token bound to a stored session.
	GenerateSessionToken(userID, sessionID uuid.UUID, walletAddress string) (string, error)

	// ValidateSessionToken checks signature and expiry of a session token.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)

	// GenerateServiceToken signs a short-lived token for internal task delivery.
	GenerateServiceToken(scope, audience string) (string, error)

	// ValidateServiceToken checks a service token for the expected scope and audience.
	ValidateServiceToken(tokenString, scope, audience string) (*ServiceClaims, error)
}
