// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"slices"
	"time"

	"provenance/config"
	"provenance/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const sessionTokenIssuer = "provenance"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	sessionSecret   []byte        // Secret key for signing user session tokens.
	serviceSecret   []byte        // Secret key for signing service-to-service tokens.
	sessionTTL      time.Duration // Absolute lifetime of a session token, equal to the session row.
	serviceTokenTTL time.Duration // Lifetime of a task delivery token.
	now             func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" || cfg.SecretKey.Service == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Session == cfg.SecretKey.Service {
		return nil, errors.New("session and service secrets must differ")
	}

	sessionTTL := 24 * time.Hour
	if cfg.Session != nil && cfg.Session.TTL > 0 {
		sessionTTL = cfg.Session.TTL
	}
	serviceTokenTTL := 5 * time.Minute
	if cfg.PubSub != nil && cfg.PubSub.ServiceTokenTTL > 0 {
		serviceTokenTTL = cfg.PubSub.ServiceTokenTTL
	}

	return &jwtService{
		sessionSecret:   []byte(cfg.SecretKey.Session),
		serviceSecret:   []byte(cfg.SecretKey.Service),
		sessionTTL:      sessionTTL,
		serviceTokenTTL: serviceTokenTTL,
		now:             time.Now,
	}, nil
}

// GenerateSessionToken signs a bearer token carrying the session id.
func (s *jwtService) GenerateSessionToken(userID, sessionID uuid.UUID, walletAddress string) (string, error) {
	now := s.now()
	claims := &service.SessionClaims{
		UserID:        userID,
		SessionID:     sessionID,
		WalletAddress: walletAddress,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionTokenIssuer,
			Subject:   userID.String(),
			ID:        sessionID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.sessionSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// ValidateSessionToken checks signature and expiry. The caller must still look up the session row.
func (s *jwtService) ValidateSessionToken(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}
	if err := s.parse(tokenString, claims, s.sessionSecret, jwt.WithIssuer(sessionTokenIssuer)); err != nil {
		return nil, err
	}
	if claims.SessionID == uuid.Nil || claims.UserID == uuid.Nil {
		return nil, errors.New("token is missing session claims")
	}

	return claims, nil
}

// GenerateServiceToken signs a short-lived token restricted to scope and audience.
func (s *jwtService) GenerateServiceToken(scope, audience string) (string, error) {
	now := s.now()
	claims := &service.ServiceClaims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionTokenIssuer,
			Audience:  jwt.ClaimStrings{audience},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.serviceTokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.serviceSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign service token")
	}

	return signed, nil
}

// ValidateServiceToken checks a service token for the expected scope and audience.
func (s *jwtService) ValidateServiceToken(tokenString, scope, audience string) (*service.ServiceClaims, error) {
	claims := &service.ServiceClaims{}
	if err := s.parse(tokenString, claims, s.serviceSecret, jwt.WithAudience(audience), jwt.WithIssuer(sessionTokenIssuer)); err != nil {
		return nil, err
	}
	if claims.Scope != scope {
		return nil, errors.Errorf("token scope %q does not grant %q", claims.Scope, scope)
	}

	return claims, nil
}

func (s *jwtService) parse(tokenString string, claims jwt.Claims, secret []byte, opts ...jwt.ParserOption) error {
	opts = slices.Concat(opts, []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	})

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return errors.Wrap(err, "failed to parse token structure")
		}

		return errors.Wrap(err, "invalid token")
	}
	if !token.Valid {
		return errors.New("invalid token")
	}

	return nil
}
