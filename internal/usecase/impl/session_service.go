package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"provenance/config"
	deliverycontext "provenance/internal/delivery/context"
	"provenance/internal/domain/constants"
	"provenance/internal/domain/entity"
	domainerrors "provenance/internal/domain/errors"
	"provenance/internal/domain/repository"
	"provenance/internal/domain/service"
	"provenance/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	nonceBytes     = 16
	maxDisplayName = 100
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	nonceRepo   repository.NonceRepository
	sessionRepo repository.SessionRepository
	hasher      service.SecretHasher
	wallet      service.WalletVerifier
	tokens      service.TokenService
	sessionTTL  time.Duration
	nonceTTL    time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	NonceRepo    repository.NonceRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.SecretHasher
	Wallet       service.WalletVerifier
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		nonceRepo:   params.NonceRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		wallet:      params.Wallet,
		tokens:      params.TokenService,
		sessionTTL:  params.Config.Session.TTL,
		nonceTTL:    params.Config.Session.NonceTTL,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestNonce issues a fresh login challenge and invalidates any earlier one for the wallet.
func (srv *sessionService) RequestNonce(ctx context.Context, walletAddress string) (*usecase.NonceOutput, error) {
	walletAddress = strings.TrimSpace(walletAddress)
	if walletAddress == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("wallet address is required")
	}

	raw := make([]byte, nonceBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, errors.Wrap(err, "failed to generate nonce")
	}
	nonce := hex.EncodeToString(raw)

	hash, err := srv.hasher.Hash(nonce)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash nonce")
	}

	now := srv.now().UTC()
	err = srv.nonceRepo.Replace(ctx, &entity.Nonce{
		ID:            uuid.New(),
		WalletAddress: walletAddress,
		NonceHash:     hash,
		CreatedAt:     now,
		ExpiresAt:     now.Add(srv.nonceTTL),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store nonce")
	}

	srv.log(ctx).Debug("Issued login nonce", slog.String("wallet", walletAddress))

	return &usecase.NonceOutput{
		Nonce:   nonce,
		Message: constants.LoginMessagePrefix + nonce,
	}, nil
}

// Login verifies the signed challenge, consumes it and opens a session. Users are created on first login.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.WalletAddress == "" || input.Nonce == "" || input.Signature == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("wallet address, nonce and signature are required")
	}

	if err := srv.wallet.Verify(input.WalletAddress, constants.LoginMessagePrefix+input.Nonce, input.Signature); err != nil {
		srv.log(ctx).Warn("Wallet signature rejected", slog.String("wallet", input.WalletAddress), slog.Any("error", err))

		return nil, domainerrors.ErrSignatureInvalid
	}

	var (
		user    *entity.User
		session *entity.Session
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		nonceRepo := repoFactory.NewNonceRepository()
		userRepo := repoFactory.NewUserRepository()
		sessionRepo := repoFactory.NewSessionRepository()
		now := srv.now().UTC()

		// 1. Check the challenge
		stored, err := nonceRepo.FindByWalletAddress(ctx, input.WalletAddress)
		if err != nil {
			if errors.Is(err, repository.ErrNonceNotFound) {
				return domainerrors.ErrNonceInvalid
			}

			return errors.Wrap(err, "failed to find nonce")
		}
		if stored.IsExpired(now) || !srv.hasher.Check(input.Nonce, stored.NonceHash) {
			return domainerrors.ErrNonceInvalid
		}

		// 2. Consume it; a concurrent login with the same nonce loses here
		if err := nonceRepo.Consume(ctx, stored.ID); err != nil {
			if errors.Is(err, repository.ErrNonceNotFound) {
				return domainerrors.ErrNonceInvalid
			}

			return errors.Wrap(err, "failed to consume nonce")
		}

		// 3. Find or create the user
		user, err = userRepo.FindByWalletAddress(ctx, input.WalletAddress)
		if err != nil {
			if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to find user")
			}

			user = &entity.User{
				ID:            uuid.New(),
				WalletAddress: input.WalletAddress,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := userRepo.Create(ctx, user); err != nil {
				if !errors.Is(err, repository.ErrUserAlreadyExists) {
					return errors.Wrap(err, "failed to create user")
				}

				// A concurrent first login for the same wallet created it
				user, err = userRepo.FindByWalletAddress(ctx, input.WalletAddress)
				if err != nil {
					return errors.Wrap(err, "failed to find user")
				}
			}
		}

		// 4. Open the session
		session = &entity.Session{
			ID:        uuid.New(),
			UserID:    user.ID,
			ExpiresAt: now.Add(srv.sessionTTL),
			CreatedAt: now,
		}
		if err := sessionRepo.Create(ctx, session); err != nil {
			return errors.Wrap(err, "failed to create session")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("wallet", input.WalletAddress), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to login")
	}

	token, err := srv.tokens.GenerateSessionToken(user.ID, session.ID, user.WalletAddress)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Info("User logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("session_id", session.ID.String()),
	)

	return &usecase.LoginOutput{Token: token, Session: session, User: user}, nil
}

// Logout deletes the session. Deleting an unknown session is not an error.
func (srv *sessionService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := srv.sessionRepo.Delete(ctx, sessionID); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Info("User logged out", slog.String("session_id", sessionID.String()))

	return nil
}

// Authenticate resolves a bearer token against its stored session.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	claims, err := srv.tokens.ValidateSessionToken(token)
	if err != nil {
		return nil, domainerrors.ErrSessionInvalid
	}

	session, err := srv.sessionRepo.FindByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionInvalid
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	if session.UserID != claims.UserID || session.IsExpired(srv.now()) {
		return nil, domainerrors.ErrSessionInvalid
	}

	return &entity.Identity{
		UserID:        claims.UserID,
		WalletAddress: claims.WalletAddress,
		SessionID:     session.ID,
	}, nil
}

// GetProfile returns the caller's user.
func (srv *sessionService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile changes the display name.
func (srv *sessionService) UpdateProfile(ctx context.Context, userID uuid.UUID, name string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > maxDisplayName {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name is too long")
	}

	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.UpdatedAt = srv.now().UTC()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.String("user_id", userID.String()), slog.Any("error", err))

		return nil, domainerrors.ErrUserUpdateFailed.WrapMessage(err.Error())
	}

	return user, nil
}

// CleanupExpired removes expired nonces and sessions.
func (srv *sessionService) CleanupExpired(ctx context.Context) (int64, error) {
	now := srv.now().UTC()

	nonces, err := srv.nonceRepo.DeleteExpired(ctx, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired nonces")
	}

	sessions, err := srv.sessionRepo.DeleteExpired(ctx, now)
	if err != nil {
		return nonces, errors.Wrap(err, "failed to delete expired sessions")
	}

	if nonces+sessions > 0 {
		srv.log(ctx).Info("Expired credentials removed",
			slog.Int64("nonces", nonces),
			slog.Int64("sessions", sessions),
		)
	}

	return nonces + sessions, nil
}
