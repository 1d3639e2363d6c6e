package handler

import (
	"log/slog"
	"net/http"

	"provenance/internal/delivery/api/response"
	deliverycontext "provenance/internal/delivery/context"
	"provenance/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler handles wallet login, logout and the caller's profile
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// NonceRequest asks for a login challenge
type NonceRequest struct {
	WalletAddress string `json:"wallet_address" validate:"required,wallet"`
}

// LoginRequest answers a login challenge
type LoginRequest struct {
	WalletAddress string `json:"wallet_address" validate:"required,wallet"`
	Nonce         string `json:"nonce" validate:"required"`
	Signature     string `json:"signature" validate:"required"`
}

// UpdateProfileRequest changes the caller's display name
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"max=100"`
}

// RequestNonce issues a single-use login challenge for a wallet
func (h *SessionHandler) RequestNonce(c echo.Context) error {
	var req NonceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid nonce request")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.sessionUC.RequestNonce(c.Request().Context(), req.WalletAddress)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// Login exchanges a signed challenge for a session token
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.sessionUC.Login(c.Request().Context(), &usecase.LoginInput{
		WalletAddress: req.WalletAddress,
		Nonce:         req.Nonce,
		Signature:     req.Signature,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// Logout deletes the caller's session
func (h *SessionHandler) Logout(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	if err := h.sessionUC.Logout(c.Request().Context(), identity.SessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetProfile returns the caller's profile
func (h *SessionHandler) GetProfile(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	user, err := h.sessionUC.GetProfile(c.Request().Context(), identity.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateProfile changes the caller's display name
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.sessionUC.UpdateProfile(c.Request().Context(), identity.UserID, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}
