package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"provenance/internal/delivery/api/response"
	deliverycontext "provenance/internal/delivery/context"
	"provenance/internal/domain/constants"
	"provenance/internal/domain/service"
	"provenance/internal/infra/notification"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/net/websocket"
)

// RealtimeHandlerParams holds dependencies for RealtimeHandler, injected by Fx.
type RealtimeHandlerParams struct {
	fx.In

	Hub          *notification.Hub
	TokenService service.TokenService
	Logger       *slog.Logger
}

// RealtimeHandler streams lifecycle events to websocket clients and accepts events relayed by the worker
type RealtimeHandler struct {
	hub          *notification.Hub
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewRealtimeHandler is the constructor for RealtimeHandler
func NewRealtimeHandler(params RealtimeHandlerParams) *RealtimeHandler {
	return &RealtimeHandler{
		hub:          params.Hub,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Stream upgrades to a websocket bound to the caller's session room
func (h *RealtimeHandler) Stream(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	sessionID := identity.SessionID.String()
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	server := websocket.Server{
		// Browsers send an Origin; native clients may not. Authentication already happened above.
		Handshake: func(*websocket.Config, *http.Request) error { return nil },
		Handler: func(conn *websocket.Conn) {
			defer conn.Close()

			// Clear the server read/write timeouts inherited by the hijacked connection.
			_ = conn.SetDeadline(time.Time{})

			logger.Info("[Realtime] Client connected", slog.String("session_id", sessionID))
			h.hub.Serve(c.Request().Context(), conn, sessionID)
			logger.Info("[Realtime] Client disconnected", slog.String("session_id", sessionID))
		},
	}
	server.ServeHTTP(c.Response(), c.Request())

	return nil
}

// RelayEvent publishes an event forwarded by another process into the hub
func (h *RealtimeHandler) RelayEvent(c echo.Context) error {
	token := strings.TrimPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
	if _, err := h.tokenService.ValidateServiceToken(token, constants.EventRelayScope, constants.EventRelayAudience); err != nil {
		h.logger.Warn("[Realtime] Rejected relayed event", slog.Any("error", err))

		return response.Unauthorized(c, "INVALID_SERVICE_TOKEN", "Invalid service token")
	}

	var req notification.RelayedEvent
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.hub.Notify(c.Request().Context(), req.SessionID, req.Event); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusAccepted)
}
