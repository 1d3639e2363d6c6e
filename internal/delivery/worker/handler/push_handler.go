package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"provenance/config"
	deliverycontext "provenance/internal/delivery/context"
	"provenance/internal/domain/constants"
	domainerrors "provenance/internal/domain/errors"
	"provenance/internal/domain/service"
	"provenance/internal/errors"
	"provenance/internal/infra/pubsub"
	"provenance/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// pushAuthMode selects how push requests are authenticated
type pushAuthMode int

const (
	pushAuthNone pushAuthMode = iota
	// pushAuthServiceToken expects the scoped HS256 token minted by the local publisher
	pushAuthServiceToken
	// pushAuthGoogleOIDC expects a Google-signed OIDC token attached by the Pub/Sub push subscription
	pushAuthGoogleOIDC
)

// terminalErrors are acknowledged so Pub/Sub stops redelivering; a retry cannot change the outcome.
// Failed external calls already moved the record to error and wait for an explicit redrive.
var terminalErrors = []error{
	domainerrors.ErrPreconditionFailed,
	domainerrors.ErrExternalCallFailed,
	domainerrors.ErrRecordNotFound,
	domainerrors.ErrValidationFailed,
	domainerrors.ErrForbidden,
}

// isRetryable reports whether Pub/Sub should redeliver the task
func isRetryable(err error) bool {
	return !errors.IsAny(err, terminalErrors...)
}

// idTokenValidator is swapped in tests
type idTokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler runs lifecycle tasks delivered by Pub/Sub push
type PushHandler struct {
	authMode     pushAuthMode
	logger       *slog.Logger
	lifecycleUC  usecase.LifecycleUsecase
	tokenService service.TokenService
	validateOIDC idTokenValidator
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	LifecycleUC  usecase.LifecycleUsecase
	TokenService service.TokenService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		authMode:     resolveAuthMode(params.Config),
		logger:       params.Logger,
		lifecycleUC:  params.LifecycleUC,
		tokenService: params.TokenService,
		validateOIDC: idtoken.Validate,
	}
}

func resolveAuthMode(cfg *config.Config) pushAuthMode {
	if cfg.PubSub == nil {
		return pushAuthServiceToken
	}

	switch cfg.PubSub.Provider {
	case constants.PubSubProviderGoogle:
		if cfg.Env.Env == constants.EnvDevelop {
			return pushAuthNone
		}

		return pushAuthGoogleOIDC
	default:
		return pushAuthServiceToken
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.authenticate(c.Request()); err != nil {
		h.logger.Warn("[Worker] Rejected push request", slog.Any("error", err))

		return c.NoContent(http.StatusUnauthorized)
	}

	var pushMsg pubsub.PubSubPushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var task service.LifecycleTask
	if err := json.Unmarshal(data, &task); err != nil {
		h.logger.Error("[Worker] Failed to parse lifecycle task", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &task)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("record_id", task.RecordID),
		slog.String("action", string(task.Action)),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing lifecycle task")

	// A dropped push connection must not abort a step halfway through the ledger call.
	if err := h.lifecycleUC.ExecuteTask(context.WithoutCancel(ctx), &task); err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Worker] Lifecycle task failed",
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		// 503 asks Pub/Sub to redeliver, 200 acknowledges
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Lifecycle task completed")

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the task, then the inbound request, then a new UUID
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PubSubPushMessage, task *service.LifecycleTask) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if task.RequestID != "" {
		return task.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) authenticate(req *http.Request) error {
	if h.authMode == pushAuthNone {
		return nil
	}

	token, err := bearerToken(req)
	if err != nil {
		return err
	}

	if h.authMode == pushAuthServiceToken {
		_, err := h.tokenService.ValidateServiceToken(token, constants.ServiceTokenScope, constants.ServiceTokenAudience)

		return errors.Wrap(err, "invalid service token")
	}

	return h.verifyPubSubToken(req, token)
}

func bearerToken(req *http.Request) (string, error) {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", errors.New("invalid authorization header format")
	}

	return strings.TrimPrefix(authHeader, bearerPrefix), nil
}

// verifyPubSubToken verifies the OIDC token of Google Pub/Sub push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request, token string) error {
	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil && req.Header.Get(echo.HeaderXForwardedProto) != "https" {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateOIDC(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
