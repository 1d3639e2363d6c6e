package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"provenance/internal/domain/constants"
	"provenance/internal/domain/entity"
	"provenance/internal/domain/service"

	"github.com/pkg/errors"
)

const relayTimeout = 5 * time.Second

// RelayedEvent is the body accepted by the API's internal event endpoint.
type RelayedEvent struct {
	SessionID string                 `json:"session_id" validate:"required"`
	Event     *entity.LifecycleEvent `json:"event" validate:"required"`
}

// relayNotifier forwards events from processes without websocket clients (the lifecycle worker)
// to the API process that owns the hub.
type relayNotifier struct {
	endpoint     string
	httpClient   *http.Client
	tokenService service.TokenService
}

// NewRelayNotifier creates a notifier that POSTs events to endpoint
func NewRelayNotifier(endpoint string, tokenService service.TokenService) service.Notifier {
	return &relayNotifier{
		endpoint:     endpoint,
		httpClient:   &http.Client{Timeout: relayTimeout},
		tokenService: tokenService,
	}
}

func (n *relayNotifier) Notify(ctx context.Context, sessionID string, event *entity.LifecycleEvent) error {
	body, err := json.Marshal(RelayedEvent{SessionID: sessionID, Event: event})
	if err != nil {
		return errors.WithStack(err)
	}

	token, err := n.tokenService.GenerateServiceToken(constants.EventRelayScope, constants.EventRelayAudience)
	if err != nil {
		return errors.Wrap(err, "failed to sign relay token")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to relay event")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("event relay returned status %d", resp.StatusCode)
	}

	return nil
}
