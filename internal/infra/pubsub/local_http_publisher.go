package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"provenance/internal/domain/constants"
	"provenance/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sethvargo/go-retry"
)

const (
	// localPushTimeout bounds one delivery including redeliveries; it matches the claim lease.
	localPushTimeout     = 2 * time.Minute
	localPushRetries     = 4
	localPushBaseBackoff = 500 * time.Millisecond
)

// localHTTPPublisher implements TaskPublisher by POSTing the Pub/Sub push envelope
// to the worker in the background, redelivering on non-2xx answers the way a push
// subscription does. Each push carries a scoped service token.
type localHTTPPublisher struct {
	endpoint     string
	httpClient   *http.Client
	tokenService service.TokenService
	logger       *slog.Logger
	backoff      time.Duration
	inflight     sync.WaitGroup
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, tokenService service.TokenService, logger *slog.Logger) service.TaskPublisher {
	return newLocalHTTPPublisher(endpoint, tokenService, logger, localPushBaseBackoff)
}

func newLocalHTTPPublisher(endpoint string, tokenService service.TokenService, logger *slog.Logger, backoff time.Duration) *localHTTPPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: localPushTimeout,
		},
		tokenService: tokenService,
		logger:       logger,
		backoff:      backoff,
	}
}

// PublishLifecycleTask encodes and signs the task, then hands it off. Delivery outlives ctx:
// the caller's request ending must not cancel the step it enqueued.
func (p *localHTTPPublisher) PublishLifecycleTask(ctx context.Context, task *service.LifecycleTask) error {
	taskData, err := json.Marshal(task)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/lifecycle-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(taskData)
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = taskAttributes(task)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	token, err := p.tokenService.GenerateServiceToken(constants.ServiceTokenScope, constants.ServiceTokenAudience)
	if err != nil {
		return errors.Wrap(err, "failed to sign service token")
	}

	logger := p.logger.With(
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("record_id", task.RecordID),
		slog.String("action", string(task.Action)),
	)
	logger.Info("[LocalPubSub] Publishing task", slog.String("endpoint", p.endpoint))

	deliveryCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), localPushTimeout)
	p.inflight.Add(1)
	go func() {
		defer p.inflight.Done()
		defer cancel()

		if err := p.deliver(deliveryCtx, body, token, task.RequestID); err != nil {
			logger.Error("[LocalPubSub] Task delivery failed", slog.Any("error", err))
		}
	}()

	return nil
}

func (p *localHTTPPublisher) deliver(ctx context.Context, body []byte, token, requestID string) error {
	backoff := retry.WithMaxRetries(localPushRetries, retry.NewExponential(p.backoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
		if err != nil {
			return errors.WithStack(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		if requestID != "" {
			req.Header.Set("X-Request-Id", requestID)
		}

		resp, err := p.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(errors.WithStack(err))
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			p.logger.Warn("[LocalPubSub] Worker rejected push, redelivering", slog.Int("status", resp.StatusCode))

			return retry.RetryableError(errors.Errorf("worker returned non-success status: %d", resp.StatusCode))
		}

		return nil
	})
}

// Close waits for in-flight deliveries.
func (p *localHTTPPublisher) Close() error {
	p.inflight.Wait()

	return nil
}
