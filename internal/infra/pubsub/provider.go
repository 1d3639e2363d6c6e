package pubsub

import (
	"context"
	"log/slog"

	"provenance/config"
	"provenance/internal/domain/constants"
	"provenance/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops tasks. Records then stay in uploaded until redriven.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishLifecycleTask(_ context.Context, task *service.LifecycleTask) error {
	p.logger.Warn("[NoopPubSub] Task queue disabled, dropping task",
		slog.String("record_id", task.RecordID),
		slog.String("action", string(task.Action)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for TaskPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc           fx.Lifecycle
	Ctx          context.Context
	Config       *config.Config
	Logger       *slog.Logger
	TokenService service.TokenService
}

// NewTaskPublisher creates a TaskPublisher based on configuration
func NewTaskPublisher(params PublisherParams) (service.TaskPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If PubSub is not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Warn("PubSub not configured, lifecycle tasks will be dropped")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.TaskPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, params.TokenService, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing TaskPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTaskPublisher),
)
