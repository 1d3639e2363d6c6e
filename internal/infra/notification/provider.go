// Package notification delivers realtime lifecycle events.
package notification

import (
	"context"
	"log/slog"

	"provenance/config"
	"provenance/internal/domain/entity"
	"provenance/internal/domain/service"
	"provenance/internal/errors"

	"go.uber.org/fx"
)

// fanoutNotifier delivers to every configured channel. One failing channel does not stop the others.
type fanoutNotifier struct {
	notifiers []service.Notifier
	logger    *slog.Logger
}

func (n *fanoutNotifier) Notify(ctx context.Context, sessionID string, event *entity.LifecycleEvent) error {
	if sessionID == "" {
		return nil
	}

	var errs []error
	for _, notifier := range n.notifiers {
		if err := notifier.Notify(ctx, sessionID, event); err != nil {
			n.logger.Warn("[Notifier] Delivery failed",
				slog.String("session_id", sessionID),
				slog.String("event", string(event.Type)),
				slog.Any("error", err),
			)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// NotifierParams holds dependencies for the Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Ctx          context.Context
	Config       *config.Config
	Logger       *slog.Logger
	TokenService service.TokenService
	Hub          *Hub `optional:"true"`
}

// NewNotifier assembles the delivery channels available to this process
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	fanout := &fanoutNotifier{logger: params.Logger}

	if params.Hub != nil {
		fanout.notifiers = append(fanout.notifiers, params.Hub)
	}

	// A process that owns the hub never relays to itself.
	if cfg := params.Config.Notifier; cfg != nil && cfg.RelayEndpoint != "" && params.Hub == nil {
		fanout.notifiers = append(fanout.notifiers, NewRelayNotifier(cfg.RelayEndpoint, params.TokenService))
	}

	if cfg := params.Config.Firebase; cfg != nil && (cfg.ProjectID != "" || cfg.CredentialsPath != "") {
		firebaseNotifier, err := NewFirebaseNotifier(params.Ctx, cfg.ProjectID, cfg.CredentialsPath, params.Logger)
		if err != nil {
			return nil, err
		}
		fanout.notifiers = append(fanout.notifiers, firebaseNotifier)
	}

	params.Logger.Info("Notifier initialized", slog.Int("channels", len(fanout.notifiers)))

	return fanout, nil
}
