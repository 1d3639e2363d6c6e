package notification

import (
	"context"
	"log/slog"
	"time"

	"provenance/internal/domain/constants"
	"provenance/internal/domain/entity"
	"provenance/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// messageSender is the subset of *messaging.Client used here.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// firebaseNotifier publishes lifecycle events to the FCM topic of the submission session,
// so mobile clients can follow a submission without holding a websocket open.
type firebaseNotifier struct {
	client messageSender
	logger *slog.Logger
}

// NewFirebaseNotifier creates a topic notifier backed by Firebase Cloud Messaging
func NewFirebaseNotifier(ctx context.Context, projectID, credentialsPath string, logger *slog.Logger) (service.Notifier, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var appCfg *firebase.Config
	if projectID != "" {
		appCfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseNotifier(client, logger), nil
}

func newFirebaseNotifier(client messageSender, logger *slog.Logger) *firebaseNotifier {
	return &firebaseNotifier{client: client, logger: logger}
}

// Notify sends event as a data message to the session topic
func (n *firebaseNotifier) Notify(ctx context.Context, sessionID string, event *entity.LifecycleEvent) error {
	message := &messaging.Message{
		Topic: constants.RealtimeRoomPrefix + sessionID,
		Data:  eventData(event),
	}

	messageID, err := n.client.Send(ctx, message)
	if err != nil {
		return errors.Wrap(err, "failed to send topic message")
	}

	n.logger.Debug("[Firebase] Event sent",
		slog.String("session_id", sessionID),
		slog.String("event", string(event.Type)),
		slog.String("message_id", messageID),
	)

	return nil
}

// eventData flattens an event into FCM's string-only data map.
func eventData(event *entity.LifecycleEvent) map[string]string {
	data := make(map[string]string, len(event.Data)+4)
	for k, v := range event.Data {
		data[k] = v
	}
	data["type"] = string(event.Type)
	data["record_id"] = event.RecordID.String()
	data["status"] = string(event.Status)
	data["occurred_at"] = event.OccurredAt.UTC().Format(time.RFC3339)

	return data
}
