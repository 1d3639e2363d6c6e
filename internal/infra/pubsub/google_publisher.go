package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"provenance/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements TaskPublisher using Google Cloud Pub/Sub.
// Pub/Sub provides the durable enqueue and at-least-once push delivery to the worker.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.TaskPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishLifecycleTask publishes a task and waits for the server to acknowledge it
func (p *googlePubSubPublisher) PublishLifecycleTask(ctx context.Context, task *service.LifecycleTask) error {
	data, err := json.Marshal(task)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: taskAttributes(task),
	}

	result := p.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s task for record %s", task.Action, task.RecordID)
	}

	p.logger.Info("[GooglePubSub] Task published",
		slog.String("record_id", task.RecordID),
		slog.String("action", string(task.Action)),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

// taskAttributes are copied onto every message so subscriptions can filter by action.
func taskAttributes(task *service.LifecycleTask) map[string]string {
	attributes := map[string]string{
		"record_id": task.RecordID,
		"action":    string(task.Action),
	}
	if task.RequestID != "" {
		attributes["request_id"] = task.RequestID
	}

	return attributes
}
