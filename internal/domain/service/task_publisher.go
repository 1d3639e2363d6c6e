package service

import (
	"context"
	"time"

	"provenance/internal/domain/entity"
)

// LifecycleTask asks the worker to run one lifecycle action on one record.
// Consumers are idempotent on (RecordID, Action).
type LifecycleTask struct {
	RequestID  string                 `json:"request_id,omitempty"` // For distributed tracing
	RecordID   string                 `json:"record_id"`
	Action     entity.LifecycleAction `json:"action"`
	EnqueuedAt time.Time              `json:"enqueued_at"`
}

// TaskPublisher defines the interface for enqueueing lifecycle tasks on a message queue
type TaskPublisher interface {
	// PublishLifecycleTask durably enqueues a task for async processing
	PublishLifecycleTask(ctx context.Context, task *LifecycleTask) error

	// Close releases any resources held by the publisher
	Close() error
}
