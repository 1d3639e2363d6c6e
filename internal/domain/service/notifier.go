package service

import (
	"context"

	"provenance/internal/domain/entity"
)

// Notifier pushes lifecycle events to the subscribers of a submission session.
// Delivery is best effort.
type Notifier interface {
	Notify(ctx context.Context, sessionID string, event *entity.LifecycleEvent) error
}
