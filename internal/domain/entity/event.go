package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventType is the name of a realtime lifecycle event.
type EventType string

const (
	EventUploaded   EventType = "image:uploaded"
	EventMinted     EventType = "image:minted"
	EventSoftListed EventType = "image:softListed"
	EventListed     EventType = "image:listed"
	EventBlob       EventType = "image:blob"
	EventError      EventType = "image:error"
)

// LifecycleEvent is pushed to subscribers of a submission session.
type LifecycleEvent struct {
	Type       EventType         `json:"type"`
	RecordID   uuid.UUID         `json:"record_id"`
	Status     RecordStatus      `json:"status"`
	Data       map[string]string `json:"data,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// NewLifecycleEvent builds an event for record.
func NewLifecycleEvent(eventType EventType, record *AuthenticatedRecord, data map[string]string) *LifecycleEvent {
	return &LifecycleEvent{
		Type:       eventType,
		RecordID:   record.ID,
		Status:     record.Status,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}
