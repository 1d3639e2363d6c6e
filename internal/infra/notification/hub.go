package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"provenance/config"
	"provenance/internal/domain/constants"
	"provenance/internal/domain/entity"

	"github.com/pkg/errors"
	"golang.org/x/net/websocket"
)

// Hub fans lifecycle events out to the websocket clients of a submission session.
// Each session maps to one room; slow clients drop events instead of blocking the sender.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*subscriber]struct{}
	buffer int
	logger *slog.Logger
}

type subscriber struct {
	send chan []byte
}

// NewHub creates an empty hub
func NewHub(cfg *config.Config, logger *slog.Logger) *Hub {
	buffer := 16
	if cfg != nil && cfg.Notifier != nil && cfg.Notifier.BufferSize > 0 {
		buffer = cfg.Notifier.BufferSize
	}

	return &Hub{
		rooms:  make(map[string]map[*subscriber]struct{}),
		buffer: buffer,
		logger: logger,
	}
}

func roomName(sessionID string) string {
	return constants.RealtimeRoomPrefix + sessionID
}

// Notify queues event for every subscriber of the session.
func (h *Hub) Notify(_ context.Context, sessionID string, event *entity.LifecycleEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.rooms[roomName(sessionID)] {
		select {
		case sub.send <- payload:
		default:
			h.logger.Warn("[Hub] Subscriber queue full, dropping event",
				slog.String("session_id", sessionID),
				slog.String("event", string(event.Type)),
			)
		}
	}

	return nil
}

// Serve streams the session's events to conn until the client disconnects or ctx ends.
func (h *Hub) Serve(ctx context.Context, conn *websocket.Conn, sessionID string) {
	room := roomName(sessionID)
	sub := &subscriber{send: make(chan []byte, h.buffer)}

	h.register(room, sub)
	defer h.unregister(room, sub)

	// Reading is only used to notice the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)

		var discard string
		for {
			if err := websocket.Message.Receive(conn, &discard); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-closed:
			return
		case msg := <-sub.send:
			if err := websocket.Message.Send(conn, string(msg)); err != nil {
				h.logger.Debug("[Hub] Write failed, closing subscriber",
					slog.String("session_id", sessionID),
					slog.Any("error", err),
				)

				return
			}
		}
	}
}

// SubscriberCount returns the number of live subscribers of a session.
func (h *Hub) SubscriberCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[roomName(sessionID)])
}

func (h *Hub) register(room string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*subscriber]struct{})
	}
	h.rooms[room][sub] = struct{}{}
}

func (h *Hub) unregister(room string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.rooms[room], sub)
	if len(h.rooms[room]) == 0 {
		delete(h.rooms, room)
	}
}
