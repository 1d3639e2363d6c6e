package notification

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"provenance/config"
	"provenance/internal/domain/constants"
	"provenance/internal/domain/entity"
	"provenance/internal/domain/service"
	mockSvc "provenance/internal/mocks/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *entity.LifecycleEvent {
	return &entity.LifecycleEvent{
		Type:       entity.EventMinted,
		RecordID:   uuid.New(),
		Status:     entity.RecordStatusMinted,
		Data:       map[string]string{"token_id": "tok-1"},
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestHub_DeliversToSessionSubscribers(t *testing.T) {
	hub := NewHub(&config.Config{}, discardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := httptest.NewServer(websocket.Handler(func(conn *websocket.Conn) {
		hub.Serve(ctx, conn, "session-1")
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, err := websocket.Dial(wsURL, "", server.URL)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.SubscriberCount("session-1") == 1 }, time.Second, 10*time.Millisecond)

	// Events for other sessions are not delivered.
	require.NoError(t, hub.Notify(ctx, "session-2", testEvent()))

	event := testEvent()
	require.NoError(t, hub.Notify(ctx, "session-1", event))

	var received entity.LifecycleEvent
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	require.NoError(t, websocket.JSON.Receive(conn, &received))
	assert.Equal(t, event.RecordID, received.RecordID)
	assert.Equal(t, entity.EventMinted, received.Type)
}

func TestHub_UnregistersOnDisconnect(t *testing.T) {
	hub := NewHub(nil, discardLogger())

	server := httptest.NewServer(websocket.Handler(func(conn *websocket.Conn) {
		hub.Serve(context.Background(), conn, "session-1")
	}))
	defer server.Close()

	conn, err := websocket.Dial("ws"+strings.TrimPrefix(server.URL, "http"), "", server.URL)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return hub.SubscriberCount("session-1") == 1 }, time.Second, 10*time.Millisecond)
	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.SubscriberCount("session-1") == 0 }, time.Second, 10*time.Millisecond)
}

type fakeSender struct {
	messages []*messaging.Message
	err      error
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.messages = append(f.messages, message)

	return "msg-1", f.err
}

func TestFirebaseNotifier_SendsToSessionTopic(t *testing.T) {
	sender := &fakeSender{}
	notifier := newFirebaseNotifier(sender, discardLogger())
	event := testEvent()

	require.NoError(t, notifier.Notify(context.Background(), "session-1", event))
	require.Len(t, sender.messages, 1)

	msg := sender.messages[0]
	assert.Equal(t, constants.RealtimeRoomPrefix+"session-1", msg.Topic)
	assert.Equal(t, "image:minted", msg.Data["type"])
	assert.Equal(t, event.RecordID.String(), msg.Data["record_id"])
	assert.Equal(t, "tok-1", msg.Data["token_id"])
	assert.Equal(t, "2026-01-02T03:04:05Z", msg.Data["occurred_at"])
}

func newRelayTokenService(t *testing.T) *mockSvc.MockTokenService {
	tokenService := mockSvc.NewMockTokenService(t)
	tokenService.EXPECT().
		GenerateServiceToken(constants.EventRelayScope, constants.EventRelayAudience).
		Return("relay-token", nil)

	return tokenService
}

func TestRelayNotifier_PostsEventWithServiceToken(t *testing.T) {
	var (
		gotAuth string
		gotBody RelayedEvent
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	notifier := &relayNotifier{endpoint: server.URL, httpClient: server.Client(), tokenService: newRelayTokenService(t)}
	event := testEvent()

	require.NoError(t, notifier.Notify(context.Background(), "session-1", event))
	assert.Equal(t, "Bearer relay-token", gotAuth)
	assert.Equal(t, "session-1", gotBody.SessionID)
	assert.Equal(t, event.RecordID, gotBody.Event.RecordID)
}

func TestRelayNotifier_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	notifier := &relayNotifier{endpoint: server.URL, httpClient: server.Client(), tokenService: newRelayTokenService(t)}

	err := notifier.Notify(context.Background(), "session-1", testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

type recordingNotifier struct {
	calls int
	err   error
}

func (r *recordingNotifier) Notify(context.Context, string, *entity.LifecycleEvent) error {
	r.calls++

	return r.err
}

func TestFanoutNotifier(t *testing.T) {
	failing := &recordingNotifier{err: errors.New("fcm down")}
	healthy := &recordingNotifier{}
	fanout := &fanoutNotifier{notifiers: []service.Notifier{failing, healthy}, logger: discardLogger()}

	err := fanout.Notify(context.Background(), "session-1", testEvent())
	require.Error(t, err)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, healthy.calls, "a failing channel must not stop the others")

	require.NoError(t, fanout.Notify(context.Background(), "", testEvent()))
	assert.Equal(t, 1, healthy.calls, "events without a session are not delivered")
}
