package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"provenance/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID(t *testing.T) {
	t.Run("echo value wins", func(t *testing.T) {
		c := newEchoContext()
		SetRequestID(c, "req-echo")
		c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "req-ctx")))

		assert.Equal(t, "req-echo", GetRequestID(c))
	})

	t.Run("request context fallback", func(t *testing.T) {
		c := newEchoContext()
		c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "req-ctx")))

		assert.Equal(t, "req-ctx", GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		_, err := uuid.Parse(GetRequestID(newEchoContext()))
		assert.NoError(t, err)
	})
}

func TestLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestIdentity(t *testing.T) {
	c := newEchoContext()

	_, ok := GetIdentity(c)
	assert.False(t, ok)
	assert.Nil(t, GetIdentityFromContext(c.Request().Context()))

	identity := &entity.Identity{UserID: uuid.New(), WalletAddress: "wallet", SessionID: uuid.New()}
	SetIdentity(c, identity)

	got, ok := GetIdentity(c)
	require.True(t, ok)
	assert.Same(t, identity, got)
	assert.Same(t, identity, GetIdentityFromContext(c.Request().Context()))
}
