package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"autoconnect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRequestID(t *testing.T) {
	e := echo.New()

	t.Run("unset", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		assert.Empty(t, GetRequestID(c))
	})

	t.Run("from request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRequestID(req.Context(), "req-ctx"))
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, "req-ctx", GetRequestID(c))
	})

	t.Run("echo context wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRequestID(req.Context(), "req-ctx"))
		c := e.NewContext(req, httptest.NewRecorder())
		SetRequestID(c, "req-echo")
		assert.Equal(t, "req-echo", GetRequestID(c))
	})
}

func TestLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "r1"))

	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestActor(t *testing.T) {
	_, ok := GetActor(context.Background())
	assert.False(t, ok)

	_, ok = GetActor(WithActor(context.Background(), nil))
	assert.False(t, ok, "a nil actor is not authenticated")

	actor := &entity.Actor{ID: uuid.New(), NIC: "856789012V", Role: entity.RoleUser}
	got, ok := GetActor(WithActor(context.Background(), actor))
	require.True(t, ok)
	assert.Same(t, actor, got)
}
