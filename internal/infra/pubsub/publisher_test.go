package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autoconnect/config"
	"autoconnect/internal/domain/constants"
	"autoconnect/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.RequestEvent {
	return &service.RequestEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		Type:       service.EventRequestCompleted,
		EntityID:   "9b2f7c9e-7a53-4e1a-9d86-0d5c8f5b1e01",
		VehicleID:  "3c1d2a4b-5e6f-4a7b-8c9d-0e1f2a3b4c5d",
		ActorID:    "c0ffee00-0000-4000-8000-000000000001",
		OwnerNIC:   "856789012V",
		Purpose:    "SERVICE_BOOKING",
		FromStatus: "ACTIVE",
		ToStatus:   "COMPLETED",
		OccurredAt: time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishRequestEvent(t *testing.T) {
	var (
		got       PubSubPushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())
	require.NoError(t, publisher.PublishRequestEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", got.Message.MessageID)
	assert.Equal(t, map[string]string{
		"event_type":       service.EventRequestCompleted,
		"added_vehicle_id": "9b2f7c9e-7a53-4e1a-9d86-0d5c8f5b1e01",
		"vehicle_id":       "3c1d2a4b-5e6f-4a7b-8c9d-0e1f2a3b4c5d",
		"to_status":        "COMPLETED",
		"request_id":       "req-1",
	}, got.Message.Attributes)

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var event service.RequestEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, *testEvent(), event)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())
	err := publisher.PublishRequestEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "not configured"},
		{name: "noop", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderNoop}},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8085/events"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: "project ID is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topic ID is required"},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newTestLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, publisher)
			if tt.cfg == nil || tt.cfg.Provider == constants.PubSubProviderNoop {
				assert.NoError(t, publisher.PublishRequestEvent(context.Background(), testEvent()))
			}
			lc.RequireStart().RequireStop()
		})
	}
}
