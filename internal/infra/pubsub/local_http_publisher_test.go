package pubsub

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"lifeline/internal/domain/service"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishSosEvent(t *testing.T) {
	var (
		received PushMessage
		header   http.Header
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Clone()
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.SosEvent{
		RequestID:     "req-1",
		AlertID:       "alert_u1_abc",
		RequesterID:   "u1",
		Message:       "help",
		EmergencyType: "medical",
		RecipientIDs:  []string{"u2", "u3"},
		CreatedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishSosEvent(context.Background(), event))

	assert.Equal(t, "req-1", header.Get("X-Request-Id"))
	assert.Equal(t, "alert_u1_abc", received.Message.MessageID)
	assert.Equal(t, "alert_u1_abc", received.Message.Attributes["alert_id"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])
	assert.Equal(t, localSubscription, received.Subscription)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.SosEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func newFastLocalPublisher(endpoint string) *localHTTPPublisher {
	publisher := NewLocalHTTPPublisher(endpoint, discardLogger()).(*localHTTPPublisher)
	publisher.retryDelay = time.Millisecond

	return publisher
}

func TestLocalHTTPPublisher_RedeliversAfterRetryableFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := newFastLocalPublisher(server.URL).PublishSosEvent(context.Background(), &service.SosEvent{AlertID: "alert-1"})

	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLocalHTTPPublisher_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := newFastLocalPublisher(server.URL).PublishSosEvent(context.Background(), &service.SosEvent{AlertID: "alert-1"})

	assert.ErrorContains(t, err, "503")
	assert.ErrorContains(t, err, "gave up after 3 attempts")
	assert.Equal(t, int32(localMaxAttempts), calls.Load())
}

func TestLocalHTTPPublisher_RejectionIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	err := newFastLocalPublisher(server.URL).PublishSosEvent(context.Background(), &service.SosEvent{AlertID: "alert-1"})

	assert.ErrorContains(t, err, "rejected event with 400")
	assert.Equal(t, int32(1), calls.Load())
}
