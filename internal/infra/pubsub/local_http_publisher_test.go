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

	"github.com/nadoran78/mytable/config"
	"github.com/nadoran78/mytable/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishMessageEvent(t *testing.T) {
	var (
		envelope  PushMessage
		requestID string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&envelope)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.ReservationMessageEvent{
		EventID:        "evt-1",
		RequestID:      "req-1",
		ReservationUID: "res-1",
		RecipientUID:   "partner-1",
		Phone:          "01011112222",
		Text:           "hello",
	}

	require.NoError(t, publisher.PublishMessageEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", envelope.Message.MessageID)
	assert.Equal(t, "res-1", envelope.Message.Attributes["reservation_uid"])

	raw, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	require.NoError(t, err)

	var decoded service.ReservationMessageEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishMessageEvent(context.Background(), &service.ReservationMessageEvent{EventID: "evt-1"})
	assert.ErrorContains(t, err, "500")
}

func TestQueueName(t *testing.T) {
	assert.Equal(t, DefaultQueue, QueueName(nil))
	assert.Equal(t, DefaultQueue, QueueName(&config.NotificationConfig{}))
	assert.Equal(t, "custom", QueueName(&config.NotificationConfig{Queue: "custom"}))
}
