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

	"github.com/nadoran78/mytable/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSMSSender(t *testing.T, endpoint string) *smsSender {
	t.Helper()

	sender, err := NewSMSSender(&config.Config{SMS: &config.SMSConfig{
		Endpoint:     endpoint,
		APIKey:       "key",
		APISecret:    "secret",
		CallerNumber: "010-0000-0000",
	}}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return sender.(*smsSender)
}

func TestSMSSender_SendOne(t *testing.T) {
	var (
		got           smsRequest
		authorization string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := newTestSMSSender(t, server.URL)

	require.NoError(t, sender.SendOne(context.Background(), "010-3333-4444", "예약이 확정되었습니다."))
	assert.Equal(t, "01033334444", got.Message.To)
	assert.Equal(t, "01000000000", got.Message.From)
	assert.Equal(t, "예약이 확정되었습니다.", got.Message.Text)
	assert.True(t, strings.HasPrefix(authorization, "HMAC-SHA256 apiKey=key, date="))
	assert.Contains(t, authorization, "signature=")
}

func TestSMSSender_SendOne_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errorCode":"InvalidPhoneNumber"}`))
	}))
	defer server.Close()

	sender := newTestSMSSender(t, server.URL)

	err := sender.SendOne(context.Background(), "010", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "InvalidPhoneNumber")
}

func TestNewSMSSender_RequiresEndpoint(t *testing.T) {
	_, err := NewSMSSender(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
