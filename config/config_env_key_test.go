package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"notification": map[string]any{
			"topicId": "",
			"amqpUrl": "",
		},
		"auth": map[string]any{
			"tokenSecret": "",
		},
		"reservation": map[string]any{
			"strictTransitions": false,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "NOTIFICATION_TOPICID", want: "notification.topicId"},
		{envKey: "NOTIFICATION_AMQPURL", want: "notification.amqpUrl"},
		{envKey: "AUTH_TOKENSECRET", want: "auth.tokenSecret"},
		{envKey: "RESERVATION_STRICTTRANSITIONS", want: "reservation.strictTransitions"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	require.NoError(t, applyDefaults(cfg))

	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "X-AUTH-TOKEN", cfg.Auth.HeaderName)
	assert.Equal(t, 1, cfg.Reservation.BookingWindowMonths)
	assert.Equal(t, 10*time.Minute, cfg.Reservation.ArrivalWindow)
	assert.False(t, cfg.Reservation.StrictTransitions)
	assert.Equal(t, time.Local, cfg.Reservation.Location())
	assert.True(t, cfg.Sweep.Enabled)
	assert.Equal(t, "0 5 0 * * *", cfg.Sweep.Schedule)
	assert.Equal(t, "none", cfg.Notification.Provider)
	assert.Equal(t, 256, cfg.QRCode.Size)
}

func TestApplyDefaults_ResolvesTimezone(t *testing.T) {
	cfg := &Config{Reservation: &ReservationConfig{Timezone: "UTC"}}

	require.NoError(t, applyDefaults(cfg))
	assert.Equal(t, time.UTC, cfg.Reservation.Location())
}

func TestApplyDefaults_RejectsUnknownTimezone(t *testing.T) {
	cfg := &Config{Reservation: &ReservationConfig{Timezone: "Mars/Olympus"}}

	assert.Error(t, applyDefaults(cfg))
}
