package logs

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/nadoran78/mytable/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONWithServiceAttrs(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "develop"
	cfg.Env.ServiceName = "mytable"
	cfg.Env.Log.Level = "warn"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "kept", record["msg"])
	assert.Equal(t, "mytable", record["service"])
	assert.Equal(t, "develop", record["env"])
}

func TestParseLogLevel(t *testing.T) {
	for _, level := range []string{"debug", "INFO", "", "warn", "error"} {
		_, err := parseLogLevel(level)
		assert.NoError(t, err, level)
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}
