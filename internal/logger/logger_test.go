package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"AnalogClock/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestJSONOutputWithComponent(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	var buf bytes.Buffer

	l := Component(NewWithWriter(&buf, config.LogConfig{Level: "info", JSON: true}), "ui")
	l.Debug().Msg("hidden")
	l.Info().Str("state", "running").Msg("stopwatch toggled")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ui", entry["component"])
	assert.Equal(t, "running", entry["state"])
	assert.Equal(t, "stopwatch toggled", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestEnvOverridesLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	var buf bytes.Buffer

	l := NewWithWriter(&buf, config.LogConfig{Level: "debug", JSON: true})
	l.Warn().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Error().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestConsoleOutput(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	var buf bytes.Buffer

	l := NewWithWriter(&buf, config.LogConfig{Level: "info"})
	l.Info().Msg("window shown")
	assert.Contains(t, buf.String(), "window shown")
}
