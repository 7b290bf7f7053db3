package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" DEBUG ", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.in))
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Module: "supernav", Version: "v1.2.3", Level: "info", Writer: &buf})

	l.Debug("hidden")
	l.Info("navigated", "item", "analytics")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "navigated", rec["msg"])
	assert.Equal(t, "supernav", rec["module"])
	assert.Equal(t, "v1.2.3", rec["version"])
	assert.Equal(t, "analytics", rec["item"])
	assert.NotContains(t, rec, "source")
}

func TestNew_TextDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "debug", Format: "text", Writer: &buf})

	l.Debug("loaded", "items", 3)

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "msg=loaded")
	assert.Contains(t, out, "items=3")
	assert.Contains(t, out, "source=")
	assert.NotContains(t, out, "module=")
}

func TestNewLogLogger(t *testing.T) {
	var buf bytes.Buffer
	ll := NewLogLogger(New(Options{Writer: &buf}), slog.LevelError)

	ll.Print("tls handshake error")

	assert.Contains(t, buf.String(), "tls handshake error")
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}
