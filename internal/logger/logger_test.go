package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultWriter(t *testing.T) {
	cfg := Config{
		Level:  slog.LevelInfo,
		Format: "json",
	}

	logger := New(cfg)
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.Logger)
}

func TestNew_CustomWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Level:  slog.LevelInfo,
		Format: "json",
		Writer: &buf,
	}

	logger := New(cfg)
	logger.Info("test message")

	assert.Contains(t, buf.String(), "test message")
	assert.Contains(t, buf.String(), "\"level\":\"INFO\"")
}

func TestNew_FormatAutoDetection(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		wantJSON    bool
	}{
		{name: "production uses json", environment: "production", wantJSON: true},
		{name: "development uses pretty", environment: "development", wantJSON: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{
				Environment: tt.environment,
				Level:       slog.LevelInfo,
				Writer:      &buf,
			})
			logger.Info("probe")

			isJSON := strings.HasPrefix(strings.TrimSpace(buf.String()), "{")
			assert.Equal(t, tt.wantJSON, isJSON)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), "input %q", tt.input)
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	level := slog.LevelWarn
	h := NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: level})

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestPrettyHandler_Output(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Format: "pretty",
		Level:  slog.LevelDebug,
		Writer: &buf,
	})

	logger.Info("order saved", "order_id", 42)

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "order saved")
	assert.Contains(t, out, "order_id=42")
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Format: "json",
		Level:  slog.LevelInfo,
		Writer: &buf,
	})

	logger.WithError(errors.New("boom")).Error("save failed")

	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), "save failed")
}
