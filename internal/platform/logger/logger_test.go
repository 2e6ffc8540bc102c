package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/itinerary-api/internal/config"
	"github.com/phrazzld/itinerary-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		want  slog.Level
		valid bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"Warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := logger.ParseLevel(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, ok)
		})
	}
}

func TestSetupWithWriter(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	t.Run("respects level", func(t *testing.T) {
		buf := &logger.TestLogBuffer{}
		l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "warn"}, buf)
		require.NoError(t, err)
		require.NotNil(t, l)

		l.Info("hidden")
		l.Warn("shown", "component", "test")

		entries, err := buf.Entries()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "shown", entries[0]["msg"])
		assert.Equal(t, "test", entries[0]["component"])
		assert.Same(t, l, slog.Default())
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		buf := &logger.TestLogBuffer{}
		l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "chatty"}, buf)
		require.NoError(t, err)

		l.Debug("hidden")
		l.Info("shown")

		entries, err := buf.Entries()
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "invalid log level configured, using default level", entries[0]["msg"])
		assert.Equal(t, "chatty", entries[0]["configured_level"])
		assert.Equal(t, "shown", entries[1]["msg"])
	})
}

func TestFromContextOrDefault(t *testing.T) {
	defaultLogger := slog.Default()
	customLogger, _ := logger.NewTestLogger()

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_default",
			ctx:      nil,
			expected: defaultLogger,
		},
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//nolint:staticcheck // nil context is part of the contract
			result := logger.FromContextOrDefault(tt.ctx, defaultLogger)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Run("valid_logger", func(t *testing.T) {
		customLogger, _ := logger.NewTestLogger()
		ctx := logger.WithLogger(context.Background(), customLogger)

		assert.Equal(t, customLogger, logger.FromContext(ctx))
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}
