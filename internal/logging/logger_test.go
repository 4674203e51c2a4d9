package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/govctl/internal/domain/config"
)

func TestLevelFromEnv(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, levelFromEnv("DEBUG"))
	assert.Equal(t, slog.LevelWarn, levelFromEnv("warning"))
	assert.Equal(t, slog.LevelError, levelFromEnv("error"))
	assert.Equal(t, slog.LevelInfo, levelFromEnv(""))
	assert.Equal(t, slog.LevelInfo, levelFromEnv("verbose"))
}

func TestNewLoggerDebug(t *testing.T) {
	t.Setenv("GOVCTL_LOG_LEVEL", "error")

	logger := NewLogger(&config.RuntimeConfig{Debug: true})
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	logger = NewLogger(&config.RuntimeConfig{})
	assert.False(t, logger.Enabled(context.Background(), slog.LevelWarn))
}

func TestShortPath(t *testing.T) {
	assert.Equal(t, "internal/usecase/cast_vote.go", shortPath("/home/dev/src/govctl/internal/usecase/cast_vote.go"))
	assert.Equal(t, "main.go", shortPath("/elsewhere/main.go"))
}
