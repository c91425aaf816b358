package logger_test

import (
	"context"
	"testing"

	"jobboard/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGet_ReturnsContextLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := zap.New(core)

	ctx := logger.WithLogger(context.Background(), l)
	logger.Info(ctx, "hello", zap.String("k", "v"))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "hello", entries[0].Message)
	require.Equal(t, "v", entries[0].ContextMap()["k"])
}

func TestWithFields_AttachesFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("requestId", "r-1"))

	logger.Warn(ctx, "slow request")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "r-1", entries[0].ContextMap()["requestId"])
}

func TestGet_FallsBackToDefault(t *testing.T) {
	// no logger in context: must not panic, returns the default
	require.NotNil(t, logger.Get(context.Background()))
}
