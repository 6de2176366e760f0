package qapp

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	for _, level := range []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel} {
		t.Run(level.String(), func(t *testing.T) {
			logger, err := NewLogger(testEnv{level: level})
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(level))
			if level > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(level-1))
			}
		})
	}
}

func TestZapQueenLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := newZapQueenLogger(zap.New(core))

	l.LogUnhandledServeError("GET", "/users/1", errors.New("boom"))
	l.LogResponseWriteError(errors.New("broken pipe"))

	entries := logs.TakeAll()
	require.Len(t, entries, 2)

	assert.Equal(t, "queen.qapp", entries[0].LoggerName)
	assert.Equal(t, "unhandled server error", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/users/1", fields["path"])
	assert.Equal(t, "boom", fields["error"])

	assert.Equal(t, "error while writing error response", entries[1].Message)
}

func TestLog(t *testing.T) {
	t.Run("outside of a request", func(t *testing.T) {
		assert.NotPanics(t, func() { Log(context.Background()).Info("dropped") })
	})

	t.Run("request scoped", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		ctx := context.WithValue(context.Background(), ctxKeyRequestDep, &requestDep{logger: zap.New(core)})

		Log(ctx).Info("hello")
		require.Equal(t, 1, logs.Len())
		assert.NotContains(t, logs.All()[0].ContextMap(), "trace_id")
	})

	t.Run("trace correlated", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		ctx := context.WithValue(context.Background(), ctxKeyRequestDep, &requestDep{logger: zap.New(core)})

		sc := trace.NewSpanContext(trace.SpanContextConfig{
			TraceID:    trace.TraceID{0x01},
			SpanID:     trace.SpanID{0x02},
			TraceFlags: trace.FlagsSampled,
		})
		ctx = trace.ContextWithSpanContext(ctx, sc)

		Log(ctx).Info("hello")
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, sc.TraceID().String(), fields["trace_id"])
		assert.Equal(t, sc.SpanID().String(), fields["span_id"])
		assert.Equal(t, sc, Span(ctx).SpanContext())
	})
}
