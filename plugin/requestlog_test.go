package plugin_test

import (
	"testing"

	"github.com/advdv/queen"
	"github.com/advdv/queen/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	req := newRequest(t, "", "")

	assert.Equal(t, queen.Continue, runPlugin(t, plugin.RequestLog(zap.New(core)), req))

	entries := logs.TakeAll()
	require.Len(t, entries, 1)
	assert.Equal(t, "request", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/json", fields["url"])
	assert.Contains(t, fields, "time")
}
