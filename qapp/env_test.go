package qapp_test

import (
	"os"
	"testing"

	"github.com/advdv/queen/qapp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// unsetEnv clears the variables for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestParseEnvDefaults(t *testing.T) {
	unsetEnv(t, "PORT", "QUEEN_SERVICE_NAME", "QUEEN_LOG_LEVEL", "QUEEN_OTEL_EXPORTER",
		"QUEEN_READINESS_CHECK_PATH", "QUEEN_METRICS_PATH", "QUEEN_UPLOAD_DIR",
		"QUEEN_UPLOAD_BUCKET", "QUEEN_UPLOAD_UNIQUE_NAMES", "QUEEN_BODY_LIMIT", "AWS_REGION")

	env, err := qapp.ParseEnv[qapp.BaseEnvironment]()()
	require.NoError(t, err)
	assert.Equal(t, qapp.BaseEnvironment{
		Port:               3000,
		ServiceName:        "queen",
		LogLevel:           zapcore.InfoLevel,
		OtelExporter:       "none",
		ReadinessCheckPath: "/health",
		MetricsPath:        "/metrics",
		UploadDir:          "custom-storage",
		BodyLimit:          -1,
	}, env)
}

type customEnv struct {
	qapp.BaseEnvironment
	Greeting string `env:"GREETING,required"`
}

func TestParseEnvCustom(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("QUEEN_LOG_LEVEL", "debug")
	t.Setenv("QUEEN_UPLOAD_BUCKET", "uploads")
	t.Setenv("QUEEN_UPLOAD_UNIQUE_NAMES", "true")
	t.Setenv("QUEEN_BODY_LIMIT", "1024")
	t.Setenv("GREETING", "hi")

	env, err := qapp.ParseEnv[customEnv]()()
	require.NoError(t, err)
	assert.Equal(t, 8081, env.Port)
	assert.Equal(t, zapcore.DebugLevel, env.LogLevel)
	assert.Equal(t, "uploads", env.UploadBucket)
	assert.True(t, env.UploadUniqueNames)
	assert.Equal(t, int64(1024), env.BodyLimit)
	assert.Equal(t, "hi", env.Greeting)
}

func TestParseEnvErrors(t *testing.T) {
	t.Run("invalid log level", func(t *testing.T) {
		t.Setenv("QUEEN_LOG_LEVEL", "loud")
		_, err := qapp.ParseEnv[qapp.BaseEnvironment]()()
		require.ErrorContains(t, err, "failed to parse environment")
	})

	t.Run("missing required", func(t *testing.T) {
		unsetEnv(t, "GREETING")
		_, err := qapp.ParseEnv[customEnv]()()
		require.ErrorContains(t, err, "GREETING")
	})
}
