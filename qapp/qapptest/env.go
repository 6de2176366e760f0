package qapptest

import (
	"strconv"
	"testing"
)

// Env provides a chainable builder for setting [qapp.BaseEnvironment] env vars via t.Setenv.
// Create one with [SetBaseEnv].
type Env struct {
	t testing.TB
}

// SetBaseEnv sets all [qapp.BaseEnvironment] env vars to test defaults. Port is required because
// each test must use a unique port to avoid collisions. Uploads go to a fresh temporary directory.
//
// Defaults:
//   - QUEEN_SERVICE_NAME: "test"
//   - QUEEN_LOG_LEVEL: "error"
//   - QUEEN_OTEL_EXPORTER: "none"
//   - QUEEN_READINESS_CHECK_PATH: "/health"
//   - QUEEN_METRICS_PATH: "/metrics"
//   - QUEEN_UPLOAD_DIR: t.TempDir()
//   - AWS_REGION: "us-east-1"
//   - AWS_ACCESS_KEY_ID: "test"
//   - AWS_SECRET_ACCESS_KEY: "test"
func SetBaseEnv(t testing.TB, port int) *Env {
	t.Helper()
	t.Setenv("PORT", strconv.Itoa(port))
	t.Setenv("QUEEN_SERVICE_NAME", "test")
	t.Setenv("QUEEN_LOG_LEVEL", "error")
	t.Setenv("QUEEN_OTEL_EXPORTER", "none")
	t.Setenv("QUEEN_READINESS_CHECK_PATH", "/health")
	t.Setenv("QUEEN_METRICS_PATH", "/metrics")
	t.Setenv("QUEEN_UPLOAD_DIR", t.TempDir())
	t.Setenv("QUEEN_UPLOAD_BUCKET", "")
	t.Setenv("QUEEN_UPLOAD_UNIQUE_NAMES", "false")
	t.Setenv("QUEEN_BODY_LIMIT", "-1")
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")
	return &Env{t: t}
}

// ServiceName overrides QUEEN_SERVICE_NAME.
func (e *Env) ServiceName(name string) *Env {
	e.t.Helper()
	e.t.Setenv("QUEEN_SERVICE_NAME", name)
	return e
}

// ReadinessCheckPath overrides QUEEN_READINESS_CHECK_PATH.
func (e *Env) ReadinessCheckPath(path string) *Env {
	e.t.Helper()
	e.t.Setenv("QUEEN_READINESS_CHECK_PATH", path)
	return e
}

// UploadDir overrides QUEEN_UPLOAD_DIR.
func (e *Env) UploadDir(dir string) *Env {
	e.t.Helper()
	e.t.Setenv("QUEEN_UPLOAD_DIR", dir)
	return e
}

// UniqueNames sets QUEEN_UPLOAD_UNIQUE_NAMES to true.
func (e *Env) UniqueNames() *Env {
	e.t.Helper()
	e.t.Setenv("QUEEN_UPLOAD_UNIQUE_NAMES", "true")
	return e
}

// BodyLimit overrides QUEEN_BODY_LIMIT.
func (e *Env) BodyLimit(n int64) *Env {
	e.t.Helper()
	e.t.Setenv("QUEEN_BODY_LIMIT", strconv.FormatInt(n, 10))
	return e
}
