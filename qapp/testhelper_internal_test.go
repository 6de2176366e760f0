package qapp

import "go.uber.org/zap/zapcore"

type testEnv struct {
	level      zapcore.Level
	otelExp    string
	uploadDirV string
	bucket     string
	unique     bool
}

func (e testEnv) port() int                  { return 8080 }
func (e testEnv) serviceName() string        { return "test" }
func (e testEnv) logLevel() zapcore.Level    { return e.level }
func (e testEnv) readinessCheckPath() string { return "/health" }
func (e testEnv) metricsPath() string        { return "/metrics" }
func (e testEnv) uploadDir() string          { return e.uploadDirV }
func (e testEnv) uploadBucket() string       { return e.bucket }
func (e testEnv) uploadUniqueNames() bool    { return e.unique }
func (e testEnv) bodyLimit() int64           { return -1 }
func (e testEnv) awsRegion() string          { return "us-east-1" }
func (e testEnv) otelExporter() string {
	if e.otelExp == "" {
		return "none"
	}
	return e.otelExp
}

var _ Environment = testEnv{}
