package qapp

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// Environment defines the interface that all environment configurations must implement.
// Embed BaseEnvironment in your struct to satisfy this interface.
type Environment interface {
	port() int
	serviceName() string
	logLevel() zapcore.Level
	otelExporter() string
	readinessCheckPath() string
	metricsPath() string
	uploadDir() string
	uploadBucket() string
	uploadUniqueNames() bool
	bodyLimit() int64
	awsRegion() string
}

// BaseEnvironment contains the environment variables every app reads.
// Embed this in your custom environment struct.
type BaseEnvironment struct {
	Port               int           `env:"PORT" envDefault:"3000"`
	ServiceName        string        `env:"QUEEN_SERVICE_NAME" envDefault:"queen"`
	LogLevel           zapcore.Level `env:"QUEEN_LOG_LEVEL" envDefault:"info"`
	OtelExporter       string        `env:"QUEEN_OTEL_EXPORTER" envDefault:"none"`
	ReadinessCheckPath string        `env:"QUEEN_READINESS_CHECK_PATH" envDefault:"/health"`
	MetricsPath        string        `env:"QUEEN_METRICS_PATH" envDefault:"/metrics"`
	UploadDir          string        `env:"QUEEN_UPLOAD_DIR" envDefault:"custom-storage"`
	// UploadBucket stores uploads in S3 instead of UploadDir when set.
	UploadBucket      string `env:"QUEEN_UPLOAD_BUCKET"`
	UploadUniqueNames bool   `env:"QUEEN_UPLOAD_UNIQUE_NAMES" envDefault:"false"`
	BodyLimit         int64  `env:"QUEEN_BODY_LIMIT" envDefault:"-1"`
	AWSRegion         string `env:"AWS_REGION"`
}

func (e BaseEnvironment) port() int                  { return e.Port }
func (e BaseEnvironment) serviceName() string        { return e.ServiceName }
func (e BaseEnvironment) logLevel() zapcore.Level    { return e.LogLevel }
func (e BaseEnvironment) otelExporter() string       { return e.OtelExporter }
func (e BaseEnvironment) readinessCheckPath() string { return e.ReadinessCheckPath }
func (e BaseEnvironment) metricsPath() string        { return e.MetricsPath }
func (e BaseEnvironment) uploadDir() string          { return e.UploadDir }
func (e BaseEnvironment) uploadBucket() string       { return e.UploadBucket }
func (e BaseEnvironment) uploadUniqueNames() bool    { return e.UploadUniqueNames }
func (e BaseEnvironment) bodyLimit() int64           { return e.BodyLimit }
func (e BaseEnvironment) awsRegion() string          { return e.AWSRegion }

var _ Environment = BaseEnvironment{}

// ParseEnv parses environment variables into the given Environment type.
func ParseEnv[E Environment]() func() (E, error) {
	return func() (e E, err error) {
		if err := env.Parse(&e); err != nil {
			return e, errors.Wrap(err, "failed to parse environment")
		}
		return e, nil
	}
}
