package qapp

import (
	"github.com/advdv/queen"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a JSON zap logger at the level of QUEEN_LOG_LEVEL.
func NewLogger(env Environment) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(env.logLevel())
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

type zapLogger struct{ *zap.Logger }

func (l zapLogger) LogUnhandledServeError(method, path string, err error) {
	l.Logger.Error("unhandled server error",
		zap.String("method", method),
		zap.String("path", path),
		zap.Error(err))
}

func (l zapLogger) LogResponseWriteError(err error) {
	l.Logger.Error("error while writing error response", zap.Error(err))
}

func newZapQueenLogger(l *zap.Logger) queen.Logger {
	return zapLogger{l.Named("queen").Named("qapp")}
}
