package plugin

import (
	"context"
	"time"

	"github.com/advdv/queen"
	"go.uber.org/zap"
)

// RequestLog returns a plugin that logs every request before it is routed.
func RequestLog(logs *zap.Logger) queen.Handler {
	return queen.HandlerFunc(func(_ context.Context, _ *queen.Response, r *queen.Request) (queen.Outcome, error) {
		logs.Info("request",
			zap.String("method", r.Method()),
			zap.String("url", r.Raw().URL.String()),
			zap.Time("time", time.Now()))

		return queen.Continue, nil
	})
}
