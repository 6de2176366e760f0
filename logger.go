package queen

import (
	"fmt"
	"log"
	"sync/atomic"
	"testing"
)

// Logger can be implemented to get informed about failures the dispatcher absorbs. Each request
// that ends in an internal error reaches LogUnhandledServeError exactly once.
type Logger interface {
	LogUnhandledServeError(method, path string, err error)
	LogResponseWriteError(err error)
}

func serveErrorLine(method, path string, err error) string {
	return fmt.Sprintf("queen: %s %s: unhandled server error: %s", method, path, err)
}

func writeErrorLine(err error) string {
	return fmt.Sprintf("queen: error while writing error envelope: %s", err)
}

type stdLogger struct{ *log.Logger }

func (l stdLogger) LogUnhandledServeError(method, path string, err error) {
	l.Print(serveErrorLine(method, path, err))
}

func (l stdLogger) LogResponseWriteError(err error) {
	l.Print(writeErrorLine(err))
}

// NewStdLogger logs to a standard library logger. A nil logger logs to [log.Default].
func NewStdLogger(l *log.Logger) Logger {
	if l == nil {
		l = log.Default()
	}
	return stdLogger{l}
}

// TestLogger implements [Logger] for tests. Lines go to the test log, and the exported counters
// let a test assert how often the dispatcher reported a failure. The counters are updated
// atomically; read them after the request completed.
type TestLogger struct {
	tb testing.TB

	NumLogUnhandledServeError int64
	NumLogResponseWriteError  int64
}

// NewTestLogger creates a TestLogger that writes through tb.
func NewTestLogger(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

func (l *TestLogger) LogUnhandledServeError(method, path string, err error) {
	atomic.AddInt64(&l.NumLogUnhandledServeError, 1)
	l.tb.Log(serveErrorLine(method, path, err))
}

func (l *TestLogger) LogResponseWriteError(err error) {
	atomic.AddInt64(&l.NumLogResponseWriteError, 1)
	l.tb.Log(writeErrorLine(err))
}

var _ Logger = &TestLogger{}
