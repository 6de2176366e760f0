package queen_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/advdv/queen"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestStdLogger(t *testing.T) {
	var buf bytes.Buffer
	logs := queen.NewStdLogger(log.New(&buf, "", 0))

	logs.LogUnhandledServeError("GET", "/users/1/", errors.New("boom"))
	logs.LogResponseWriteError(errors.New("broken pipe"))

	assert.Equal(t, "queen: GET /users/1/: unhandled server error: boom\n"+
		"queen: error while writing error envelope: broken pipe\n", buf.String())
}

func TestTestLoggerCounts(t *testing.T) {
	logs := queen.NewTestLogger(t)

	logs.LogUnhandledServeError("POST", "/", errors.New("a"))
	logs.LogUnhandledServeError("POST", "/", errors.New("b"))
	logs.LogResponseWriteError(errors.New("c"))

	assert.Equal(t, int64(2), logs.NumLogUnhandledServeError)
	assert.Equal(t, int64(1), logs.NumLogResponseWriteError)
}
