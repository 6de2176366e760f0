package queen

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
)

// Registration errors. They are returned while routes and plugins are being set up and never
// surface while serving a request.
var (
	// ErrPattern is returned when a route path contains a segment that does not satisfy the
	// segment grammar.
	ErrPattern = errors.New("invalid path pattern")
	// ErrEmptyHandler is returned when a route or plugin is registered without any handler.
	ErrEmptyHandler = errors.New("at least one handler is required")
	// ErrConflict is returned when a registration collides with an earlier one: a plugin after a
	// route, or two dynamic routes that compile to the same pattern.
	ErrConflict = errors.New("registration conflict")
	// ErrSealed is returned when registering on a mux that has already been built. It is marked
	// as an [ErrConflict].
	ErrSealed = errors.Mark(errors.New("mux is sealed"), ErrConflict)
)

// Code is an error code that mirrors the http status codes. Handlers can return an [*Error] to
// choose the status of the error envelope.
type Code int

const (
	CodeUnknown               Code = 0
	CodeBadRequest            Code = http.StatusBadRequest            // RFC 9110, 15.5.1
	CodeUnauthorized          Code = http.StatusUnauthorized          // RFC 9110, 15.5.2
	CodeForbidden             Code = http.StatusForbidden             // RFC 9110, 15.5.4
	CodeNotFound              Code = http.StatusNotFound              // RFC 9110, 15.5.5
	CodeMethodNotAllowed      Code = http.StatusMethodNotAllowed      // RFC 9110, 15.5.6
	CodeConflict              Code = http.StatusConflict              // RFC 9110, 15.5.10
	CodeRequestEntityTooLarge Code = http.StatusRequestEntityTooLarge // RFC 9110, 15.5.14
	CodeUnsupportedMediaType  Code = http.StatusUnsupportedMediaType  // RFC 9110, 15.5.16
	CodeUnprocessableEntity   Code = http.StatusUnprocessableEntity   // RFC 9110, 15.5.21
	CodeTooManyRequests       Code = http.StatusTooManyRequests       // RFC 6585, 4

	CodeInternalServerError Code = http.StatusInternalServerError // RFC 9110, 15.6.1
	CodeNotImplemented      Code = http.StatusNotImplemented      // RFC 9110, 15.6.2
	CodeServiceUnavailable  Code = http.StatusServiceUnavailable  // RFC 9110, 15.6.4
)

// message returns the text used in the JSON error envelope for the code.
func (c Code) message() string {
	text := http.StatusText(int(c))
	if text == "" {
		return "internal server error"
	}

	return strings.ToLower(text)
}

// Error describes an http error.
type Error struct {
	code Code
	err  error
}

// NewError inits a new error given the error code.
func NewError(c Code, underlying error) *Error {
	return &Error{c, underlying}
}

func (e *Error) Code() Code    { return e.code }
func (e *Error) Unwrap() error { return e.err }
func (e *Error) Error() string {
	status := http.StatusText(int(e.Code()))
	if status == "" {
		status = "Unknown"
	}

	return fmt.Sprintf("%s: %s", status, e.err.Error())
}

// CodeOf returns the error's status code if it is or wraps an [*Error] and
// [CodeUnknown] otherwise.
func CodeOf(err error) Code {
	if herr, ok := asError(err); ok {
		return herr.Code()
	}
	return CodeUnknown
}

func asError(err error) (*Error, bool) {
	var herr *Error
	ok := errors.As(err, &herr)
	return herr, ok
}
