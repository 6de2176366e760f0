package queen

import (
	"encoding/json"
	"io"
	"net/http"
	"os"

	"github.com/cockroachdb/errors"
)

// Response holds the transport response writer and adds send helpers. It also implements
// [http.ResponseWriter] so standard library handlers can write to it. Every helper returns only
// after the underlying write completed.
type Response struct {
	w       http.ResponseWriter
	status  int
	written bool
}

// NewResponse wraps the transport response writer.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w, status: http.StatusOK}
}

// Header returns the response headers.
func (r *Response) Header() http.Header { return r.w.Header() }

// WriteHeader sends the status line. Only the first call has effect.
func (r *Response) WriteHeader(code int) {
	if r.written {
		return
	}

	r.status, r.written = code, true
	r.w.WriteHeader(code)
}

// Write writes raw bytes, sending a 200 status first when none was sent.
func (r *Response) Write(p []byte) (int, error) {
	r.written = true
	return r.w.Write(p)
}

// Unwrap returns the underlying writer for [http.ResponseController].
func (r *Response) Unwrap() http.ResponseWriter { return r.w }

// Status returns the status sent, or 200 when nothing was sent yet.
func (r *Response) Status() int { return r.status }

// Written reports whether the status line or any body bytes have been sent.
func (r *Response) Written() bool { return r.written }

// Send writes raw bytes.
func (r *Response) Send(p []byte) error {
	if _, err := r.Write(p); err != nil {
		return errors.Wrap(err, "write response")
	}
	return nil
}

// SendString writes text.
func (r *Response) SendString(s string) error {
	return r.Send([]byte(s))
}

// JSON serializes v, sets a JSON content type and writes it.
func (r *Response) JSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encode json response")
	}

	r.Header().Set("Content-Type", "application/json")
	return r.Send(data)
}

// SendFile streams the file at path to the response. The file is closed on both outcomes.
func (r *Response) SendFile(path string) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %q", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %q", path)
		}
	}()

	if _, err := io.Copy(r, f); err != nil {
		return errors.Wrapf(err, "send %q", path)
	}
	return nil
}
