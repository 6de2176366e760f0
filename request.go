package queen

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Query holds the decomposed query string. Keys keep every value in the order they appeared.
type Query map[string][]string

// Get returns the first value for the key, or an empty string.
func (q Query) Get(key string) string {
	if vs := q[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Value returns a string when the key was given once and the ordered list when it repeated.
// It returns nil for unknown keys.
func (q Query) Value(key string) any {
	vs, ok := q[key]
	switch {
	case !ok:
		return nil
	case len(vs) == 1:
		return vs[0]
	default:
		return vs
	}
}

// MarshalJSON renders single values as scalars and repeated values as lists.
func (q Query) MarshalJSON() ([]byte, error) {
	return json.Marshal(lo.MapValues(q, func(_ []string, k string) any { return q.Value(k) }))
}

// File is a multipart part that was written to durable storage.
type File struct {
	Name        string `json:"name"`
	Filename    string `json:"filename"`
	ContentType string `json:"content-type,omitempty"`
	Path        string `json:"path"`
}

// Request holds the transport request together with the data derived by the dispatcher,
// the router and body parsing plugins.
type Request struct {
	raw *http.Request

	// Path is the normalized path: lower-cased and always starting and ending with "/".
	Path string
	// Query is the decomposed query string.
	Query Query
	// Params holds the named segments of a dynamic route. It is empty for static routes.
	Params map[string]string
	// Buffer is the complete request body.
	Buffer []byte
	// Body is set by body parsing plugins. It stays nil when no plugin understood the body.
	Body any
	// Files lists the multipart files that were persisted for this request.
	Files []File
}

// NewRequest reads the body of r until the stream completes and returns the structured request.
// A read failure is returned as is, callers treat it as a transport failure.
func NewRequest(r *http.Request) (*Request, error) {
	var buf []byte
	if r.Body != nil {
		var err error
		if buf, err = io.ReadAll(r.Body); err != nil {
			return nil, errors.Wrap(err, "read request body")
		}
	}

	return &Request{
		raw:    r,
		Path:   NormalizePath(r.URL.Path),
		Query:  decomposeQuery(r.URL.RawQuery),
		Params: map[string]string{},
		Buffer: buf,
	}, nil
}

// Raw returns the underlying transport request.
func (r *Request) Raw() *http.Request { return r.raw }

// Method returns the request method.
func (r *Request) Method() string { return r.raw.Method }

// Header returns the request headers.
func (r *Request) Header() http.Header { return r.raw.Header }

// Context returns the context of the transport request.
func (r *Request) Context() context.Context { return r.raw.Context() }

// Param returns the value of a named route segment.
func (r *Request) Param(name string) string { return r.Params[name] }

// NormalizePath lower-cases p and makes sure it starts and ends with a slash.
func NormalizePath(p string) string {
	p = strings.ToLower(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

// decomposeQuery splits the raw query like url.ParseQuery but keeps going over malformed pairs,
// which are skipped.
func decomposeQuery(raw string) Query {
	q := Query{}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}

		key, val, _ := strings.Cut(pair, "=")
		key, err1 := url.QueryUnescape(key)
		val, err2 := url.QueryUnescape(val)
		if err1 != nil || err2 != nil || key == "" {
			continue
		}

		q[key] = append(q[key], val)
	}

	return q
}
