package queen

import (
	"github.com/cockroachdb/errors"
)

// methods are the request methods routes can be registered for.
var methods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "PATCH": true, "DELETE": true,
}

// ServeMux collects plugins and routes during startup. Calling [ServeMux.Build] turns it into an
// immutable [Server]; the mux rejects any registration after that.
type ServeMux struct {
	RouteGroup

	logs      Logger
	bodyLimit int64
	router    *Router
	reverser  *Reverser
	sealed    bool
	plugins   struct {
		captured bool
		buffered []Handler
	}
}

// Option configures a ServeMux.
type Option func(*ServeMux)

// WithLogger sets the logger for failures the server absorbs.
func WithLogger(l Logger) Option {
	return func(m *ServeMux) { m.logs = l }
}

// WithBodyLimit caps the number of body bytes read per request. Negative means unlimited.
func WithBodyLimit(n int64) Option {
	return func(m *ServeMux) { m.bodyLimit = n }
}

// NewServeMux creates a new ServeMux. By default it logs to the standard logger and reads
// request bodies without a limit.
func NewServeMux(opts ...Option) *ServeMux {
	m := &ServeMux{
		logs:      NewStdLogger(nil),
		bodyLimit: -1,
		router:    NewRouter(),
		reverser:  NewReverser(),
	}
	m.RouteGroup = RouteGroup{mux: m}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Use registers plugins that run for every request, in order, before route resolution. Plugins
// can only be registered before the first route.
func (m *ServeMux) Use(plugins ...Handler) error {
	if m.sealed {
		return ErrSealed
	}

	if m.plugins.captured {
		return errors.Wrap(ErrConflict, "cannot register a plugin after a route has been registered")
	}

	if len(plugins) == 0 {
		return errors.Wrap(ErrEmptyHandler, "plugin")
	}

	m.plugins.buffered = append(m.plugins.buffered, plugins...)
	return nil
}

// Named records the path under name for reversing and returns it, so it can be used inline:
//
//	mux.Get(mux.Named("user", "/users/:id"), getUser)
func (m *ServeMux) Named(name, path string) string {
	return m.reverser.Named(name, path)
}

// Reverse returns the url based on the name and parameter values. It is usable before and after
// [ServeMux.Build].
func (m *ServeMux) Reverse(name string, vals ...string) (string, error) {
	return m.reverser.Reverse(name, vals...)
}

// Build seals the mux and returns the server that dispatches to its routes.
func (m *ServeMux) Build() *Server {
	m.sealed = true

	return &Server{
		logs:      m.logs,
		bodyLimit: m.bodyLimit,
		plugins:   append([]Handler(nil), m.plugins.buffered...),
		router:    m.router,
		reverser:  m.reverser,
	}
}

func (m *ServeMux) handle(method, path string, hs ...Handler) error {
	if m.sealed {
		return ErrSealed
	}

	if !methods[method] {
		return errors.Newf("unsupported method %q", method)
	}

	if err := m.router.Register(method, path, hs...); err != nil {
		return err
	}

	m.plugins.captured = true
	return nil
}
