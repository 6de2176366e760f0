package qapp

import (
	"net/http"

	"github.com/advdv/queen"
	"github.com/advdv/queen/storage"
	"github.com/carlmjohnson/requests"
)

// Runtime provides access to app-scoped dependencies. Request it in the routing function or in
// handler constructors provided with [WithFx]:
//
//	func NewHandlers(rt *qapp.Runtime[Env]) *Handlers {
//	    return &Handlers{rt: rt}
//	}
type Runtime[E Environment] struct {
	env       E
	mux       *queen.ServeMux
	store     storage.Store
	transport http.RoundTripper
}

// NewRuntime creates a new Runtime with the given dependencies.
func NewRuntime[E Environment](env E, mux *queen.ServeMux, store storage.Store, transport http.RoundTripper) *Runtime[E] {
	return &Runtime[E]{env: env, mux: mux, store: store, transport: transport}
}

// Env returns the environment configuration.
func (r *Runtime[E]) Env() E {
	return r.env
}

// Reverse returns the URL for a named route with the given parameters.
func (r *Runtime[E]) Reverse(name string, params ...string) (string, error) {
	return r.mux.Reverse(name, params...)
}

// Store returns the store uploaded files are written to.
func (r *Runtime[E]) Store() storage.Store {
	return r.store
}

// NewRequest returns a fresh request builder whose transport traces outbound calls:
//
//	err := rt.NewRequest().BaseURL("https://example.com").Path("/items").ToJSON(&items).Fetch(ctx)
func (r *Runtime[E]) NewRequest() *requests.Builder {
	return newRequestBuilder(r.transport)
}
