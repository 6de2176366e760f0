package queen

import (
	"net/http"
	"strings"
)

// RouteGroup registers routes below a shared path prefix. The [ServeMux] itself is the group
// with an empty prefix.
type RouteGroup struct {
	mux    *ServeMux
	prefix string
}

// Group returns a group for routes below prefix. Groups nest.
func (g *RouteGroup) Group(prefix string) *RouteGroup {
	return &RouteGroup{mux: g.mux, prefix: joinPath(g.prefix, prefix)}
}

// Handle registers handlers for the method and path.
func (g *RouteGroup) Handle(method, path string, hs ...Handler) error {
	return g.mux.handle(method, joinPath(g.prefix, path), hs...)
}

// Get registers handlers for GET requests to path.
func (g *RouteGroup) Get(path string, hs ...Handler) error {
	return g.Handle(http.MethodGet, path, hs...)
}

// Post registers handlers for POST requests to path.
func (g *RouteGroup) Post(path string, hs ...Handler) error {
	return g.Handle(http.MethodPost, path, hs...)
}

// Put registers handlers for PUT requests to path.
func (g *RouteGroup) Put(path string, hs ...Handler) error {
	return g.Handle(http.MethodPut, path, hs...)
}

// Patch registers handlers for PATCH requests to path.
func (g *RouteGroup) Patch(path string, hs ...Handler) error {
	return g.Handle(http.MethodPatch, path, hs...)
}

// Delete registers handlers for DELETE requests to path.
func (g *RouteGroup) Delete(path string, hs ...Handler) error {
	return g.Handle(http.MethodDelete, path, hs...)
}

func joinPath(prefix, path string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return path
	}

	return "/" + prefix + "/" + strings.TrimPrefix(path, "/")
}
