package queen

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// segmentRx is the grammar every static segment and every parameter name must satisfy.
var segmentRx = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$`)

// captureGroup replaces each dynamic segment in a compiled pattern.
const captureGroup = `([^/]+)`

type routeKey struct{ method, path string }

// dynamicRoute is a route with at least one named segment.
type dynamicRoute struct {
	method      string
	path        string
	pattern     *regexp.Regexp
	specificity int
	names       []*string // one per segment, nil for static segments
	handlers    []Handler
}

// Route describes a registered route.
type Route struct {
	Method string
	Path   string
}

// Match is the result of resolving a request against the route table.
type Match struct {
	Route    Route
	Handlers []Handler
	Params   map[string]string
}

// Router owns the static and dynamic route tables. It is not safe for concurrent registration;
// once registration is done it may be resolved from any number of goroutines.
type Router struct {
	static  map[routeKey][]Handler
	order   []Route
	dynamic []*dynamicRoute
}

// NewRouter inits an empty router.
func NewRouter() *Router {
	return &Router{static: map[routeKey][]Handler{}}
}

// Register adds a route. Static routes that are registered again get the extra handlers appended,
// a dynamic route that compiles to an existing pattern for the same method is a conflict.
func (rt *Router) Register(method, path string, hs ...Handler) error {
	if len(hs) == 0 {
		return errors.Wrapf(ErrEmptyHandler, "%s %s", method, path)
	}

	path = NormalizePath(path)
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if path == "/" {
		segments = nil
	}

	var (
		names    = make([]*string, 0, len(segments))
		compiled strings.Builder
		dynamic  int
	)

	compiled.WriteString("^/")
	for _, seg := range segments {
		name, isParam := strings.CutPrefix(seg, ":")
		if !segmentRx.MatchString(name) {
			return errors.Wrapf(ErrPattern, "segment %q of %q", seg, path)
		}

		if isParam {
			names = append(names, &name)
			compiled.WriteString(captureGroup)
			dynamic++
		} else {
			names = append(names, nil)
			compiled.WriteString(regexp.QuoteMeta(seg))
		}
		compiled.WriteString("/")
	}
	compiled.WriteString("$")

	if dynamic == 0 {
		key := routeKey{method, path}
		if _, exists := rt.static[key]; !exists {
			rt.order = append(rt.order, Route{method, path})
		}

		rt.static[key] = append(rt.static[key], hs...)
		return nil
	}

	expr := compiled.String()
	for _, dr := range rt.dynamic {
		if dr.method == method && dr.pattern.String() == expr {
			return errors.Wrapf(ErrConflict, "%s %s compiles to the same pattern as %s", method, path, dr.path)
		}
	}

	rt.dynamic = append(rt.dynamic, &dynamicRoute{
		method:      method,
		path:        path,
		pattern:     regexp.MustCompile(expr),
		specificity: len(segments) - dynamic,
		names:       names,
		handlers:    hs,
	})
	rt.order = append(rt.order, Route{method, path})

	return nil
}

// Resolve finds the handler chain for the method and path. An exact static route always wins.
// Otherwise the dynamic route with the most static segments wins, and among equally specific
// routes the one registered first.
func (rt *Router) Resolve(method, path string) (Match, bool) {
	path = NormalizePath(path)
	if hs, ok := rt.static[routeKey{method, path}]; ok {
		return Match{Route: Route{method, path}, Handlers: hs, Params: map[string]string{}}, true
	}

	var (
		best   *dynamicRoute
		values []string
	)

	for _, dr := range rt.dynamic {
		if dr.method != method || (best != nil && dr.specificity <= best.specificity) {
			continue
		}

		if m := dr.pattern.FindStringSubmatch(path); m != nil {
			best, values = dr, m[1:]
		}
	}

	if best == nil {
		return Match{}, false
	}

	params := make(map[string]string, len(values))
	i := 0
	for _, name := range best.names {
		if name == nil {
			continue
		}

		params[*name] = values[i]
		i++
	}

	return Match{Route: Route{method, best.path}, Handlers: best.handlers, Params: params}, true
}

// Routes lists the registered routes in registration order.
func (rt *Router) Routes() []Route {
	return append([]Route(nil), rt.order...)
}

// segmentsOf returns the segments of a registered route path, used to build urls from it.
func segmentsOf(path string) []string {
	if path = strings.Trim(path, "/"); path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
