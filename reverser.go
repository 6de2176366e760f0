package queen

import (
	"net/url"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Reverser keeps track of named route paths and allows building URLS.
type Reverser struct {
	paths map[string]string
}

// NewReverser inits the reverser.
func NewReverser() *Reverser {
	return &Reverser{make(map[string]string)}
}

// Reverse builds the url of the named route, substituting the named segments in order.
func (r Reverser) Reverse(name string, vals ...string) (string, error) {
	path, ok := r.paths[name]
	if !ok {
		names := lo.Keys(r.paths)
		sort.Strings(names)
		return "", errors.Newf("no route named: %q, got: %v", name, names)
	}

	segments := segmentsOf(path)
	params := lo.CountBy(segments, func(s string) bool { return strings.HasPrefix(s, ":") })
	switch {
	case len(vals) < params:
		return "", errors.Newf("not enough values for %q: want %d, got %d", name, params, len(vals))
	case len(vals) > params:
		return "", errors.Newf("too many values for %q: want %d, got %d", name, params, len(vals))
	}

	var b strings.Builder
	b.WriteString("/")
	for _, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			seg, vals = url.PathEscape(vals[0]), vals[1:]
		}

		b.WriteString(seg)
		b.WriteString("/")
	}

	return b.String(), nil
}

// Named is a convenience method that panics if naming the path fails. It returns the path so it
// can be used inline while registering.
func (r Reverser) Named(name, path string) string {
	path, err := r.NamedPath(name, path)
	if err != nil {
		panic("queen: " + err.Error())
	}

	return path
}

// NamedPath records path under name while returning it as well.
func (r Reverser) NamedPath(name, path string) (string, error) {
	if _, exists := r.paths[name]; exists {
		return path, errors.Newf("route with name %q already exists", name)
	}

	if strings.TrimSpace(path) == "" {
		return path, errors.Wrap(ErrPattern, "empty path")
	}

	r.paths[name] = NormalizePath(path)

	return path, nil
}
