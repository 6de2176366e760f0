// Package plugin holds plugins for [queen.ServeMux.Use]: body parsers and a request logger.
package plugin

import (
	"bytes"
	"context"
	"unicode/utf8"

	"github.com/advdv/queen"
	"github.com/tidwall/gjson"
)

// JSONContentType is the exact content type the JSON plugin reacts to.
const JSONContentType = "application/json"

// JSON returns a plugin that decodes JSON request bodies into [queen.Request.Body]. Objects become
// map[string]any and numbers float64. Invalid UTF-8 is replaced with U+FFFD. A body that is not
// valid JSON leaves Body unset; the plugin never fails and never stops the chain.
func JSON() queen.Handler {
	return queen.HandlerFunc(func(_ context.Context, _ *queen.Response, r *queen.Request) (queen.Outcome, error) {
		if r.Header().Get("Content-Type") != JSONContentType || len(r.Buffer) == 0 {
			return queen.Continue, nil
		}

		buf := r.Buffer
		if !utf8.Valid(buf) {
			buf = bytes.ToValidUTF8(buf, []byte("\uFFFD"))
		}

		if gjson.ValidBytes(buf) {
			r.Body = gjson.ParseBytes(buf).Value()
		}

		return queen.Continue, nil
	})
}
