package queen

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Run executes the handlers in order against the request and response. The next handler only
// starts after the previous one returned [Continue]; the first [Stop] or error ends the chain.
// Run returns [Continue] when every handler asked to continue, so callers can tell a fully
// executed chain from a short-circuited one.
func Run(ctx context.Context, w *Response, r *Request, hs ...Handler) (Outcome, error) {
	for i, h := range hs {
		out, err := h.ServeQueen(ctx, w, r)
		if err != nil {
			return Stop, errors.Wrapf(err, "handler %d", i)
		}

		if out != Continue {
			return Stop, nil
		}
	}

	return Continue, nil
}
