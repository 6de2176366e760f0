package queen

import (
	"context"
	"net/http"
)

// Outcome tells the chain executor what to do after a handler returns.
type Outcome int

const (
	// Stop ends the chain. The handler is assumed to have finalized the response.
	Stop Outcome = iota
	// Continue runs the next handler in the chain.
	Continue
)

func (o Outcome) String() string {
	if o == Continue {
		return "continue"
	}
	return "stop"
}

// Handler serves a request as one step of a chain. Plugins and route handlers share this
// signature. Returning an error aborts the chain and results in an error envelope.
type Handler interface {
	ServeQueen(ctx context.Context, w *Response, r *Request) (Outcome, error)
}

// HandlerFunc allow casting a function to implement [Handler].
type HandlerFunc func(context.Context, *Response, *Request) (Outcome, error)

// ServeQueen implements the [Handler] interface.
func (f HandlerFunc) ServeQueen(ctx context.Context, w *Response, r *Request) (Outcome, error) {
	return f(ctx, w, r)
}

// FromStd adapts a standard library [http.Handler] into a terminal [Handler]. The std handler
// owns the response, so the chain always stops after it.
func FromStd(h http.Handler) Handler {
	return HandlerFunc(func(_ context.Context, w *Response, r *Request) (Outcome, error) {
		h.ServeHTTP(w, r.Raw())
		return Stop, nil
	})
}
