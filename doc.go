// Package queen provides a small HTTP dispatch engine: plugins that run for every request, a router
// with static and parameterized routes, and handler chains that short-circuit.
//
// # Overview
//
// Routes and plugins are registered on a [ServeMux] during startup. [ServeMux.Build] seals it and
// returns a [Server] that implements http.Handler:
//
//	mux := queen.NewServeMux()
//	if err := mux.Use(plugin.JSON()); err != nil {
//	    return err
//	}
//	if err := mux.Get("/users/:id", queen.HandlerFunc(getUser)); err != nil {
//	    return err
//	}
//	http.ListenAndServe(":3000", mux.Build())
//
// # Handler Signature
//
// Plugins and route handlers share one signature:
//
//	func(ctx context.Context, w *queen.Response, r *queen.Request) (queen.Outcome, error)
//
// A handler returns [Continue] to pass the request to the next handler of its chain, or [Stop]
// when it finalized the response. Returning an error aborts the chain. Handlers run strictly one
// after another, so a later handler can rely on state set by an earlier one, such as the parsed
// body or route parameters.
//
// # Paths and Matching
//
// Paths are lower-cased and normalized to start and end with a slash before registration and
// before matching, so "/Users/Profile" and "/users/profile/" are the same route. Each segment must
// match [a-z0-9][a-z0-9-]*[a-z0-9]. A segment that starts with a colon is a named parameter:
//
//	mux.Get("/users/:id", showUser)       // dynamic, one static segment
//	mux.Get("/users/profile", showProfile) // static
//
// An exact static route always wins. Among dynamic routes the one with the most static segments
// wins, and routes that are equally specific resolve to the one registered first. Two dynamic
// routes with the same method that compile to the same pattern are rejected with [ErrConflict].
//
// # Dispatching
//
// For every request the [Server]:
//
//   - reads the complete body into [Request.Buffer]
//   - runs all plugins, also for requests that will not match a route
//   - resolves the route and runs its handlers
//   - answers unmatched requests with 404 and {"message":"not found"}
//
// Errors and panics from plugins or handlers are logged once through the [Logger] and answered
// with 500 and {"message":"internal server error"}. Handlers can choose a different status by
// returning an [*Error] created with [NewError]. Output that a handler already wrote before
// failing is not rolled back.
//
// # Named Routes
//
// Routes can be named for URL generation, avoiding hardcoded paths:
//
//	mux.Get(mux.Named("user", "/users/:id"), showUser)
//	srv := mux.Build()
//	url, err := srv.Reverse("user", "42") // returns "/users/42/"
package queen
