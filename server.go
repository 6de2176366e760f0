package queen

import (
	"encoding/json"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Server dispatches requests to the plugins and routes of a built [ServeMux]. It holds no mutable
// state and serves any number of requests concurrently.
type Server struct {
	logs      Logger
	bodyLimit int64
	plugins   []Handler
	router    *Router
	reverser  *Reverser
}

type envelope struct {
	Message string `json:"message"`
}

// ServeHTTP makes the server implement the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := NewResponse(w)
	if err := s.dispatch(res, r); err != nil {
		s.fail(res, r, err)
	}
}

// Resolve exposes route resolution of the server's route table.
func (s *Server) Resolve(method, path string) (Match, bool) {
	return s.router.Resolve(method, path)
}

// Routes lists the registered routes in registration order.
func (s *Server) Routes() []Route {
	return s.router.Routes()
}

// Reverse returns the url based on the name and parameter values.
func (s *Server) Reverse(name string, vals ...string) (string, error) {
	return s.reverser.Reverse(name, vals...)
}

func (s *Server) dispatch(res *Response, r *http.Request) (err error) {
	defer func() {
		if e := recover(); e != nil {
			if e == http.ErrAbortHandler { //nolint:errorlint
				panic(e)
			}

			err = errors.Newf("recovered: %v", e)
		}
	}()

	if s.bodyLimit >= 0 && r.Body != nil {
		r.Body = http.MaxBytesReader(res.Unwrap(), r.Body, s.bodyLimit)
	}

	req, err := NewRequest(r)
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return NewError(CodeRequestEntityTooLarge, err)
		}
		return err
	}

	ctx := r.Context()
	if out, err := Run(ctx, res, req, s.plugins...); err != nil || out == Stop {
		return errors.Wrap(err, "plugins")
	}

	match, ok := s.router.Resolve(req.Method(), req.Path)
	if !ok {
		return s.writeEnvelope(res, CodeNotFound)
	}

	req.Params = match.Params
	if _, err := Run(ctx, res, req, match.Handlers...); err != nil {
		return errors.Wrapf(err, "%s %s", match.Route.Method, match.Route.Path)
	}

	return nil
}

// fail turns an error from dispatching into an error envelope. Output that was already written
// is left as is.
func (s *Server) fail(res *Response, r *http.Request, err error) {
	code := CodeOf(err)
	if code == CodeUnknown || code >= CodeInternalServerError {
		s.logs.LogUnhandledServeError(r.Method, r.URL.Path, err)
	}

	if code == CodeUnknown {
		code = CodeInternalServerError
	}

	if res.Written() {
		return
	}

	if err := s.writeEnvelope(res, code); err != nil {
		s.logs.LogResponseWriteError(err)
	}
}

func (s *Server) writeEnvelope(res *Response, code Code) error {
	data, err := json.Marshal(envelope{Message: code.message()})
	if err != nil {
		return errors.Wrap(err, "encode envelope")
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(int(code))
	return res.Send(data)
}
