package main

import (
	"context"
	"path/filepath"

	"github.com/advdv/queen"
	"github.com/advdv/queen/qapp"
	"go.uber.org/zap"
)

// Handlers serves the demo routes.
type Handlers struct {
	publicDir string
}

func NewHandlers(rt *qapp.Runtime[Env]) *Handlers {
	return &Handlers{publicDir: rt.Env().PublicDir}
}

func routing(m *queen.ServeMux, h *Handlers) error {
	for _, route := range []struct {
		method, path string
		handler      queen.HandlerFunc
	}{
		{"GET", "/", h.Index},
		{"GET", m.Named("user", "/users/:id"), h.User},
		// static, so it is never captured by the route above
		{"GET", "/users/profile", h.Profile},
		{"POST", "/upload", h.Echo},
		{"POST", "/json", h.Echo},
	} {
		if err := m.Handle(route.method, route.path, route.handler); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handlers) Index(_ context.Context, w *queen.Response, _ *queen.Request) (queen.Outcome, error) {
	return queen.Stop, w.SendFile(filepath.Join(h.publicDir, "index.html"))
}

func (h *Handlers) User(_ context.Context, w *queen.Response, r *queen.Request) (queen.Outcome, error) {
	return queen.Stop, w.SendString("Hello user " + r.Param("id"))
}

func (h *Handlers) Profile(_ context.Context, w *queen.Response, _ *queen.Request) (queen.Outcome, error) {
	return queen.Stop, w.SendString("user's profile page")
}

// Echo answers with the parsed body and any uploaded files.
func (h *Handlers) Echo(ctx context.Context, w *queen.Response, r *queen.Request) (queen.Outcome, error) {
	data := r.Body
	if data == nil {
		data = map[string]any{}
	}

	qapp.Log(ctx).Debug("echo", zap.Int("files", len(r.Files)))
	return queen.Stop, w.JSON(map[string]any{
		"message": "ok",
		"data":    data,
		"files":   r.Files,
	})
}
