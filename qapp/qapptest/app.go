// Package qapptest provides test helpers for qapp applications.
//
// It constructs the identical DI graph as [qapp.NewApp] but uses [fxtest.App], which fails the
// test immediately on DI errors.
//
//	qapptest.SetBaseEnv(t, 18081)
//	app := qapptest.New[qapp.BaseEnvironment](t, routing)
//	app.RequireStart()
//	t.Cleanup(app.RequireStop)
package qapptest

import (
	"testing"

	"github.com/advdv/queen/qapp"
	"go.uber.org/fx/fxtest"
)

// App embeds *fxtest.App for testing qapp applications.
type App struct {
	*fxtest.App
}

// New creates a test app with the same DI graph as [qapp.NewApp].
func New[E qapp.Environment](t testing.TB, routing any, opts ...qapp.Option) *App {
	return &App{App: fxtest.New(t, qapp.FxOptions[E](routing, opts...)...)}
}
