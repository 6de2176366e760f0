package qapp

import (
	"context"
	"net/http"

	"github.com/advdv/queen"
	"github.com/advdv/queen/storage"
	"go.uber.org/fx"
)

// App wraps an fx.App for lifecycle management.
type App struct {
	app *fx.App
}

// AppConfig holds configuration for the app.
type AppConfig struct {
	ServerConfig
	FxOptions []fx.Option
}

// Option configures the App.
type Option func(*AppConfig)

// WithFx adds fx options for dependency injection.
func WithFx(fxOpts ...fx.Option) Option {
	return func(c *AppConfig) {
		c.FxOptions = append(c.FxOptions, fxOpts...)
	}
}

// WithPlugins registers plugins that run after the built-in ones.
func WithPlugins(plugins ...queen.Handler) Option {
	return func(c *AppConfig) {
		c.Plugins = append(c.Plugins, plugins...)
	}
}

// WithHealthHandler sets a custom handler for the readiness route.
func WithHealthHandler(h queen.Handler) Option {
	return func(c *AppConfig) {
		c.HealthHandler = h
	}
}

// FxOptions returns the fx options that make up the app. The routing function is invoked after
// the plugins are registered and before the server is built; it can request any provided type
// and may return an error.
func FxOptions[E Environment](routing any, opts ...Option) []fx.Option {
	var cfg AppConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	fxOpts := make([]fx.Option, 0, 16+len(cfg.FxOptions))
	fxOpts = append(fxOpts, []fx.Option{
		fx.NopLogger,
		fx.Provide(ParseEnv[E]()),
		fx.Provide(func(e E) Environment { return e }),
		fx.Provide(NewLogger),
		fx.Provide(NewMux),
		fx.Provide(NewTracerProvider),
		fx.Provide(NewPropagator),
		fx.Provide(NewHTTPTransport),
		fx.Provide(provideAWSConfig),
		fx.Provide(NewUploadStore),
		fx.Provide(NewMetrics),
		fx.Provide(func(e E, m *queen.ServeMux, s storage.Store, t http.RoundTripper) *Runtime[E] {
			return NewRuntime(e, m, s, t)
		}),
		fx.Supply(cfg.ServerConfig),
		fx.Invoke(registerPlugins),
	}...)

	fxOpts = append(fxOpts, cfg.FxOptions...)
	return append(fxOpts,
		fx.Invoke(routing),
		fx.Invoke(startServerHook),
	)
}

// NewApp creates a batteries-included app with dependency injection.
//
//	qapp.NewApp[Env](func(m *queen.ServeMux, h *Handlers) error {
//	    return m.Get("/items/:id", h.GetItem)
//	},
//	    qapp.WithFx(fx.Provide(NewHandlers)),
//	).Run()
func NewApp[E Environment](routing any, opts ...Option) *App {
	return &App{app: fx.New(FxOptions[E](routing, opts...)...)}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() {
	a.app.Run()
}

// Start starts the application and blocks until ctx is done, then stops it.
func (a *App) Start(ctx context.Context) error {
	if err := a.app.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.app.StopTimeout())
	defer cancel()

	return a.app.Stop(stopCtx)
}
