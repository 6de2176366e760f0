package qapp

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/advdv/queen"
	"github.com/advdv/queen/plugin"
	"github.com/advdv/queen/storage"
	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const readHeaderTimeout = 10 * time.Second

// ServerConfig holds optional configuration for the plugins and built-in routes.
type ServerConfig struct {
	// HealthHandler answers the readiness route. Defaults to 200 with "ok".
	HealthHandler queen.Handler
	// Plugins run after the built-in plugins.
	Plugins []queen.Handler
}

// NewMux creates the mux the app registers plugins and routes on.
func NewMux(env Environment, logger *zap.Logger) *queen.ServeMux {
	return queen.NewServeMux(
		queen.WithLogger(newZapQueenLogger(logger)),
		queen.WithBodyLimit(env.bodyLimit()),
	)
}

// PluginParams holds the dependencies for registering the app's plugins.
type PluginParams struct {
	fx.In

	Env     Environment
	Mux     *queen.ServeMux
	Logger  *zap.Logger
	Store   storage.Store
	Metrics *Metrics
	Config  ServerConfig
}

// registerPlugins registers the built-in plugins, the configured extra plugins and the
// readiness and metrics routes. It runs before the routing function.
func registerPlugins(p PluginParams) error {
	plugins := []queen.Handler{
		plugin.RequestLog(p.Logger.Named("request")),
		plugin.JSON(),
		plugin.MultipartTo(p.Store, plugin.WithMultipartLogger(p.Logger.Named("multipart"))),
	}
	plugins = append(plugins, p.Config.Plugins...)
	if err := p.Mux.Use(plugins...); err != nil {
		return errors.Wrap(err, "register plugins")
	}

	health := p.Config.HealthHandler
	if health == nil {
		health = queen.HandlerFunc(defaultHealthHandler)
	}
	if err := p.Mux.Get(p.Env.readinessCheckPath(), health); err != nil {
		return errors.Wrap(err, "register readiness route")
	}

	if err := p.Mux.Get(p.Env.metricsPath(), queen.FromStd(p.Metrics.Handler())); err != nil {
		return errors.Wrap(err, "register metrics route")
	}

	return nil
}

// ServerParams holds the dependencies for creating an HTTP server.
type ServerParams struct {
	fx.In

	Env        Environment
	Mux        *queen.ServeMux
	Logger     *zap.Logger
	Metrics    *Metrics
	TracerProv trace.TracerProvider
	Propagator propagation.TextMapPropagator
}

// NewServer seals the mux and wraps the resulting server with request-scoped logging, metrics
// and tracing. It must run after all routes are registered.
func NewServer(params ServerParams) *http.Server {
	srv := params.Mux.Build()
	for _, route := range srv.Routes() {
		params.Logger.Debug("route", zap.String("method", route.Method), zap.String("path", route.Path))
	}

	var handler http.Handler = srv
	handler = withRequestDep(&requestDep{logger: params.Logger})(handler)
	handler = params.Metrics.Middleware(srv)(handler)
	handler = withTracing(params.TracerProv, params.Propagator, params.Env.serviceName(),
		params.Env.readinessCheckPath(), params.Env.metricsPath())(handler)

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", params.Env.port()),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// startServerHook builds the server and registers lifecycle hooks for it.
func startServerHook(lc fx.Lifecycle, params ServerParams) {
	server := NewServer(params)
	logger := params.Logger

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := (&net.ListenConfig{}).Listen(ctx, "tcp", server.Addr)
			if err != nil {
				return errors.Wrapf(err, "listen on %q", server.Addr)
			}

			logger.Info("starting server", zap.String("addr", server.Addr))
			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return server.Shutdown(ctx)
		},
	})
}

func defaultHealthHandler(_ context.Context, w *queen.Response, _ *queen.Request) (queen.Outcome, error) {
	return queen.Stop, w.SendString("ok")
}
