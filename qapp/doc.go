// Package qapp runs a queen server as a batteries-included application.
//
// It wires the [queen.ServeMux] into an fx graph together with structured logging, tracing,
// Prometheus metrics and an upload store, all configured from environment variables:
//
//	type Env struct {
//	    qapp.BaseEnvironment
//	    Greeting string `env:"GREETING" envDefault:"hello"`
//	}
//
//	qapp.NewApp[Env](func(m *queen.ServeMux, rt *qapp.Runtime[Env]) error {
//	    return m.Get("/hello/:name", queen.HandlerFunc(
//	        func(ctx context.Context, w *queen.Response, r *queen.Request) (queen.Outcome, error) {
//	            qapp.Log(ctx).Info("greeting", zap.String("name", r.Param("name")))
//	            return queen.Stop, w.SendString(rt.Env().Greeting + " " + r.Param("name"))
//	        }))
//	}).Run()
//
// # Plugins
//
// Before the routing function runs the app registers, in order: a request logger, the JSON body
// plugin, the multipart plugin writing to the upload store, and any plugins passed with
// [WithPlugins]. It then registers the readiness route and the metrics route. The routing function
// may therefore only register routes.
//
// # Environment
//
// [BaseEnvironment] reads:
//
//	PORT                        listen port (3000)
//	QUEEN_SERVICE_NAME          service name for traces and metrics (queen)
//	QUEEN_LOG_LEVEL             zap level (info)
//	QUEEN_OTEL_EXPORTER         none, stdout or xrayudp (none)
//	QUEEN_READINESS_CHECK_PATH  readiness route (/health)
//	QUEEN_METRICS_PATH          Prometheus route (/metrics)
//	QUEEN_UPLOAD_DIR            directory for uploaded files (custom-storage)
//	QUEEN_UPLOAD_BUCKET         S3 bucket for uploaded files; replaces the directory when set
//	QUEEN_UPLOAD_UNIQUE_NAMES   prefix stored file names with a UUID (false)
//	QUEEN_BODY_LIMIT            maximum request body bytes, negative for none (-1)
//	AWS_REGION                  region for the S3 client
package qapp
