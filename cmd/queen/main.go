// Command queen runs the demo application: a static index page, user routes and body echo
// endpoints for JSON and multipart uploads.
package main

import (
	"github.com/advdv/queen/qapp"
	"go.uber.org/fx"
)

// Env extends the base environment with the location of the static files.
type Env struct {
	qapp.BaseEnvironment
	PublicDir string `env:"QUEEN_PUBLIC_DIR" envDefault:"public"`
}

func main() {
	qapp.NewApp[Env](routing,
		qapp.WithFx(fx.Provide(NewHandlers)),
	).Run()
}
