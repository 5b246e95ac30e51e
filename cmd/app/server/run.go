package server

import (
	"context"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/Ivan-Pavelic/stroop-effect/internal/app"
	"github.com/Ivan-Pavelic/stroop-effect/internal/app/appconfig"
	"github.com/Ivan-Pavelic/stroop-effect/internal/app/appcontext"
)

// Run blocks until the process receives a termination signal.
func Run() {
	app.New(appcontext.Declare(appcontext.EnvServer), fx.Invoke(run)).Run()
}

func run(serverApp *fiber.App, conf *appconfig.Config, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", conf.ServiceAddress)
			if err != nil {
				return err
			}

			log.Info().
				Str("evt.name", "server.listen").
				Str("address", ln.Addr().String()).
				Msg("server started")

			go func() {
				if err := serverApp.Listener(ln); err != nil {
					log.Error().Err(err).Msg("server terminated unexpectedly")
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return serverApp.ShutdownWithContext(ctx)
		},
	})
}
