package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/Ivan-Pavelic/stroop-effect/internal/app/appconfig"
	"github.com/Ivan-Pavelic/stroop-effect/internal/app/appcontext"
	"github.com/Ivan-Pavelic/stroop-effect/internal/controller"
	"github.com/Ivan-Pavelic/stroop-effect/internal/infra"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/logger"
	"github.com/Ivan-Pavelic/stroop-effect/internal/server"
	"github.com/Ivan-Pavelic/stroop-effect/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Servers
		server.Module(),

		// Services
		service.Module(),

		// Controllers
		controller.Module(),

		// fx Extra Options
		fx.StartTimeout(15 * time.Second),
		// StopTimeout is not typically needed, since we're using fiber's Shutdown(),
		// in which fiber has its own IdleTimeout for controlling the shutdown timeout.
		fx.StopTimeout(conf.HTTPServerShutdownTimeout + 5*time.Second),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
