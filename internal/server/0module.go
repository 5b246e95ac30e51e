package server

import (
	"go.uber.org/fx"

	"github.com/Ivan-Pavelic/stroop-effect/internal/server/httpserver"
	"github.com/Ivan-Pavelic/stroop-effect/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
