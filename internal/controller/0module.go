package controller

import (
	"go.uber.org/fx"

	controllerapi "github.com/Ivan-Pavelic/stroop-effect/internal/controller/api"
	controllermeta "github.com/Ivan-Pavelic/stroop-effect/internal/controller/meta"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (api)
		controllerapi.Module(),

		// Controllers (meta)
		controllermeta.Module(),
	)
}
