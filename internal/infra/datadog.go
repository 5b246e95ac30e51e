package infra

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"go.uber.org/fx"
	"gopkg.in/DataDog/dd-trace-go.v1/profiler"

	"github.com/Ivan-Pavelic/stroop-effect/internal/app/appconfig"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/bininfo"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/observability"
)

func Datadog(conf *appconfig.Config, lc fx.Lifecycle) {
	if !conf.DatadogProfilerEnabled || conf.DevMode {
		log.Info().
			Str("evt.name", "infra.datadog.disabled").
			Bool("devMode", conf.DevMode).
			Msg("datadog profiler is disabled")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			err := profiler.Start(
				profiler.WithService(observability.ServiceName),
				profiler.WithEnv(lo.Ternary(conf.DevMode, "dev", "prod")),
				profiler.WithVersion(bininfo.Version),
				profiler.WithAgentAddr(conf.DatadogProfilerAgentAddress),
				profiler.WithProfileTypes(
					profiler.CPUProfile,
					profiler.HeapProfile,
				),
			)
			if err != nil {
				// not critical
				log.Error().
					Err(err).
					Str("evt.name", "infra.datadog.error").
					Msg("datadog profiler failed to start")
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			profiler.Stop()
			return nil
		},
	})
}
