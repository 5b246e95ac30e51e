package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/Ivan-Pavelic/stroop-effect/cmd/app/cli/offline"
	"github.com/Ivan-Pavelic/stroop-effect/cmd/app/server"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "stroopsvc",
		Description: "Stroop test cognitive analysis service. Scores sessions, generates adaptive stimuli and derives longitudinal insights. Built with Go, fiber and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			offline.AnalyzeCommand(),
			offline.TasksCommand(),
			offline.InsightsCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
