package offline

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Ivan-Pavelic/stroop-effect/internal/model/types"
	"github.com/Ivan-Pavelic/stroop-effect/internal/util/rekuest"
)

func AnalyzeCommand() *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "analyze one session read from a JSON file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "session JSON file, - for stdin",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			var request types.AnalyzeRequest
			if err := readInput(os.Stdin, c.String("file"), &request); err != nil {
				return err
			}
			if err := rekuest.Struct(nil, &request); err != nil {
				return err
			}

			return withDeps(func(deps CommandDeps) error {
				report, err := deps.AnalysisService.Analyze(c.Context, request.Metrics())
				if err != nil {
					return err
				}
				return writeOutput(c.App.Writer, map[string]any{
					"success":  true,
					"analysis": report,
				})
			})
		},
	}
}
