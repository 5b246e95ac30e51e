package offline

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Ivan-Pavelic/stroop-effect/internal/model/types"
	"github.com/Ivan-Pavelic/stroop-effect/internal/util/rekuest"
)

func InsightsCommand() *cli.Command {
	return &cli.Command{
		Name:  "insights",
		Usage: "derive trend insights from a game history JSON file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    `history JSON file ({"gameHistory":[...]}), - for stdin`,
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			var request types.InsightsRequest
			if err := readInput(os.Stdin, c.String("file"), &request); err != nil {
				return err
			}
			if err := rekuest.Struct(nil, &request); err != nil {
				return err
			}

			return withDeps(func(deps CommandDeps) error {
				insights, err := deps.InsightService.Insights(c.Context, request.GameHistory)
				if err != nil {
					return err
				}
				return writeOutput(c.App.Writer, map[string]any{
					"success":  true,
					"insights": insights,
				})
			})
		},
	}
}
