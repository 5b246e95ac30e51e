package offline

import (
	"github.com/urfave/cli/v2"
	"gopkg.in/guregu/null.v3"

	"github.com/Ivan-Pavelic/stroop-effect/internal/model/types"
	"github.com/Ivan-Pavelic/stroop-effect/internal/util/rekuest"
)

func TasksCommand() *cli.Command {
	return &cli.Command{
		Name:  "tasks",
		Usage: "generate a batch of stimulus items",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "difficulty",
				Usage: "easy, medium or hard",
				Value: "medium",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "number of items",
				Value: 10,
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "random seed, 0 for the configured seed",
			},
			&cli.Float64Flag{
				Name:  "accuracy",
				Usage: "recent accuracy of the user in percent, adjusts the congruent ratio",
			},
		},
		Action: func(c *cli.Context) error {
			count := c.Int("count")
			request := types.GenerateTasksRequest{
				Difficulty: null.StringFrom(c.String("difficulty")),
				Count:      &count,
			}
			if c.IsSet("accuracy") {
				request.UserPerformance = &types.UserPerformanceRequest{
					Accuracy: null.FloatFrom(c.Float64("accuracy")),
				}
			}
			if err := rekuest.Struct(nil, &request); err != nil {
				return err
			}

			return withDeps(func(deps CommandDeps) error {
				s := deps.StimulusService
				if seed := c.Int64("seed"); seed != 0 {
					s = s.WithSeed(seed)
				}

				tasks, err := s.Generate(c.Context, request.Difficulty.String, count, request.UserPerformance.Performance())
				if err != nil {
					return err
				}
				return writeOutput(c.App.Writer, map[string]any{
					"success": true,
					"tasks":   tasks,
				})
			})
		},
	}
}
