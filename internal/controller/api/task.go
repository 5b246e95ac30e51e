package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/Ivan-Pavelic/stroop-effect/internal/model/types"
	"github.com/Ivan-Pavelic/stroop-effect/internal/server/svr"
	"github.com/Ivan-Pavelic/stroop-effect/internal/service"
	"github.com/Ivan-Pavelic/stroop-effect/internal/util/rekuest"
)

type Task struct {
	fx.In

	StimulusService *service.Stimulus
}

func RegisterTask(api *svr.API, c Task) {
	api.Post("/generate-tasks", c.GenerateTasks)
}

func (c *Task) GenerateTasks(ctx *fiber.Ctx) error {
	var request types.GenerateTasksRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	count := 0
	if request.Count != nil {
		count = *request.Count
	}

	tasks, err := c.StimulusService.Generate(
		ctx.UserContext(),
		request.Difficulty.ValueOrZero(),
		count,
		request.UserPerformance.Performance(),
	)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"tasks":   tasks,
	})
}
