package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/Ivan-Pavelic/stroop-effect/internal/model/types"
	"github.com/Ivan-Pavelic/stroop-effect/internal/server/svr"
	"github.com/Ivan-Pavelic/stroop-effect/internal/service"
	"github.com/Ivan-Pavelic/stroop-effect/internal/util/rekuest"
)

type Insight struct {
	fx.In

	InsightService *service.Insight
}

func RegisterInsight(api *svr.API, c Insight) {
	api.Post("/insights", c.Insights)
}

func (c *Insight) Insights(ctx *fiber.Ctx) error {
	var request types.InsightsRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	insights, err := c.InsightService.Insights(ctx.UserContext(), request.GameHistory)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success":  true,
		"insights": insights,
	})
}
