package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/Ivan-Pavelic/stroop-effect/internal/model/types"
	"github.com/Ivan-Pavelic/stroop-effect/internal/server/svr"
	"github.com/Ivan-Pavelic/stroop-effect/internal/service"
	"github.com/Ivan-Pavelic/stroop-effect/internal/util/rekuest"
)

type Analysis struct {
	fx.In

	AnalysisService *service.Analysis
}

func RegisterAnalysis(api *svr.API, c Analysis) {
	api.Post("/analyze", c.Analyze)
}

func (c *Analysis) Analyze(ctx *fiber.Ctx) error {
	var request types.AnalyzeRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	report, err := c.AnalysisService.Analyze(ctx.UserContext(), request.Metrics())
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success":  true,
		"analysis": report,
	})
}
