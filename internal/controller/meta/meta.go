package meta

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/bininfo"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/cachectrl"
	"github.com/Ivan-Pavelic/stroop-effect/internal/server/svr"
	"github.com/Ivan-Pavelic/stroop-effect/internal/service"
)

const ServiceDisplayName = "Stroop Test AI Service"

type Meta struct {
	fx.In

	HealthService *service.Health
}

func RegisterMeta(api *svr.API, meta *svr.Meta, c Meta) {
	meta.Get("/bininfo", c.BinInfo)

	api.Get("/health", cache.New(cache.Config{
		// cache it for a second to mitigate potential DDoS
		Expiration: time.Second,
	}), c.Health)
}

func (c *Meta) BinInfo(ctx *fiber.Ctx) error {
	buildTime, _ := time.Parse(time.RFC3339, bininfo.BuildTime)
	cachectrl.Public(ctx, buildTime, time.Hour)

	return ctx.JSON(fiber.Map{
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
	})
}

func (c *Meta) Health(ctx *fiber.Ctx) error {
	status := c.HealthService.Status(ctx.UserContext())

	return ctx.JSON(fiber.Map{
		"status":       "ok",
		"service":      ServiceDisplayName,
		"timestamp":    time.Now().Format(time.RFC3339Nano),
		"modelLoaded":  status.ModelLoaded,
		"model":        status.Model,
		"dependencies": status.Dependencies,
	})
}
