package svr

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/cachectrl"
)

type API struct {
	fiber.Router
}

type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*API, *Meta) {
	api := app.Group("/api", func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodPost {
			cachectrl.NoStore(c)
		}
		return c.Next()
	})
	meta := app.Group("/api/_")

	return &API{Router: api}, &Meta{Router: meta}
}
