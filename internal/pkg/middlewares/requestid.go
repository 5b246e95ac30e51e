package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/flog"
)

// RequestID copies the request id set up by the logger chain into
// ctx.Locals, for handlers that have no access to the user context.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := flog.IDFromFiberCtx(c); ok {
			c.Locals(LocalsKeyRequestID, id.String())
		}
		return c.Next()
	}
}
