package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/flog"
)

func Logger(app *fiber.App) {
	Chained(
		app,
		flog.NewHandlerMiddleware(log.With().Logger()),
		flog.RequestIDHandler("request_id", HeaderRequestID),
		flog.RemoteAddrHandler("ip"),
		flog.MethodHandler("method"),
		flog.URLHandler("url"),
		flog.UserAgentHandler("user_agent"),
		requestLogger(),
	)
}

func requestLogger() fiber.Handler {
	return flog.AccessHandler(func(c *fiber.Ctx, duration time.Duration) {
		status := c.Response().StatusCode()
		evt := flog.InfoFrom(c)
		if status >= fiber.StatusInternalServerError {
			evt = flog.ErrorFrom(c)
		}
		evt.
			Str("component", "httpreq").
			Int("status", status).
			Int("size", len(c.Response().Body())).
			Dur("duration", duration).
			Msg("served request")
	})
}
