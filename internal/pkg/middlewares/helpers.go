package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

const (
	LocalsKeyRequestID  = "requestId"
	LocalsKeyTranslator = "T"

	HeaderRequestID = "X-Stroop-Request-ID"
)

func Chained(app *fiber.App, middlewares ...fiber.Handler) {
	for _, middleware := range middlewares {
		app.Use(middleware)
	}
}
