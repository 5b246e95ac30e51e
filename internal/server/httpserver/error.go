package httpserver

import (
	"strconv"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/flog"
	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/sterr"
)

const CodeUnknownError = "UNKNOWN_ERROR"

func handleCustomError(ctx *fiber.Ctx, e *sterr.StroopError) error {
	flog.WarnFrom(ctx).
		Err(e).
		Str("code", e.ErrorCode).
		Msg(e.Message)

	body := fiber.Map{
		"success": false,
		"code":    e.ErrorCode,
		"error":   e.Message,
	}

	// extras are merged into the top level
	if e.Extras != nil {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

// ErrorHandler renders every error as the JSON error envelope. Errors other
// than StroopError and client-side fiber errors are reported to Sentry.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var se *sterr.StroopError
	if errors.As(err, &se) {
		return handleCustomError(ctx, se)
	}

	re := *sterr.ErrInternalError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch {
		case fe.Code == fiber.StatusNotFound:
			re = *sterr.ErrNotFound
		case fe.Code < fiber.StatusInternalServerError:
			re.StatusCode = fe.Code
			re.ErrorCode = CodeUnknownError
			re.Message = fe.Message
		}
		if fe.Code < fiber.StatusInternalServerError {
			return handleCustomError(ctx, &re)
		}
	}

	flog.ErrorFrom(ctx).
		Stack().
		Err(err).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
		hub.CaptureException(err)
	}

	return handleCustomError(ctx, &re)
}
