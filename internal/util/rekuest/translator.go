package rekuest

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/gofiber/fiber/v2"

	"github.com/Ivan-Pavelic/stroop-effect/internal/util/i18n"
)

func TranslatorFromCtx(ctx *fiber.Ctx) ut.Translator {
	if ctx == nil {
		return i18n.UT.GetFallback()
	}
	if tr, ok := ctx.Locals("T").(ut.Translator); ok {
		return tr
	}
	return i18n.UT.GetFallback()
}
