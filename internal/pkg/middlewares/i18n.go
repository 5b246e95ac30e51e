package middlewares

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"

	"github.com/Ivan-Pavelic/stroop-effect/internal/util/i18n"
)

// InjectI18n picks the validation message translator matching the request's
// Accept-Language header.
func InjectI18n() fiber.Handler {
	return func(c *fiber.Ctx) error {
		set := func(trans ut.Translator) error {
			c.Locals(LocalsKeyTranslator, trans)
			return c.Next()
		}

		tags, _, err := language.ParseAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
		if err != nil || len(tags) == 0 {
			return set(i18n.UT.GetFallback())
		}

		langs := make([]string, 0, len(tags))
		for _, tag := range tags {
			sanitized := strings.ReplaceAll(strings.ToLower(tag.String()), "-", "_")
			if sanitized == "zh_tw" {
				sanitized = "zh_hant_tw"
			}
			langs = append(langs, sanitized)
		}

		trans, _ := i18n.UT.FindTranslator(langs...)

		return set(trans)
	}
}
