package rekuest

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	jaTranslations "github.com/go-playground/validator/v10/translations/ja"
	zhTranslations "github.com/go-playground/validator/v10/translations/zh"
	zhTwTranslations "github.com/go-playground/validator/v10/translations/zh_tw"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/Ivan-Pavelic/stroop-effect/internal/pkg/sterr"
	"github.com/Ivan-Pavelic/stroop-effect/internal/util"
	"github.com/Ivan-Pavelic/stroop-effect/internal/util/i18n"
)

var Validate = util.NewValidator()

type registerFunc func(v *validator.Validate, trans ut.Translator) error

func init() {
	locales := []struct {
		name     string
		register registerFunc
	}{
		{"en", enTranslations.RegisterDefaultTranslations},
		{"zh", zhTranslations.RegisterDefaultTranslations},
		{"zh_Hant_TW", zhTwTranslations.RegisterDefaultTranslations},
		{"ja", jaTranslations.RegisterDefaultTranslations},
	}

	for _, l := range locales {
		tr, _ := i18n.UT.GetTranslator(l.name)
		if err := l.register(Validate, tr); err != nil {
			log.Warn().Err(err).Str("locale", l.name).Msg("could not register translation")
			continue
		}

		err := Validate.RegisterTranslation("caseinsensitiveoneof", tr, func(ut ut.Translator) error {
			return nil
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("oneof", fe.Field(), fe.Param())
			return t
		})
		if err != nil {
			log.Warn().Err(err).Str("locale", l.name).Msg("could not register translation for function caseinsensitiveoneof")
		}
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func translate(utt ut.Translator, ve validator.ValidationErrors) []*ErrorResponse {
	trans := make([]*ErrorResponse, 0, len(ve))
	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fieldPath(fe.Namespace()),
			Violation: fe.Tag(),
			Message:   fe.Translate(utt),
		})
	}
	return trans
}

func validateStruct(tr ut.Translator, s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		return translate(tr, errs)
	}
	return nil
}

// ValidBody parses the request body into dest, which must be a pointer, and
// validates it. Violations are reported in the request's language.
func ValidBody(ctx *fiber.Ctx, dest any) error {
	if err := ctx.BodyParser(dest); err != nil {
		return sterr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	return ValidStruct(ctx, dest)
}

func ValidStruct(ctx *fiber.Ctx, dest any) error {
	return Struct(TranslatorFromCtx(ctx), dest)
}

// Struct validates dest outside of a request, e.g. from the command line.
func Struct(tr ut.Translator, dest any) error {
	if tr == nil {
		tr = i18n.UT.GetFallback()
	}
	if err := validateStruct(tr, dest); err != nil {
		return sterr.NewInvalidViolations(err)
	}
	return nil
}
