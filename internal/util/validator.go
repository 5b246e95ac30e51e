package util

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/guregu/null.v3"

	"github.com/Ivan-Pavelic/stroop-effect/internal/model/types"
)

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonTagName)
	_ = validate.RegisterValidation("caseinsensitiveoneof", caseInsensitiveOneOf)
	validate.RegisterCustomTypeFunc(nullFloatValuer, null.Float{})
	validate.RegisterCustomTypeFunc(nullIntValuer, null.Int{})
	validate.RegisterCustomTypeFunc(nullStringValuer, null.String{})
	validate.RegisterCustomTypeFunc(sexValuer, types.Sex{})

	return validate
}

// jsonTagName reports fields by their wire name.
func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func caseInsensitiveOneOf(fl validator.FieldLevel) bool {
	val := strings.ToLower(fl.Field().String())
	candidates := strings.Split(strings.ToLower(fl.Param()), " ")
	for _, v := range candidates {
		if val == v {
			return true
		}
	}
	return false
}

// the valuers below return nil for an absent value so that omitempty skips it

func nullFloatValuer(field reflect.Value) any {
	if valuer, ok := field.Interface().(null.Float); ok && valuer.Valid {
		return valuer.Float64
	}
	return nil
}

func nullIntValuer(field reflect.Value) any {
	if valuer, ok := field.Interface().(null.Int); ok && valuer.Valid {
		return valuer.Int64
	}
	return nil
}

func nullStringValuer(field reflect.Value) any {
	if valuer, ok := field.Interface().(null.String); ok && valuer.Valid {
		return valuer.String
	}
	return nil
}

func sexValuer(field reflect.Value) any {
	if valuer, ok := field.Interface().(types.Sex); ok && valuer.Valid {
		return valuer.Value
	}
	return nil
}
