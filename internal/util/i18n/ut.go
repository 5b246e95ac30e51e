package i18n

import (
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/zh"
	"github.com/go-playground/locales/zh_Hant_TW"
	ut "github.com/go-playground/universal-translator"
)

// UT holds the translators for validation messages. English is the fallback.
var UT = ut.New(en.New(), en.New(), zh_Hant_TW.New(), zh.New(), ja.New())
