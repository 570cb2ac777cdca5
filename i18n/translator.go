// Package i18n renders validation error codes into human messages.
//
// The package ships English and Japanese dictionaries; applications that need
// another language or custom wording install their own Translator. Messages
// are advisory only: programmatic handling keys off the error code, never the
// message text.
package i18n

import "strings"

// Translator renders one error code with optional placeholder data.
type Translator interface {
	Message(code string, data map[string]string) string
}

type dictTranslator struct {
	dict     map[string]string
	fallback map[string]string
}

func (t *dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := t.dict[code]
	if !ok {
		msg, ok = t.fallback[code]
	}
	if !ok {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var enMessages = map[string]string{
	"required":       "value is required",
	"invalid_type":   "value is not of type {expected}",
	"unknown_field":  "key '{key}' is not allowed",
	"too_short":      "value is too short (minimum {min})",
	"too_long":       "value is too long (maximum {max})",
	"too_small":      "value is too small (minimum {min})",
	"too_big":        "value is too big (maximum {max})",
	"pattern":        "value does not match the required pattern",
	"invalid_enum":   "value '{got}' is not one of [{allowed}]",
	"invalid_format": "value is not a valid {format}",
	"readonly":       "value cannot be written",
	"custom":         "value is invalid",
}

var jaMessages = map[string]string{
	"required":       "値は必須です",
	"invalid_type":   "値の型が {expected} ではありません",
	"unknown_field":  "キー '{key}' は許可されていません",
	"too_short":      "値が短すぎます (最小 {min})",
	"too_long":       "値が長すぎます (最大 {max})",
	"too_small":      "値が小さすぎます (最小 {min})",
	"too_big":        "値が大きすぎます (最大 {max})",
	"pattern":        "値が必要なパターンに一致しません",
	"invalid_enum":   "値 '{got}' は [{allowed}] のいずれでもありません",
	"invalid_format": "値は有効な {format} ではありません",
	"readonly":       "値は書き込みできません",
	"custom":         "値が不正です",
}

var current Translator = &dictTranslator{dict: enMessages, fallback: enMessages}

// SetLanguage selects a shipped dictionary by language tag ("en" or "ja").
// Unknown tags fall back to English.
func SetLanguage(lang string) {
	switch lang {
	case "ja":
		current = &dictTranslator{dict: jaMessages, fallback: enMessages}
	default:
		current = &dictTranslator{dict: enMessages, fallback: enMessages}
	}
}

// SetTranslator installs a custom translator. Passing nil restores English.
func SetTranslator(t Translator) {
	if t == nil {
		SetLanguage("en")
		return
	}
	current = t
}

// T renders a code through the current translator.
func T(code string, data map[string]string) string {
	return current.Message(code, data)
}
