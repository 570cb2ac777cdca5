package i18n_test

import (
	"testing"

	"github.com/WiosoftCrafts/jsonclasses/i18n"
	"github.com/stretchr/testify/assert"
)

func TestEnglishMessages(t *testing.T) {
	assert.Equal(t, "value is required", i18n.T("required", nil))
	assert.Equal(t, "value is too long (maximum 100)", i18n.T("too_long", map[string]string{"max": "100"}))
	assert.Equal(t, "value 'mlae' is not one of [male, female]",
		i18n.T("invalid_enum", map[string]string{"got": "mlae", "allowed": "male, female"}))
}

func TestUnknownCodeFallsBackToCode(t *testing.T) {
	assert.Equal(t, "no_such_code", i18n.T("no_such_code", nil))
}

func TestJapaneseDictionary(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")
	assert.Equal(t, "値は必須です", i18n.T("required", nil))
}

type prefixTranslator struct{}

func (prefixTranslator) Message(code string, _ map[string]string) string { return "E:" + code }

func TestCustomTranslator(t *testing.T) {
	i18n.SetTranslator(prefixTranslator{})
	defer i18n.SetTranslator(nil)
	assert.Equal(t, "E:required", i18n.T("required", nil))
}
