package dsl

import (
	"strconv"
	"unicode/utf8"

	"github.com/WiosoftCrafts/jsonclasses"
	"github.com/WiosoftCrafts/jsonclasses/i18n"
)

// sizedKinds are the chain kinds the length operators apply to. Strings are
// measured in runes, lists and maps in entries.
var sizedKinds = jsonclasses.Kinds(
	jsonclasses.KindString,
	jsonclasses.KindList,
	jsonclasses.KindMap,
)

// valueLength returns the length of a sized value, or false for values the
// type check will reject anyway.
func valueLength(v any) (int, bool) {
	switch t := v.(type) {
	case string:
		return utf8.RuneCountInString(t), true
	case []any:
		return len(t), true
	case map[string]any:
		return len(t), true
	}
	return 0, false
}

// MinLength validates a minimum length: runes for strings, entries for lists
// and maps.
func (c Chain) MinLength(min int) Chain {
	return c.with(jsonclasses.Operator{
		Name:  "minlength",
		Modes: jsonclasses.ModeValidate,
		Kinds: sizedKinds,
		Check: func(_ jsonclasses.OpContext, v any) *jsonclasses.ValidationError {
			n, ok := valueLength(v)
			if !ok || n >= min {
				return nil
			}
			ms := strconv.Itoa(min)
			return &jsonclasses.ValidationError{
				Code:    jsonclasses.CodeTooShort,
				Message: i18n.T(jsonclasses.CodeTooShort, map[string]string{"min": ms}),
				Params:  map[string]string{"min": ms, "got": strconv.Itoa(n)},
			}
		},
	})
}

// MaxLength validates a maximum length: runes for strings, entries for lists
// and maps.
func (c Chain) MaxLength(max int) Chain {
	return c.with(jsonclasses.Operator{
		Name:  "maxlength",
		Modes: jsonclasses.ModeValidate,
		Kinds: sizedKinds,
		Check: func(_ jsonclasses.OpContext, v any) *jsonclasses.ValidationError {
			n, ok := valueLength(v)
			if !ok || n <= max {
				return nil
			}
			ms := strconv.Itoa(max)
			return &jsonclasses.ValidationError{
				Code:    jsonclasses.CodeTooLong,
				Message: i18n.T(jsonclasses.CodeTooLong, map[string]string{"max": ms}),
				Params:  map[string]string{"max": ms, "got": strconv.Itoa(n)},
			}
		},
	})
}

// Length validates an exact length.
func (c Chain) Length(n int) Chain {
	return c.MinLength(n).MaxLength(n)
}
