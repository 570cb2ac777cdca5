package dsl

import (
	"time"

	"github.com/WiosoftCrafts/jsonclasses"
	"github.com/WiosoftCrafts/jsonclasses/i18n"
)

// DateTime starts a chain for a timestamp field. The write pass parses
// RFC 3339 strings into time.Time; unparseable strings stay as strings so the
// validate pass can report them. Serialization emits RFC 3339 in UTC with
// nanoseconds when present.
func DateTime() Chain {
	c := Chain{c: jsonclasses.Chain{Kind: jsonclasses.KindDateTime}}
	return c.with(jsonclasses.Operator{
		Name:  "datetime",
		Modes: jsonclasses.ModeWrite | jsonclasses.ModeValidate | jsonclasses.ModeRead,
		Kinds: jsonclasses.Kinds(jsonclasses.KindDateTime),
		Transform: func(_ jsonclasses.OpContext, v any) (any, error) {
			if s, ok := v.(string); ok {
				if t, err := time.Parse(time.RFC3339, s); err == nil {
					return t, nil
				}
			}
			return v, nil
		},
		Check: func(_ jsonclasses.OpContext, v any) *jsonclasses.ValidationError {
			switch v.(type) {
			case time.Time:
				return nil
			case string:
				return &jsonclasses.ValidationError{
					Code:    jsonclasses.CodeInvalidFormat,
					Message: i18n.T(jsonclasses.CodeInvalidFormat, map[string]string{"format": "RFC 3339 datetime"}),
					Params:  map[string]string{"format": "RFC 3339 datetime"},
				}
			default:
				return invalidType("datetime")
			}
		},
		Present: func(_ jsonclasses.OpContext, v any) any {
			if t, ok := v.(time.Time); ok {
				return t.UTC().Format(time.RFC3339Nano)
			}
			return v
		},
	})
}
