package dsl

import (
	"regexp"
	"strings"

	"github.com/WiosoftCrafts/jsonclasses"
	"github.com/WiosoftCrafts/jsonclasses/i18n"
)

// String starts a chain for a string field.
func String() Chain {
	c := Chain{c: jsonclasses.Chain{Kind: jsonclasses.KindString}}
	return c.with(jsonclasses.Operator{
		Name:  "string",
		Modes: jsonclasses.ModeValidate,
		Kinds: jsonclasses.Kinds(jsonclasses.KindString),
		Check: func(_ jsonclasses.OpContext, v any) *jsonclasses.ValidationError {
			if _, ok := v.(string); !ok {
				return invalidType("string")
			}
			return nil
		},
	})
}

func invalidType(expected string) *jsonclasses.ValidationError {
	return &jsonclasses.ValidationError{
		Code:    jsonclasses.CodeInvalidType,
		Message: i18n.T(jsonclasses.CodeInvalidType, map[string]string{"expected": expected}),
		Params:  map[string]string{"expected": expected},
	}
}

// stringOp applies fn to string values and leaves everything else untouched
// for the type check to report.
func stringOp(name string, fn func(string) string) jsonclasses.Operator {
	return jsonclasses.Operator{
		Name:  name,
		Modes: jsonclasses.ModeWrite,
		Kinds: jsonclasses.Kinds(jsonclasses.KindString),
		Transform: func(_ jsonclasses.OpContext, v any) (any, error) {
			if s, ok := v.(string); ok {
				return fn(s), nil
			}
			return v, nil
		},
	}
}

// Trim strips leading and trailing whitespace during the write pass.
func (c Chain) Trim() Chain {
	return c.with(stringOp("trim", strings.TrimSpace))
}

// Lowercase lowercases the value during the write pass.
func (c Chain) Lowercase() Chain {
	return c.with(stringOp("lowercase", strings.ToLower))
}

// Uppercase uppercases the value during the write pass.
func (c Chain) Uppercase() Chain {
	return c.with(stringOp("uppercase", strings.ToUpper))
}

// Truncate cuts the value to at most n runes during the write pass.
func (c Chain) Truncate(n int) Chain {
	return c.with(stringOp("truncate", func(s string) string {
		r := []rune(s)
		if len(r) <= n {
			return s
		}
		return string(r[:n])
	}))
}

// Match validates the value against a regular expression. An invalid pattern
// is a chain build error.
func (c Chain) Match(pattern string) Chain {
	re, err := regexp.Compile(pattern)
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		return c
	}
	return c.with(jsonclasses.Operator{
		Name:  "match",
		Modes: jsonclasses.ModeValidate,
		Kinds: jsonclasses.Kinds(jsonclasses.KindString),
		Check: func(_ jsonclasses.OpContext, v any) *jsonclasses.ValidationError {
			s, ok := v.(string)
			if !ok || re.MatchString(s) {
				return nil
			}
			return &jsonclasses.ValidationError{
				Code:    jsonclasses.CodePattern,
				Message: i18n.T(jsonclasses.CodePattern, nil),
				Params:  map[string]string{"pattern": pattern},
			}
		},
	})
}

// OneOf validates the value against a fixed set of allowed strings.
func (c Chain) OneOf(allowed ...string) Chain {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	joined := strings.Join(allowed, ", ")
	return c.with(jsonclasses.Operator{
		Name:  "oneof",
		Modes: jsonclasses.ModeValidate,
		Kinds: jsonclasses.Kinds(jsonclasses.KindString),
		Check: func(_ jsonclasses.OpContext, v any) *jsonclasses.ValidationError {
			s, ok := v.(string)
			if !ok {
				return nil
			}
			if _, ok := set[s]; ok {
				return nil
			}
			return &jsonclasses.ValidationError{
				Code:    jsonclasses.CodeInvalidEnum,
				Message: i18n.T(jsonclasses.CodeInvalidEnum, map[string]string{"got": s, "allowed": joined}),
				Params:  map[string]string{"got": s, "allowed": joined},
			}
		},
	})
}
