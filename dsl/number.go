package dsl

import (
	"strconv"

	"github.com/WiosoftCrafts/jsonclasses"
	"github.com/WiosoftCrafts/jsonclasses/i18n"
	json "github.com/goccy/go-json"
)

// Int starts a chain for an integer field. The write pass coerces JSON
// numbers and integral floats to int64; anything else is left for the type
// check to report.
func Int() Chain {
	c := Chain{c: jsonclasses.Chain{Kind: jsonclasses.KindInt}}
	return c.with(jsonclasses.Operator{
		Name:  "int",
		Modes: jsonclasses.ModeWrite | jsonclasses.ModeValidate,
		Kinds: jsonclasses.Kinds(jsonclasses.KindInt),
		Transform: func(_ jsonclasses.OpContext, v any) (any, error) {
			if n, ok := coerceInt(v); ok {
				return n, nil
			}
			return v, nil
		},
		Check: func(_ jsonclasses.OpContext, v any) *jsonclasses.ValidationError {
			if _, ok := v.(int64); !ok {
				return invalidType("int")
			}
			return nil
		},
	})
}

// Float starts a chain for a float field. The write pass coerces JSON numbers
// and integers to float64.
func Float() Chain {
	c := Chain{c: jsonclasses.Chain{Kind: jsonclasses.KindFloat}}
	return c.with(jsonclasses.Operator{
		Name:  "float",
		Modes: jsonclasses.ModeWrite | jsonclasses.ModeValidate,
		Kinds: jsonclasses.Kinds(jsonclasses.KindFloat),
		Transform: func(_ jsonclasses.OpContext, v any) (any, error) {
			if f, ok := coerceFloat(v); ok {
				return f, nil
			}
			return v, nil
		},
		Check: func(_ jsonclasses.OpContext, v any) *jsonclasses.ValidationError {
			if _, ok := v.(float64); !ok {
				return invalidType("float")
			}
			return nil
		},
	})
}

func coerceInt(v any) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case uint:
		return int64(t), true
	case uint8:
		return int64(t), true
	case uint16:
		return int64(t), true
	case uint32:
		return int64(t), true
	case float64:
		if t == float64(int64(t)) {
			return int64(t), true
		}
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, true
		}
	}
	return 0, false
}

func coerceFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f, true
		}
	}
	return 0, false
}

// asNumber widens a sanitized numeric value for bound comparison.
func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case int64:
		return float64(t), true
	case float64:
		return t, true
	}
	return 0, false
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var numericKinds = jsonclasses.Kinds(jsonclasses.KindInt, jsonclasses.KindFloat)

// Min validates a lower bound (inclusive).
func (c Chain) Min(min float64) Chain {
	return c.with(jsonclasses.Operator{
		Name:  "min",
		Modes: jsonclasses.ModeValidate,
		Kinds: numericKinds,
		Check: func(_ jsonclasses.OpContext, v any) *jsonclasses.ValidationError {
			n, ok := asNumber(v)
			if !ok || n >= min {
				return nil
			}
			ms := formatBound(min)
			return &jsonclasses.ValidationError{
				Code:    jsonclasses.CodeTooSmall,
				Message: i18n.T(jsonclasses.CodeTooSmall, map[string]string{"min": ms}),
				Params:  map[string]string{"min": ms},
			}
		},
	})
}

// Max validates an upper bound (inclusive).
func (c Chain) Max(max float64) Chain {
	return c.with(jsonclasses.Operator{
		Name:  "max",
		Modes: jsonclasses.ModeValidate,
		Kinds: numericKinds,
		Check: func(_ jsonclasses.OpContext, v any) *jsonclasses.ValidationError {
			n, ok := asNumber(v)
			if !ok || n <= max {
				return nil
			}
			ms := formatBound(max)
			return &jsonclasses.ValidationError{
				Code:    jsonclasses.CodeTooBig,
				Message: i18n.T(jsonclasses.CodeTooBig, map[string]string{"max": ms}),
				Params:  map[string]string{"max": ms},
			}
		},
	})
}

// Range validates both bounds (inclusive).
func (c Chain) Range(min, max float64) Chain {
	return c.Min(min).Max(max)
}
