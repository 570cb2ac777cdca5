package dsl

import "github.com/WiosoftCrafts/jsonclasses"

// Bool starts a chain for a boolean field.
func Bool() Chain {
	c := Chain{c: jsonclasses.Chain{Kind: jsonclasses.KindBool}}
	return c.with(jsonclasses.Operator{
		Name:  "bool",
		Modes: jsonclasses.ModeValidate,
		Kinds: jsonclasses.Kinds(jsonclasses.KindBool),
		Check: func(_ jsonclasses.OpContext, v any) *jsonclasses.ValidationError {
			if _, ok := v.(bool); !ok {
				return invalidType("bool")
			}
			return nil
		},
	})
}
