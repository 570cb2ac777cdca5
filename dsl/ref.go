package dsl

import "github.com/WiosoftCrafts/jsonclasses"

// Ref starts a chain for a nested record field of the named registered type.
// The name is resolved lazily at write/validate time, so mutually referencing
// types can be registered in any order.
func Ref(typeName string) Chain {
	c := Chain{c: jsonclasses.Chain{Kind: jsonclasses.KindRef, Ref: typeName}}
	return c.with(jsonclasses.Operator{
		Name:  "ref",
		Modes: jsonclasses.ModeValidate,
		Kinds: jsonclasses.Kinds(jsonclasses.KindRef),
		Check: func(_ jsonclasses.OpContext, v any) *jsonclasses.ValidationError {
			if r, ok := v.(*jsonclasses.Record); ok && r.Schema().Name() == typeName {
				return nil
			}
			return invalidType(typeName)
		},
	})
}
