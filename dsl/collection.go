package dsl

import "github.com/WiosoftCrafts/jsonclasses"

// List starts a chain for a sequence field whose elements each run the given
// chain. A build error in the element chain surfaces at registration.
func List(elem jsonclasses.ChainBuilder) Chain {
	ec, err := elem.BuildChain()
	c := Chain{c: jsonclasses.Chain{Kind: jsonclasses.KindList, Elem: &ec}, err: err}
	return c.with(jsonclasses.Operator{
		Name:  "list",
		Modes: jsonclasses.ModeValidate,
		Kinds: jsonclasses.Kinds(jsonclasses.KindList),
		Check: func(_ jsonclasses.OpContext, v any) *jsonclasses.ValidationError {
			if _, ok := v.([]any); !ok {
				return invalidType("list")
			}
			return nil
		},
	})
}

// Map starts a chain for a string-keyed mapping field whose values each run
// the given chain.
func Map(value jsonclasses.ChainBuilder) Chain {
	vc, err := value.BuildChain()
	c := Chain{c: jsonclasses.Chain{Kind: jsonclasses.KindMap, Value: &vc}, err: err}
	return c.with(jsonclasses.Operator{
		Name:  "map",
		Modes: jsonclasses.ModeValidate,
		Kinds: jsonclasses.Kinds(jsonclasses.KindMap),
		Check: func(_ jsonclasses.OpContext, v any) *jsonclasses.ValidationError {
			if _, ok := v.(map[string]any); !ok {
				return invalidType("map")
			}
			return nil
		},
	})
}
