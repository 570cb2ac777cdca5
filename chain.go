package jsonclasses

// Chain is the compiled, ordered operator sequence for one field together with
// the chain-level semantics derived from it. Chains are built by the dsl
// package and must be treated as immutable once a schema has been registered.
//
// Operators run in declaration order within a mode; a later WRITE operator
// sees the value already transformed by earlier WRITE operators.
type Chain struct {
	Kind Kind
	Ops  []Operator

	Required  bool
	Readonly  bool
	WriteOnce bool
	WriteOnly bool
	Internal  bool

	// Default provides a fill-if-absent value at construction time.
	Default func() any

	// Ref names the registered record type for KindRef chains.
	Ref string
	// Elem is the element chain for KindList chains.
	Elem *Chain
	// Value is the value chain for KindMap chains.
	Value *Chain
}

// ChainBuilder is implemented by dsl chain values. BuildChain surfaces
// build-time errors (kind-incompatible operators, bad patterns) which
// Register turns into schema errors.
type ChainBuilder interface {
	BuildChain() (Chain, error)
}
