package jsonclasses

// Mode declares which pipeline passes an Operator participates in.
type Mode uint8

const (
	ModeWrite    Mode = 1 << iota // sanitize pass (construction and update)
	ModeValidate                  // validate pass
	ModeRead                      // serialize pass
)

// Stage distinguishes the two write paths of the sanitize pass.
type Stage uint8

const (
	StageConstruct Stage = iota
	StageUpdate
)

// Kind is the declared scalar/composite kind of a chain.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindDateTime
	KindList
	KindMap
	KindRef
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDateTime:
		return "datetime"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindRef:
		return "ref"
	default:
		return "invalid"
	}
}

// KindSet is a bit set of chain kinds an operator applies to. The zero value
// means "any kind".
type KindSet uint16

// Kinds builds a KindSet from the given kinds.
func Kinds(ks ...Kind) KindSet {
	var s KindSet
	for _, k := range ks {
		s |= 1 << k
	}
	return s
}

// Has reports whether the set contains k. The empty set contains every kind.
func (s KindSet) Has(k Kind) bool {
	if s == 0 {
		return true
	}
	return s&(1<<k) != 0
}

// OpContext exposes the enclosing record and field addressing to an operator
// invocation. Operators must not reach into sibling fields except through
// Record.
type OpContext struct {
	Field  string
	Path   string // dotted path from the pipeline root
	Stage  Stage  // meaningful during the sanitize pass only
	Record *Record
}

// Operator is the atomic unit of behavior: a named transform/check with a
// declared mode set and parameters bound at chain-build time. Up to three pure
// functions, each optional; the pipeline calls whichever is present for the
// current pass.
//
// Transform (WRITE) coerces or rewrites the value; it returns an error only
// for programmer misuse, never for ordinary bad input. Values it cannot
// handle pass through unchanged and are reported by Check instead.
// Check (VALIDATE) returns nil on pass or a ValidationError on ordinary bad
// input; the pipeline fills in Path and Value when left empty.
// Present (READ) converts the value to its wire representation and must not
// fail.
type Operator struct {
	Name  string
	Modes Mode
	Kinds KindSet // chain kinds this operator may be attached to; zero = any

	// NilAware operators run their Check even when the value is absent.
	// All other checks are skipped for nil values.
	NilAware bool

	Transform func(OpContext, any) (any, error)
	Check     func(OpContext, any) *ValidationError
	Present   func(OpContext, any) any
}
