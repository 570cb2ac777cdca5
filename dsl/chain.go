// Package dsl provides the fluent builders that declare field rule chains.
//
// A Chain value is immutable: every method returns a derived chain, so a
// partial chain can be stored in a variable and reused across fields.
// Mistakes in a declaration (an operator attached to an incompatible chain
// kind, an invalid pattern) are recorded in the chain and surfaced by
// Register, not at call time.
package dsl

import (
	"fmt"

	"github.com/WiosoftCrafts/jsonclasses"
	"github.com/google/uuid"
)

// Chain is a fluent builder for one field's rule chain.
type Chain struct {
	c   jsonclasses.Chain
	err error
}

// BuildChain implements jsonclasses.ChainBuilder.
func (c Chain) BuildChain() (jsonclasses.Chain, error) {
	if c.err != nil {
		return jsonclasses.Chain{}, c.err
	}
	return c.c, nil
}

// with appends an operator, enforcing kind compatibility. The ops slice is
// copied so derived chains never alias a shared backing array.
func (c Chain) with(op jsonclasses.Operator) Chain {
	if c.err != nil {
		return c
	}
	if !op.Kinds.Has(c.c.Kind) {
		c.err = fmt.Errorf("%w: %s on %s chain", jsonclasses.ErrIncompatibleOperator, op.Name, c.c.Kind)
		return c
	}
	ops := make([]jsonclasses.Operator, len(c.c.Ops), len(c.c.Ops)+1)
	copy(ops, c.c.Ops)
	c.c.Ops = append(ops, op)
	return c
}

// Required marks the field as failing validation while unset.
func (c Chain) Required() Chain {
	c.c.Required = true
	return c
}

// Optional clears a Required mark inherited from a shared base chain.
func (c Chain) Optional() Chain {
	c.c.Required = false
	return c
}

// Nullable documents that the field may stay unset. It clears an inherited
// Required mark; unset is already legal for chains that never were required.
func (c Chain) Nullable() Chain {
	c.c.Required = false
	return c
}

// Default fills the field with a fixed value when absent at construction.
func (c Chain) Default(v any) Chain {
	c.c.Default = func() any { return v }
	return c
}

// DefaultFunc fills the field by calling fn when absent at construction.
func (c Chain) DefaultFunc(fn func() any) Chain {
	c.c.Default = fn
	return c
}

// DefaultUUID fills the field with a fresh UUID string when absent at
// construction. Meant for String chains.
func (c Chain) DefaultUUID() Chain {
	c.c.Default = func() any { return uuid.NewString() }
	return c
}

// Readonly discards external input for the field; values enter only through
// defaults or Record.Update.
func (c Chain) Readonly() Chain {
	c.c.Readonly = true
	return c
}

// WriteOnce accepts external input only while the field is unset.
func (c Chain) WriteOnce() Chain {
	c.c.WriteOnce = true
	return c
}

// WriteOnly accepts input normally but is omitted from serialization unless
// explicitly requested.
func (c Chain) WriteOnly() Chain {
	c.c.WriteOnly = true
	return c
}

// Internal makes the field invisible on the wire in both directions.
func (c Chain) Internal() Chain {
	c.c.Internal = true
	return c
}

// Transform appends a custom WRITE-pass operator. The function receives the
// value as left by earlier operators; returning an error aborts the write as
// a programmer error, not a validation failure.
func (c Chain) Transform(name string, fn func(jsonclasses.OpContext, any) (any, error)) Chain {
	return c.with(jsonclasses.Operator{
		Name:      name,
		Modes:     jsonclasses.ModeWrite,
		Transform: fn,
	})
}

// Validate appends a custom VALIDATE-pass operator. A non-nil error becomes a
// validation entry with code "custom" and the error text as message.
func (c Chain) Validate(name string, fn func(jsonclasses.OpContext, any) error) Chain {
	return c.with(jsonclasses.Operator{
		Name:  name,
		Modes: jsonclasses.ModeValidate,
		Check: func(ctx jsonclasses.OpContext, v any) *jsonclasses.ValidationError {
			if err := fn(ctx, v); err != nil {
				return &jsonclasses.ValidationError{
					Code:    jsonclasses.CodeCustom,
					Message: err.Error(),
				}
			}
			return nil
		},
	})
}
