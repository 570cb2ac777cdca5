package jsonclasses

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/WiosoftCrafts/jsonclasses/i18n"
)

// The three passes below are stateless walks over a record's fields in schema
// declaration order; within one field's chain, operators run in chain
// declaration order. Both orderings are observable through Report ordering.

// sanitize is the WRITE pass shared by construction and Set. The returned
// Report carries input errors (unknown keys under ExtraReject, readonly
// discards under WithReadonlyReporting, nested input errors); the error
// return is reserved for fatal conditions such as a missing referenced
// schema.
func (s *Schema) sanitize(rec *Record, input map[string]any, stage Stage) (Report, error) {
	var rep Report
	known := make(map[string]struct{}, len(s.fields))
	for i := range s.fields {
		f := &s.fields[i]
		wire := s.keyCase.ToWire(f.Name)
		known[wire] = struct{}{}
		v, present := input[wire]

		if f.Chain.Readonly || f.Chain.Internal {
			if present {
				if s.reportReadonly {
					rep = AppendReport(rep, ValidationError{
						Path:    f.Name,
						Code:    CodeReadonly,
						Message: i18n.T(CodeReadonly, nil),
						Value:   v,
					})
				} else {
					logger.Warn().
						Str("type", s.name).
						Str("field", f.Name).
						Msg("readonly input discarded")
				}
			}
			if stage == StageConstruct {
				dv, err := s.fillDefault(rec, f)
				if err != nil {
					return rep, err
				}
				rec.values[f.Name] = dv
			}
			continue
		}

		if present && f.Chain.WriteOnce && stage == StageUpdate && rec.values[f.Name] != nil {
			// frozen after first non-nil write
			continue
		}

		if present {
			ctx := OpContext{Field: f.Name, Path: f.Name, Stage: stage, Record: rec}
			nv, frep, err := s.writeChain(ctx, &f.Chain, v)
			if err != nil {
				return rep, err
			}
			if len(frep) > 0 {
				rep = AppendReport(rep, frep...)
				continue
			}
			rec.values[f.Name] = nv
			if stage == StageUpdate {
				rec.touch(f.Name)
			}
			continue
		}

		if stage == StageConstruct {
			dv, err := s.fillDefault(rec, f)
			if err != nil {
				return rep, err
			}
			rec.values[f.Name] = dv
		}
	}

	if s.extraPolicy == ExtraReject {
		var unknown []string
		for k := range input {
			if _, ok := known[k]; !ok {
				unknown = append(unknown, k)
			}
		}
		sort.Strings(unknown)
		for _, k := range unknown {
			rep = AppendReport(rep, ValidationError{
				Path:    k,
				Code:    CodeUnknownField,
				Message: i18n.T(CodeUnknownField, map[string]string{"key": k}),
				Value:   input[k],
				Params:  map[string]string{"key": k},
			})
		}
	}
	return rep, nil
}

// fillDefault applies a chain's default provider through the WRITE operators
// so defaulted values honor the same invariant as supplied ones. Residual
// issues in an author-supplied default surface during validation.
func (s *Schema) fillDefault(rec *Record, f *Field) (any, error) {
	if f.Chain.Default == nil {
		return nil, nil
	}
	ctx := OpContext{Field: f.Name, Path: f.Name, Stage: StageConstruct, Record: rec}
	v, _, err := s.writeChain(ctx, &f.Chain, f.Chain.Default())
	if err != nil {
		return nil, err
	}
	return v, nil
}

// writeChain runs the WRITE-mode operators of a chain over one value,
// recursing into nested records, sequences, and mappings. Values an operator
// cannot handle pass through unchanged; the validate pass reports them.
func (s *Schema) writeChain(ctx OpContext, c *Chain, v any) (any, Report, error) {
	if v == nil {
		return nil, nil, nil
	}
	var rep Report
	switch c.Kind {
	case KindRef:
		if m, ok := v.(map[string]any); ok {
			sub, err := s.registry.Lookup(c.Ref)
			if err != nil {
				return nil, nil, err
			}
			nr, nerr := sub.New(m)
			if nerr != nil {
				if nrep, ok := AsReport(nerr); ok {
					return nil, nrep.rebase(ctx.Path), nil
				}
				return nil, nil, nerr
			}
			v = nr
		}
	case KindList:
		if arr, ok := v.([]any); ok {
			out := make([]any, len(arr))
			for i, e := range arr {
				ectx := ctx
				ectx.Path = ctx.Path + "." + strconv.Itoa(i)
				ne, erep, err := s.writeChain(ectx, c.Elem, e)
				if err != nil {
					return nil, nil, err
				}
				rep = AppendReport(rep, erep...)
				out[i] = ne
			}
			if len(rep) > 0 {
				return nil, rep, nil
			}
			v = out
		}
	case KindMap:
		if m, ok := v.(map[string]any); ok {
			out := make(map[string]any, len(m))
			for _, k := range sortedKeys(m) {
				vctx := ctx
				vctx.Path = joinPath(ctx.Path, k)
				nv, vrep, err := s.writeChain(vctx, c.Value, m[k])
				if err != nil {
					return nil, nil, err
				}
				rep = AppendReport(rep, vrep...)
				out[k] = nv
			}
			if len(rep) > 0 {
				return nil, rep, nil
			}
			v = out
		}
	}
	for i := range c.Ops {
		op := &c.Ops[i]
		if op.Transform == nil {
			continue
		}
		nv, err := op.Transform(ctx, v)
		if err != nil {
			return nil, nil, fmt.Errorf("jsonclasses: %s: operator %q: %w", ctx.Path, op.Name, err)
		}
		v = nv
	}
	return v, rep, nil
}

// validateRecord is the VALIDATE pass over one record, with error paths
// prefixed for nested recursion.
func (s *Schema) validateRecord(rec *Record, prefix string) Report {
	var rep Report
	for i := range s.fields {
		f := &s.fields[i]
		path := joinPath(prefix, f.Name)
		v := rec.values[f.Name]
		if v == nil {
			if f.Chain.Required {
				rep = AppendReport(rep, requiredError(path))
			}
			continue
		}
		ctx := OpContext{Field: f.Name, Path: path, Record: rec}
		rep = AppendReport(rep, s.validateChain(ctx, &f.Chain, v)...)
	}
	return rep
}

// validateChain runs Check operators in chain order, short-circuiting the
// chain after the first failure, then recurses into nested values. Recursion
// is skipped when the chain itself already failed.
func (s *Schema) validateChain(ctx OpContext, c *Chain, v any) Report {
	for i := range c.Ops {
		op := &c.Ops[i]
		if op.Check == nil {
			continue
		}
		if v == nil && !op.NilAware {
			continue
		}
		if ve := op.Check(ctx, v); ve != nil {
			e := *ve
			if e.Path == "" {
				e.Path = ctx.Path
			}
			if e.Value == nil {
				e.Value = v
			}
			return Report{e}
		}
	}
	switch c.Kind {
	case KindRef:
		if sub, ok := v.(*Record); ok {
			return sub.schema.validateRecord(sub, ctx.Path)
		}
	case KindList:
		if arr, ok := v.([]any); ok {
			var rep Report
			for i, e := range arr {
				ectx := ctx
				ectx.Path = ctx.Path + "." + strconv.Itoa(i)
				if e == nil {
					if c.Elem != nil && c.Elem.Required {
						rep = AppendReport(rep, requiredError(ectx.Path))
					}
					continue
				}
				rep = AppendReport(rep, s.validateChain(ectx, c.Elem, e)...)
			}
			return rep
		}
	case KindMap:
		if m, ok := v.(map[string]any); ok {
			var rep Report
			for _, k := range sortedKeys(m) {
				vctx := ctx
				vctx.Path = joinPath(ctx.Path, k)
				mv := m[k]
				if mv == nil {
					if c.Value != nil && c.Value.Required {
						rep = AppendReport(rep, requiredError(vctx.Path))
					}
					continue
				}
				rep = AppendReport(rep, s.validateChain(vctx, c.Value, mv)...)
			}
			return rep
		}
	}
	return nil
}

// serializeRecord is the READ pass: a fresh output tree, keys renamed per the
// key-case policy, fields in declaration order.
func (s *Schema) serializeRecord(rec *Record, opt SerializeOpt) *OrderedMap {
	out := NewOrderedMap()
	for i := range s.fields {
		f := &s.fields[i]
		if f.Chain.Internal {
			continue
		}
		if f.Chain.WriteOnly && !opt.IncludeWriteOnly {
			continue
		}
		ctx := OpContext{Field: f.Name, Path: f.Name, Record: rec}
		out.Set(s.keyCase.ToWire(f.Name), s.presentChain(ctx, &f.Chain, rec.values[f.Name], opt))
	}
	return out
}

func (s *Schema) presentChain(ctx OpContext, c *Chain, v any, opt SerializeOpt) any {
	if v == nil {
		return nil
	}
	switch c.Kind {
	case KindRef:
		if sub, ok := v.(*Record); ok {
			return sub.schema.serializeRecord(sub, opt)
		}
	case KindList:
		if arr, ok := v.([]any); ok {
			out := make([]any, len(arr))
			for i, e := range arr {
				ectx := ctx
				ectx.Path = ctx.Path + "." + strconv.Itoa(i)
				out[i] = s.presentChain(ectx, c.Elem, e, opt)
			}
			return out
		}
	case KindMap:
		if m, ok := v.(map[string]any); ok {
			out := NewOrderedMap()
			for _, k := range sortedKeys(m) {
				vctx := ctx
				vctx.Path = joinPath(ctx.Path, k)
				out.Set(k, s.presentChain(vctx, c.Value, m[k], opt))
			}
			return out
		}
	}
	for i := range c.Ops {
		op := &c.Ops[i]
		if op.Present == nil {
			continue
		}
		v = op.Present(ctx, v)
	}
	return v
}

func requiredError(path string) ValidationError {
	return ValidationError{Path: path, Code: CodeRequired, Message: i18n.T(CodeRequired, nil)}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
