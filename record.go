package jsonclasses

import (
	"fmt"
	"sort"
)

// Record is an exclusively-owned bag of field values conforming to its
// schema. Every write path (construction and Set) runs the sanitize pass, so
// field values have always passed the WRITE-mode operators of their chains
// even when they would still fail validation.
//
// Records are not safe for concurrent mutation; callers serialize access.
type Record struct {
	schema   *Schema
	values   map[string]any
	isNew    bool
	modified map[string]struct{}
}

// New constructs a record from a JSON-shaped input mapping. Unknown keys are
// dropped or rejected per the schema's extra-field policy; declared fields
// absent from the input receive their default or stay unset. Input errors are
// returned as a Report; a nested lookup failure is returned as a plain error.
func (s *Schema) New(input map[string]any) (*Record, error) {
	rec := &Record{
		schema: s,
		values: make(map[string]any, len(s.fields)),
		isNew:  true,
	}
	rep, err := s.sanitize(rec, input, StageConstruct)
	if err != nil {
		return nil, err
	}
	if len(rep) > 0 {
		return nil, rep
	}
	return rec, nil
}

// Schema returns the schema this record conforms to.
func (r *Record) Schema() *Schema { return r.schema }

// Get returns the current value of a declared field. The second result is
// false when the name is not a declared field.
func (r *Record) Get(name string) (any, bool) {
	if _, ok := r.schema.index[name]; !ok {
		return nil, false
	}
	return r.values[name], true
}

// Set updates field values in a batch through the sanitize pass. Readonly and
// internal input is discarded (or reported, per schema option); writeonce
// fields accept a value only while still unset. Fields absent from updates
// retain their prior values; defaults never run here.
func (r *Record) Set(updates map[string]any) error {
	if !r.schema.mutable {
		return ErrImmutable
	}
	rep, err := r.schema.sanitize(r, updates, StageUpdate)
	if err != nil {
		return err
	}
	if len(rep) > 0 {
		return rep
	}
	return nil
}

// Update assigns final-form values directly, bypassing rule chains and
// accessor marks. It errors on keys that are not declared fields. Values are
// expected to already be in sanitized form; Validate still checks them.
func (r *Record) Update(values map[string]any) error {
	for k := range values {
		if _, ok := r.schema.index[k]; !ok {
			return fmt.Errorf("jsonclasses: field %q not allowed in %s", k, r.schema.name)
		}
	}
	for k, v := range values {
		r.values[k] = v
		r.touch(k)
	}
	return nil
}

// Validate runs the VALIDATE-mode operators of every field, recursing into
// nested records, and returns nil or the full aggregated Report. A field's
// chain short-circuits after its first failing operator; the pass never
// short-circuits across fields.
func (r *Record) Validate() error {
	rep := r.schema.validateRecord(r, "")
	if len(rep) > 0 {
		return rep
	}
	return nil
}

// IsValid reports whether the record currently passes validation.
func (r *Record) IsValid() bool { return r.Validate() == nil }

// IsNew reports whether the record was freshly constructed and has not been
// updated since.
func (r *Record) IsNew() bool { return r.isNew }

// IsModified reports whether any field has been written after construction.
func (r *Record) IsModified() bool { return len(r.modified) > 0 }

// ModifiedFields returns the names of fields written after construction, in
// sorted order.
func (r *Record) ModifiedFields() []string {
	if len(r.modified) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.modified))
	for k := range r.modified {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (r *Record) touch(name string) {
	r.isNew = false
	if r.modified == nil {
		r.modified = map[string]struct{}{}
	}
	r.modified[name] = struct{}{}
}

// SerializeOpt tunes the serialize pass.
type SerializeOpt struct {
	// IncludeWriteOnly emits writeonly fields, which are omitted by default.
	// Internal fields are never emitted.
	IncludeWriteOnly bool
}

// Serialize runs the READ-mode operators of every field and returns a fresh
// JSON-shaped tree with keys renamed per the schema's key-case policy, in
// field declaration order. The record is never mutated.
func (r *Record) Serialize(opt SerializeOpt) *OrderedMap {
	return r.schema.serializeRecord(r, opt)
}

// ToMap is Serialize with default options.
func (r *Record) ToMap() *OrderedMap { return r.Serialize(SerializeOpt{}) }

// MarshalJSON implements json.Marshaler over the serialize pass.
func (r *Record) MarshalJSON() ([]byte, error) { return r.ToMap().MarshalJSON() }

// JSON returns the serialized record as JSON bytes.
func (r *Record) JSON() ([]byte, error) { return r.MarshalJSON() }
