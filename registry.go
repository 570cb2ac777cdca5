package jsonclasses

import (
	"fmt"
	"sync"

	"github.com/WiosoftCrafts/jsonclasses/keycase"
)

// ExtraFieldPolicy decides what happens to input keys that match no declared
// field.
type ExtraFieldPolicy int

const (
	// ExtraIgnore silently drops unknown input keys. This is the default.
	ExtraIgnore ExtraFieldPolicy = iota
	// ExtraReject fails sanitization with one entry per offending key. Known
	// fields are still sanitized before the report is returned.
	ExtraReject
)

// Field is the descriptor of one declared field: its name and resolved chain.
// Created once at registration and never mutated afterwards.
type Field struct {
	Name  string
	Chain Chain
}

// FieldSpec is the registration input for one field.
type FieldSpec struct {
	Name  string
	Chain ChainBuilder
}

// Schema is the registered entry for one record type: the ordered field set
// plus type-level policies. Safe for concurrent use once registration has
// completed.
type Schema struct {
	name           string
	fields         []Field
	index          map[string]int
	extraPolicy    ExtraFieldPolicy
	keyCase        keycase.Converter
	mutable        bool
	reportReadonly bool
	registry       *Registry
}

// Name returns the registered type name.
func (s *Schema) Name() string { return s.name }

// Fields returns the declared fields in declaration order. The returned slice
// must not be modified.
func (s *Schema) Fields() []Field { return s.fields }

// Option configures type-level policies at registration time.
type Option func(*Schema)

// WithExtraFieldPolicy sets the unknown-input-key policy.
func WithExtraFieldPolicy(p ExtraFieldPolicy) Option {
	return func(s *Schema) { s.extraPolicy = p }
}

// WithKeyCase sets the wire naming convention. The default is
// keycase.Identity().
func WithKeyCase(c keycase.Converter) Option {
	return func(s *Schema) {
		if c != nil {
			s.keyCase = c
		}
	}
}

// WithImmutable rejects Set calls after construction.
func WithImmutable() Option {
	return func(s *Schema) { s.mutable = false }
}

// WithReadonlyReporting surfaces discarded readonly/internal input as an
// input error instead of dropping it silently.
func WithReadonlyReporting() Option {
	return func(s *Schema) { s.reportReadonly = true }
}

// Registry maps type names to schemas. It is written once per type at
// registration and read-only afterwards; the mutex only guards the
// registration-happens-before-lookup barrier.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Schema
}

// NewRegistry returns an empty registry, useful for tests and embedded use.
// Most callers use the package-level Register/Lookup against the default
// registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[string]*Schema{}}
}

// Register creates and stores the schema for a record type. It fails on a
// duplicate type name, a duplicate field name, or a chain build error; these
// are programming mistakes and abort registration.
func (r *Registry) Register(name string, fields []FieldSpec, opts ...Option) (*Schema, error) {
	if name == "" {
		return nil, fmt.Errorf("jsonclasses: empty type name")
	}
	s := &Schema{
		name:     name,
		fields:   make([]Field, 0, len(fields)),
		index:    make(map[string]int, len(fields)),
		keyCase:  keycase.Identity(),
		mutable:  true,
		registry: r,
	}
	for _, o := range opts {
		o(s)
	}
	for _, fs := range fields {
		if fs.Name == "" {
			return nil, fmt.Errorf("jsonclasses: %s: empty field name", name)
		}
		if _, dup := s.index[fs.Name]; dup {
			return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateField, name, fs.Name)
		}
		if fs.Chain == nil {
			return nil, fmt.Errorf("jsonclasses: %s.%s: nil chain", name, fs.Name)
		}
		c, err := fs.Chain.BuildChain()
		if err != nil {
			return nil, fmt.Errorf("jsonclasses: %s.%s: %w", name, fs.Name, err)
		}
		s.index[fs.Name] = len(s.fields)
		s.fields = append(s.fields, Field{Name: fs.Name, Chain: c})
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.entries[name]; dup {
		return nil, fmt.Errorf("%w: %s", ErrTypeRegistered, name)
	}
	r.entries[name] = s
	logger.Debug().
		Str("type", name).
		Int("fields", len(s.fields)).
		Msg("schema registered")
	return s, nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, fields []FieldSpec, opts ...Option) *Schema {
	s, err := r.Register(name, fields, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup returns the schema registered for the type name. Failure indicates a
// programming error, not bad input; callers should abort the operation.
func (r *Registry) Lookup(name string) (*Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, name)
	}
	return s, nil
}

var defaultRegistry = NewRegistry()

// Register registers a record type in the default registry.
func Register(name string, fields []FieldSpec, opts ...Option) (*Schema, error) {
	return defaultRegistry.Register(name, fields, opts...)
}

// MustRegister is like Register but panics on error.
func MustRegister(name string, fields []FieldSpec, opts ...Option) *Schema {
	return defaultRegistry.MustRegister(name, fields, opts...)
}

// Lookup resolves a type name against the default registry.
func Lookup(name string) (*Schema, error) {
	return defaultRegistry.Lookup(name)
}
