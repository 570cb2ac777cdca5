package jsonclasses

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired      = "required"
	CodeInvalidType   = "invalid_type"
	CodeUnknownField  = "unknown_field"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodePattern       = "pattern"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeReadonly      = "readonly"
	CodeCustom        = "custom"
)

// Schema and lookup errors are programmer mistakes, surfaced as plain errors
// distinct from Report. They abort the operation and are never collected.
var (
	ErrTypeRegistered       = errors.New("jsonclasses: type already registered")
	ErrSchemaNotFound       = errors.New("jsonclasses: schema not found")
	ErrDuplicateField       = errors.New("jsonclasses: duplicate field name")
	ErrIncompatibleOperator = errors.New("jsonclasses: operator incompatible with chain kind")
	ErrImmutable            = errors.New("jsonclasses: record is immutable after construction")
)

// ValidationError represents a single validation entry.
type ValidationError struct {
	Path    string // Dotted field path (for example: address.zipcode, friends.0.name).
	Code    string // One of the codes listed above.
	Message string
	Value   any // The offending value, best-effort.
	// Params carries structured parameters (e.g., {"max":"100", "got":"102"})
	// for i18n and observability.
	Params map[string]string
}

// Report is a collection of validation errors that implements error.
// Entries appear in field declaration order, then nested recursion order.
type Report []ValidationError

// Error summarizes the first few entries.
func (r Report) Error() string {
	if len(r) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(r)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		e := r[i]
		// e.g. required at address.zipcode
		fmt.Fprintf(b, "%s at %s", e.Code, e.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendReport appends entries to the destination, initializing the slice when
// needed.
func AppendReport(dst Report, more ...ValidationError) Report {
	if dst == nil {
		dst = Report{}
	}
	dst = append(dst, more...)
	return dst
}

// AsReport extracts a Report from an error using errors.As internally.
func AsReport(err error) (Report, bool) {
	if err == nil {
		return nil, false
	}
	var r Report
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// rebase prefixes every entry path with the given parent path.
func (r Report) rebase(prefix string) Report {
	if prefix == "" {
		return r
	}
	for i := range r {
		if r[i].Path == "" {
			r[i].Path = prefix
		} else {
			r[i].Path = prefix + "." + r[i].Path
		}
	}
	return r
}

// joinPath composes a dotted path from a parent prefix and a segment.
func joinPath(prefix, seg string) string {
	if prefix == "" {
		return seg
	}
	return prefix + "." + seg
}
