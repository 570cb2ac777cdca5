// Package keycase converts between declared field names and wire key naming
// conventions.
//
// Conversions are fail-closed: a name that does not cleanly match the source
// convention is passed through unchanged rather than mangled, so exotic keys
// survive a round trip.
package keycase

import (
	"strings"
	"unicode"
)

// Converter maps a declared field name to its wire key and back. Both
// directions must be inverses over names that match the convention.
type Converter interface {
	ToWire(name string) string
	FromWire(key string) string
}

type identity struct{}

func (identity) ToWire(name string) string  { return name }
func (identity) FromWire(key string) string { return key }

// Identity keeps declared names as wire keys unchanged. This is the default.
func Identity() Converter { return identity{} }

type camel struct{}

// Camel maps snake_case declared names to camelCase wire keys.
func Camel() Converter { return camel{} }

func (camel) ToWire(name string) string {
	if !isCleanSnake(name) {
		return name
	}
	parts := strings.Split(name, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

func (camel) FromWire(key string) string {
	if !isCleanCamel(key) {
		return key
	}
	var b strings.Builder
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isCleanSnake reports whether name is lowercase snake_case: ascii lowercase
// letters, digits and single underscores, every token starting with a letter.
func isCleanSnake(name string) bool {
	if name == "" {
		return false
	}
	for _, p := range strings.Split(name, "_") {
		if p == "" {
			return false
		}
		if p[0] < 'a' || p[0] > 'z' {
			return false
		}
		for i := 1; i < len(p); i++ {
			c := p[i]
			if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
				return false
			}
		}
	}
	return true
}

// isCleanCamel reports whether key is camelCase: a lowercase ascii letter
// first, then letters and digits with no consecutive uppercase runes.
func isCleanCamel(key string) bool {
	if key == "" {
		return false
	}
	if key[0] < 'a' || key[0] > 'z' {
		return false
	}
	prevUpper := false
	for i := 1; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'A' && c <= 'Z':
			if prevUpper {
				return false
			}
			prevUpper = true
		case (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9'):
			prevUpper = false
		default:
			return false
		}
	}
	return true
}
