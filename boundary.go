package jsonclasses

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// NewFromJSON constructs a record from a JSON object. Numbers are decoded as
// json.Number so integer fields survive the trip without float rounding; the
// kind operators coerce them during the write pass.
func (s *Schema) NewFromJSON(data []byte) (*Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var input map[string]any
	if err := dec.Decode(&input); err != nil {
		return nil, fmt.Errorf("jsonclasses: decode %s: %w", s.name, err)
	}
	return s.New(input)
}

// NewFromYAML constructs a record from a YAML mapping.
func (s *Schema) NewFromYAML(data []byte) (*Record, error) {
	var input map[string]any
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("jsonclasses: decode %s: %w", s.name, err)
	}
	return s.New(input)
}
