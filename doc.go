// Package jsonclasses provides:
//
// - Declarative record schemas built from composable, immutable rule chains
// - Three pipeline passes: sanitize on write, validate on demand, serialize on read
// - A stable error model via Report (dotted path, code, message, offending value)
// - Key-case conversion between internal and wire field names at the boundary only
//
// Design policy:
// - Keep the engine (registry, record, pipeline, errors) in the root package.
// - Place the fluent chain DSL under dsl/, key-case converters under keycase/,
//   and message catalogs under i18n/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	article := jsonclasses.MustRegister("Article", []jsonclasses.FieldSpec{
//		{Name: "title", Chain: dsl.String().MaxLength(100).Required()},
//		{Name: "content", Chain: dsl.String().Required()},
//		{Name: "read_count", Chain: dsl.Int().Default(0).Required()},
//	})
//
//	rec, err := article.NewFromJSON(body)
//	if err := rec.Validate(); err != nil { ... }
//	out, err := rec.JSON()
package jsonclasses
