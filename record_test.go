package jsonclasses_test

import (
	"testing"

	"github.com/WiosoftCrafts/jsonclasses"
	"github.com/WiosoftCrafts/jsonclasses/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func articleSchema(t *testing.T, opts ...jsonclasses.Option) *jsonclasses.Schema {
	t.Helper()
	reg := jsonclasses.NewRegistry()
	s, err := reg.Register("Article", []jsonclasses.FieldSpec{
		{Name: "title", Chain: dsl.String().MaxLength(100).Required()},
		{Name: "content", Chain: dsl.String().Required()},
		{Name: "read_count", Chain: dsl.Int().Default(0).Required()},
	}, opts...)
	require.NoError(t, err)
	return s
}

func TestNewFillsDefaults(t *testing.T) {
	s := articleSchema(t)
	rec, err := s.New(map[string]any{"title": "Hi", "content": "Body"})
	require.NoError(t, err)

	title, ok := rec.Get("title")
	require.True(t, ok)
	assert.Equal(t, "Hi", title)

	count, ok := rec.Get("read_count")
	require.True(t, ok)
	assert.Equal(t, int64(0), count)

	require.NoError(t, rec.Validate())
	assert.True(t, rec.IsValid())
	assert.True(t, rec.IsNew())
	assert.False(t, rec.IsModified())
}

func TestSerializeOrderAndJSON(t *testing.T) {
	s := articleSchema(t)
	rec, err := s.New(map[string]any{"title": "Hi", "content": "Body"})
	require.NoError(t, err)

	out := rec.ToMap()
	assert.Equal(t, []string{"title", "content", "read_count"}, out.Keys())

	data, err := rec.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Hi","content":"Body","read_count":0}`, string(data))
	// declaration order on the wire
	assert.Equal(t, `{"title":"Hi","content":"Body","read_count":0}`, string(data))
}

func TestGetUndeclaredField(t *testing.T) {
	s := articleSchema(t)
	rec, err := s.New(map[string]any{"title": "Hi", "content": "Body"})
	require.NoError(t, err)

	_, ok := rec.Get("nope")
	assert.False(t, ok)
}

func TestUnknownKeysIgnoredByDefault(t *testing.T) {
	s := articleSchema(t)
	rec, err := s.New(map[string]any{"title": "Hi", "content": "Body", "bogus": 1})
	require.NoError(t, err)
	_, ok := rec.Get("bogus")
	assert.False(t, ok)
}

func TestUnknownKeysRejected(t *testing.T) {
	s := articleSchema(t, jsonclasses.WithExtraFieldPolicy(jsonclasses.ExtraReject))
	_, err := s.New(map[string]any{"title": "Hi", "content": "Body", "bogus": 1, "also": 2})
	require.Error(t, err)

	rep, ok := jsonclasses.AsReport(err)
	require.True(t, ok)
	require.Len(t, rep, 2)
	// deterministic: offending keys sorted
	assert.Equal(t, "also", rep[0].Path)
	assert.Equal(t, jsonclasses.CodeUnknownField, rep[0].Code)
	assert.Equal(t, "bogus", rep[1].Path)
}

func TestSetRunsChains(t *testing.T) {
	s := articleSchema(t)
	rec, err := s.New(map[string]any{"title": "Hi", "content": "Body"})
	require.NoError(t, err)

	require.NoError(t, rec.Set(map[string]any{"read_count": 7}))
	count, _ := rec.Get("read_count")
	assert.Equal(t, int64(7), count)

	assert.False(t, rec.IsNew())
	assert.True(t, rec.IsModified())
	assert.Equal(t, []string{"read_count"}, rec.ModifiedFields())
}

func TestSetExplicitNullClears(t *testing.T) {
	s := articleSchema(t)
	rec, err := s.New(map[string]any{"title": "Hi", "content": "Body"})
	require.NoError(t, err)

	require.NoError(t, rec.Set(map[string]any{"title": nil}))
	title, ok := rec.Get("title")
	require.True(t, ok)
	assert.Nil(t, title)

	rep, ok := jsonclasses.AsReport(rec.Validate())
	require.True(t, ok)
	require.Len(t, rep, 1)
	assert.Equal(t, "title", rep[0].Path)
	assert.Equal(t, jsonclasses.CodeRequired, rep[0].Code)
}

func TestImmutableSchemaRejectsSet(t *testing.T) {
	s := articleSchema(t, jsonclasses.WithImmutable())
	rec, err := s.New(map[string]any{"title": "Hi", "content": "Body"})
	require.NoError(t, err)

	err = rec.Set(map[string]any{"title": "New"})
	assert.ErrorIs(t, err, jsonclasses.ErrImmutable)
}

func TestUpdateBypassesChains(t *testing.T) {
	s := articleSchema(t)
	rec, err := s.New(map[string]any{"title": "Hi", "content": "Body"})
	require.NoError(t, err)

	// Update assigns final-form values; a wrong-typed value surfaces at Validate.
	require.NoError(t, rec.Update(map[string]any{"read_count": "oops"}))
	rep, ok := jsonclasses.AsReport(rec.Validate())
	require.True(t, ok)
	require.Len(t, rep, 1)
	assert.Equal(t, "read_count", rep[0].Path)
	assert.Equal(t, jsonclasses.CodeInvalidType, rep[0].Code)

	err = rec.Update(map[string]any{"nope": 1})
	assert.Error(t, err)
}

func TestReadonlyDiscardsInput(t *testing.T) {
	reg := jsonclasses.NewRegistry()
	s, err := reg.Register("Coupon", []jsonclasses.FieldSpec{
		{Name: "code", Chain: dsl.String().Required()},
		{Name: "used", Chain: dsl.Bool().Readonly().Default(false)},
	})
	require.NoError(t, err)

	rec, err := s.New(map[string]any{"code": "SAVE10", "used": true})
	require.NoError(t, err)
	used, _ := rec.Get("used")
	assert.Equal(t, false, used)

	require.NoError(t, rec.Set(map[string]any{"used": true}))
	used, _ = rec.Get("used")
	assert.Equal(t, false, used)

	// Update is the internal escape hatch for readonly fields.
	require.NoError(t, rec.Update(map[string]any{"used": true}))
	used, _ = rec.Get("used")
	assert.Equal(t, true, used)
}

func TestReadonlyReporting(t *testing.T) {
	reg := jsonclasses.NewRegistry()
	s, err := reg.Register("Coupon", []jsonclasses.FieldSpec{
		{Name: "code", Chain: dsl.String().Required()},
		{Name: "used", Chain: dsl.Bool().Readonly().Default(false)},
	}, jsonclasses.WithReadonlyReporting())
	require.NoError(t, err)

	_, err = s.New(map[string]any{"code": "SAVE10", "used": true})
	rep, ok := jsonclasses.AsReport(err)
	require.True(t, ok)
	require.Len(t, rep, 1)
	assert.Equal(t, "used", rep[0].Path)
	assert.Equal(t, jsonclasses.CodeReadonly, rep[0].Code)
}

func TestWriteOnceFreezesAfterFirstWrite(t *testing.T) {
	reg := jsonclasses.NewRegistry()
	s, err := reg.Register("Post", []jsonclasses.FieldSpec{
		{Name: "slug", Chain: dsl.String().WriteOnce()},
	})
	require.NoError(t, err)

	rec, err := s.New(map[string]any{})
	require.NoError(t, err)

	require.NoError(t, rec.Set(map[string]any{"slug": "first"}))
	slug, _ := rec.Get("slug")
	assert.Equal(t, "first", slug)

	require.NoError(t, rec.Set(map[string]any{"slug": "second"}))
	slug, _ = rec.Get("slug")
	assert.Equal(t, "first", slug)
}

func TestWriteOnlyOmittedFromSerialization(t *testing.T) {
	reg := jsonclasses.NewRegistry()
	s, err := reg.Register("User", []jsonclasses.FieldSpec{
		{Name: "email", Chain: dsl.String().Required()},
		{Name: "password", Chain: dsl.String().WriteOnly().Required()},
		{Name: "session_token", Chain: dsl.String().Internal()},
	})
	require.NoError(t, err)

	rec, err := s.New(map[string]any{"email": "a@b.c", "password": "hunter2"})
	require.NoError(t, err)
	require.NoError(t, rec.Update(map[string]any{"session_token": "tok"}))

	out := rec.ToMap()
	assert.Equal(t, []string{"email"}, out.Keys())

	withSecrets := rec.Serialize(jsonclasses.SerializeOpt{IncludeWriteOnly: true})
	assert.Equal(t, []string{"email", "password"}, withSecrets.Keys())
}

func TestInternalInputDiscarded(t *testing.T) {
	reg := jsonclasses.NewRegistry()
	s, err := reg.Register("Session", []jsonclasses.FieldSpec{
		{Name: "user", Chain: dsl.String().Required()},
		{Name: "token", Chain: dsl.String().Internal().DefaultUUID()},
	})
	require.NoError(t, err)

	rec, err := s.New(map[string]any{"user": "u1", "token": "forged"})
	require.NoError(t, err)
	tok, _ := rec.Get("token")
	require.IsType(t, "", tok)
	assert.NotEqual(t, "forged", tok)
	assert.Len(t, tok, 36)
}

func TestDefaultFuncRunsPerRecord(t *testing.T) {
	reg := jsonclasses.NewRegistry()
	n := 0
	s, err := reg.Register("Seq", []jsonclasses.FieldSpec{
		{Name: "seq", Chain: dsl.Int().DefaultFunc(func() any { n++; return n })},
	})
	require.NoError(t, err)

	a, err := s.New(map[string]any{})
	require.NoError(t, err)
	b, err := s.New(map[string]any{})
	require.NoError(t, err)

	av, _ := a.Get("seq")
	bv, _ := b.Get("seq")
	assert.Equal(t, int64(1), av)
	assert.Equal(t, int64(2), bv)
}

func TestRegisterErrors(t *testing.T) {
	reg := jsonclasses.NewRegistry()
	fields := []jsonclasses.FieldSpec{
		{Name: "a", Chain: dsl.String()},
	}
	_, err := reg.Register("Dup", fields)
	require.NoError(t, err)
	_, err = reg.Register("Dup", fields)
	assert.ErrorIs(t, err, jsonclasses.ErrTypeRegistered)

	_, err = reg.Register("BadFields", []jsonclasses.FieldSpec{
		{Name: "a", Chain: dsl.String()},
		{Name: "a", Chain: dsl.Int()},
	})
	assert.ErrorIs(t, err, jsonclasses.ErrDuplicateField)

	_, err = reg.Lookup("Missing")
	assert.ErrorIs(t, err, jsonclasses.ErrSchemaNotFound)
}
