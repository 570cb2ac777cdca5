package dsl_test

import (
	"testing"

	"github.com/WiosoftCrafts/jsonclasses"
	"github.com/WiosoftCrafts/jsonclasses/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainsAreValueImmutable(t *testing.T) {
	base := dsl.String().MinLength(2)
	required := base.Required()
	upper := base.Uppercase()

	bc, err := base.BuildChain()
	require.NoError(t, err)
	rc, err := required.BuildChain()
	require.NoError(t, err)
	uc, err := upper.BuildChain()
	require.NoError(t, err)

	assert.False(t, bc.Required)
	assert.True(t, rc.Required)
	// the derived chain gained an op without touching the base
	assert.Len(t, bc.Ops, 2)
	assert.Len(t, uc.Ops, 3)
}

func TestOptionalClearsInheritedRequired(t *testing.T) {
	base := dsl.String().Required()
	c, err := base.Optional().BuildChain()
	require.NoError(t, err)
	assert.False(t, c.Required)
}

func TestIncompatibleOperatorIsBuildError(t *testing.T) {
	_, err := dsl.Bool().MaxLength(3).BuildChain()
	assert.ErrorIs(t, err, jsonclasses.ErrIncompatibleOperator)

	_, err = dsl.String().Min(1).BuildChain()
	assert.ErrorIs(t, err, jsonclasses.ErrIncompatibleOperator)
}

func TestIncompatibleOperatorSurfacesAtRegister(t *testing.T) {
	reg := jsonclasses.NewRegistry()
	_, err := reg.Register("Broken", []jsonclasses.FieldSpec{
		{Name: "flag", Chain: dsl.Bool().Lowercase()},
	})
	assert.ErrorIs(t, err, jsonclasses.ErrIncompatibleOperator)
}

func TestMatchBadPatternIsBuildError(t *testing.T) {
	_, err := dsl.String().Match("(").BuildChain()
	assert.Error(t, err)
}

func TestFirstBuildErrorWins(t *testing.T) {
	c := dsl.Bool().MaxLength(3).Min(1)
	_, err := c.BuildChain()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maxlength")
}

func TestListCarriesElementBuildError(t *testing.T) {
	_, err := dsl.List(dsl.String().Match("(")).BuildChain()
	assert.Error(t, err)
}

func TestFlagsCompile(t *testing.T) {
	c, err := dsl.String().Readonly().WriteOnce().WriteOnly().Internal().Default("x").BuildChain()
	require.NoError(t, err)
	assert.True(t, c.Readonly)
	assert.True(t, c.WriteOnce)
	assert.True(t, c.WriteOnly)
	assert.True(t, c.Internal)
	require.NotNil(t, c.Default)
	assert.Equal(t, "x", c.Default())
}
