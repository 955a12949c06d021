package check

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yazaldefilimone/lemon/src/types"
)

func TestInferIntTypeNoExpectedDefaultsToI32(t *testing.T) {
	id, ok := inferIntType(8, nil)
	require.True(t, ok)
	require.Equal(t, types.I32, id, "an int literal with no expected type must default to i32 regardless of bit width")

	id, ok = inferIntType(64, nil)
	require.True(t, ok)
	require.Equal(t, types.I32, id)
}

func TestInferIntTypeExpectedMustFit(t *testing.T) {
	expected := types.U16
	id, ok := inferIntType(8, &expected)
	require.True(t, ok)
	require.Equal(t, types.U16, id)

	_, ok = inferIntType(32, &expected)
	require.False(t, ok, "a literal wider than the expected type's width must not fit")
}

func TestInferIntTypeExpectedNonIntegerFails(t *testing.T) {
	expected := types.Bool
	_, ok := inferIntType(8, &expected)
	require.False(t, ok)
}

func TestInferFloatTypeDefaultsToF64(t *testing.T) {
	id, ok := inferFloatType(32, nil)
	require.True(t, ok)
	require.Equal(t, types.F64, id)
}

func TestInferFloatTypeExpectedMustFit(t *testing.T) {
	expected := types.F32
	id, ok := inferFloatType(32, &expected)
	require.True(t, ok)
	require.Equal(t, types.F32, id)

	_, ok = inferFloatType(64, &expected)
	require.False(t, ok)
}

func TestResolveInferredPassesConcreteTypesThrough(t *testing.T) {
	store := types.NewStore()
	id, ok := resolveInferred(store, types.I32, nil)
	require.True(t, ok)
	require.Equal(t, types.I32, id)
}

func TestResolveInferredCollapsesInferInt(t *testing.T) {
	store := types.NewStore()
	infer := store.Add(types.Type{Kind: types.KInferInt, InferBits: 8})

	id, ok := resolveInferred(store, infer, nil)
	require.True(t, ok)
	require.Equal(t, types.I32, id)
}

func TestResolveInferredCollapsesInferFloat(t *testing.T) {
	store := types.NewStore()
	infer := store.Add(types.Type{Kind: types.KInferFloat, InferBits: 64})

	id, ok := resolveInferred(store, infer, nil)
	require.True(t, ok)
	require.Equal(t, types.F64, id)
}
