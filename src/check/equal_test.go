package check

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yazaldefilimone/lemon/src/types"
)

func TestEqualVoidAndNothingCompareEqual(t *testing.T) {
	store := types.NewStore()
	require.True(t, equal(store, types.Void, types.Nothing))
	require.True(t, equal(store, types.Nothing, types.Void))
}

func TestEqualBorrowIgnoresMutability(t *testing.T) {
	store := types.NewStore()
	shared := store.Add(types.Type{Kind: types.KBorrow, Borrow: &types.BorrowType{Mutable: false, Of: types.I32}})
	exclusive := store.Add(types.Type{Kind: types.KBorrow, Borrow: &types.BorrowType{Mutable: true, Of: types.I32}})

	require.True(t, equal(store, shared, exclusive), "equal must ignore mutability, only assignable cares")
}

func TestEqualStructByName(t *testing.T) {
	store := types.NewStore()
	a := store.Add(types.Type{Kind: types.KStruct, Struct: &types.StructType{Name: "Point"}})
	b := store.Add(types.Type{Kind: types.KStruct, Struct: &types.StructType{Name: "Point"}})
	c := store.Add(types.Type{Kind: types.KStruct, Struct: &types.StructType{Name: "Line"}})

	require.True(t, equal(store, a, b))
	require.False(t, equal(store, a, c))
}

func TestEqualAliasIsTransparent(t *testing.T) {
	store := types.NewStore()
	alias := store.Add(types.Type{Kind: types.KAlias, Alias: &types.AliasType{Name: "Int", Of: types.I32}})

	require.True(t, equal(store, alias, types.I32))
	require.True(t, equal(store, types.I32, alias))
}

func TestEqualFnComparesParamsAndRet(t *testing.T) {
	store := types.NewStore()
	a := store.Add(types.Type{Kind: types.KFn, Fn: &types.FnType{Params: []types.TypeId{types.I32}, Ret: types.Bool}})
	b := store.Add(types.Type{Kind: types.KFn, Fn: &types.FnType{Params: []types.TypeId{types.I32}, Ret: types.Bool}})
	c := store.Add(types.Type{Kind: types.KFn, Fn: &types.FnType{Params: []types.TypeId{types.F64}, Ret: types.Bool}})

	require.True(t, equal(store, a, b))
	require.False(t, equal(store, a, c))
}

func TestAssignableAllowsMutableToImmutableBorrowDecay(t *testing.T) {
	store := types.NewStore()
	shared := store.Add(types.Type{Kind: types.KBorrow, Borrow: &types.BorrowType{Mutable: false, Of: types.I32}})
	exclusive := store.Add(types.Type{Kind: types.KBorrow, Borrow: &types.BorrowType{Mutable: true, Of: types.I32}})

	require.True(t, assignable(store, exclusive, shared), "a &mut T must be assignable where &T is expected")
	require.False(t, assignable(store, shared, exclusive), "a &T must never be assignable where &mut T is expected")
}

func TestAssignableFallsBackToEqual(t *testing.T) {
	store := types.NewStore()
	require.True(t, assignable(store, types.I32, types.I32))
	require.False(t, assignable(store, types.I32, types.Bool))
}
