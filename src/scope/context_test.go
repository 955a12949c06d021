package scope

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yazaldefilimone/lemon/src/types"
)

func TestContextAddValueAndLookup(t *testing.T) {
	ctx := NewContext(types.NewStore())
	id := ctx.AddValue("x", types.I32, true)

	v, ok := ctx.Lookup("x")
	require.True(t, ok)
	require.Equal(t, id, v.ID)
	require.Equal(t, types.I32, v.TypeID)
	require.True(t, v.Mutable)
	require.Equal(t, OriginScoped, v.Origin)

	_, ok = ctx.Lookup("y")
	require.False(t, ok)
}

func TestContextLookupWalksOuterScopes(t *testing.T) {
	ctx := NewContext(types.NewStore())
	ctx.AddValue("outer", types.I32, false)

	ctx.EnterScope(Block())
	defer ctx.ExitScope()

	v, ok := ctx.Lookup("outer")
	require.True(t, ok)
	require.Equal(t, "outer", v.Name)
}

func TestContextShadowingPrefersInnermost(t *testing.T) {
	ctx := NewContext(types.NewStore())
	ctx.AddValue("x", types.I32, false)

	ctx.EnterScope(Block())
	ctx.AddValue("x", types.Bool, false)

	v, ok := ctx.Lookup("x")
	require.True(t, ok)
	require.Equal(t, types.Bool, v.TypeID)

	ctx.ExitScope()
	v, ok = ctx.Lookup("x")
	require.True(t, ok)
	require.Equal(t, types.I32, v.TypeID)
}

func TestContextExitGlobalScopePanics(t *testing.T) {
	ctx := NewContext(types.NewStore())
	require.Panics(t, func() { ctx.ExitScope() })
}

func TestContextHasFnScopeAndHasLoopScope(t *testing.T) {
	ctx := NewContext(types.NewStore())
	require.False(t, ctx.HasFnScope())
	require.False(t, ctx.HasLoopScope())

	ctx.EnterScope(Fn(types.Void))
	require.True(t, ctx.HasFnScope())

	ctx.EnterScope(Loop())
	require.True(t, ctx.HasLoopScope())

	ctx.EnterScope(Fn(types.I32))
	require.False(t, ctx.HasLoopScope(), "a loop in an outer function must not leak into a nested function")
}

func TestContextFnScopeRetTypeAndSelfScopeType(t *testing.T) {
	ctx := NewContext(types.NewStore())
	ctx.EnterScope(Impl(types.I32))
	ctx.EnterScope(Fn(types.Bool))
	ctx.EnterScope(Block())

	ret, ok := ctx.FnScopeRetType()
	require.True(t, ok)
	require.Equal(t, types.Bool, ret)

	self, ok := ctx.SelfScopeType()
	require.True(t, ok)
	require.Equal(t, types.I32, self)
}

func TestContextForkSharesTypeStoreAndBorrowsButNotScopes(t *testing.T) {
	ctx := NewContext(types.NewStore())
	ctx.AddValue("x", types.I32, false)
	ctx.EnterScope(Fn(types.Void))

	fork := ctx.Fork()
	require.Same(t, ctx.TypeStore, fork.TypeStore)
	require.Same(t, ctx.Borrows, fork.Borrows)
	require.Len(t, fork.Scopes, 1, "a fork must start from just the shared global scope")

	fork.EnterScope(Fn(types.Void))
	require.Len(t, ctx.Scopes, 2, "mutating the fork's scope stack must not affect the original context")
}

func TestContextAddBorrowAndAddEscapingBorrow(t *testing.T) {
	ctx := NewContext(types.NewStore())
	id := ctx.AddValue("x", types.I32, true)

	require.True(t, ctx.CanBorrowAs(id, true))
	ctx.AddBorrow(id, true)
	require.False(t, ctx.CanBorrowAs(id, true))

	ctx.EnterScope(Block())
	// An escaping borrow is recorded at the context level, so it still
	// conflicts even from a fresh inner scope whose own local store knows
	// nothing about it.
	ctx.AddEscapingBorrow(id, true)
	require.False(t, ctx.CanBorrowAs(id, false))
}
