package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// checkLetStmt checks the initializer, resolves any explicit annotation,
// collapses a still-inferred literal type against it (or defaults it when
// there is no annotation), and binds the name in the current scope,
// allowing it to shadow a same-named binding already present there.
func (c *Checker) checkLetStmt(ctx *scope.Context, s ast.LetStmt) (types.TypeId, error) {
	valueType, err := c.checkExpr(ctx, s.Value)
	if err != nil {
		return 0, err
	}

	var expected *types.TypeId
	if s.Type != nil {
		t, err := c.resolveTypeExpr(ctx, s.Type)
		if err != nil {
			return 0, err
		}
		expected = &t
	}

	resolved, ok := resolveInferred(ctx.TypeStore, valueType, expected)
	if !ok {
		got := types.Display(ctx.TypeStore, valueType)
		want := "?"
		if expected != nil {
			want = types.Display(ctx.TypeStore, *expected)
		}
		return 0, diag.NewTypeMismatch(s.Rg, want, got)
	}
	if expected != nil && !assignable(ctx.TypeStore, resolved, *expected) {
		return 0, diag.NewTypeMismatch(s.Rg, types.Display(ctx.TypeStore, *expected), types.Display(ctx.TypeStore, resolved))
	}
	if expected != nil {
		resolved = *expected
	}

	ctx.AddValue(s.Name.Text, resolved, s.Mutable)
	c.Log.Debugf("let %s: %s", s.Name.Text, types.Display(ctx.TypeStore, resolved))
	return types.Void, nil
}
