package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// checkIfExpr requires Cond to be Bool and both branches to be present
// and type-compatible with each other, since an if used in expression
// position must produce one value regardless of which branch runs.
func (c *Checker) checkIfExpr(ctx *scope.Context, e ast.IfExpr) (types.TypeId, error) {
	condType, err := c.checkExpr(ctx, e.Cond)
	if err != nil {
		return 0, err
	}
	if condType != types.Bool {
		return 0, diag.NewTypeMismatch(e.Cond.Range(), "bool", types.Display(ctx.TypeStore, condType))
	}
	if e.Else == nil {
		return 0, diag.NewMissingReturn(e.Rg, "else branch")
	}
	thenType, diags := c.checkBody(ctx, scope.Block(), e.Then)
	if len(diags) > 0 {
		return 0, diags[0]
	}
	elseType, diags := c.checkBody(ctx, scope.Block(), e.Else)
	if len(diags) > 0 {
		return 0, diags[0]
	}
	if !equal(ctx.TypeStore, thenType, elseType) {
		return 0, diag.NewTypeMismatch(e.Rg, types.Display(ctx.TypeStore, thenType), types.Display(ctx.TypeStore, elseType))
	}
	return thenType, nil
}
