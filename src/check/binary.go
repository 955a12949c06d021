package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// checkBinaryExpr checks both operands, collapses either side's still-
// inferred numeric type against the other, and either returns Bool for a
// comparison operator or the shared operand type for an arithmetic one.
// And/Or require Bool on both sides.
func (c *Checker) checkBinaryExpr(ctx *scope.Context, e ast.BinaryExpr) (types.TypeId, error) {
	lt, err := c.checkExpr(ctx, e.Left)
	if err != nil {
		return 0, err
	}
	rt, err := c.checkExpr(ctx, e.Right)
	if err != nil {
		return 0, err
	}

	if e.Op == ast.And || e.Op == ast.Or {
		if lt != types.Bool || rt != types.Bool {
			return 0, diag.NewInvalidOperator(e.Rg, e.Op.String(), types.Display(ctx.TypeStore, lt))
		}
		return types.Bool, nil
	}

	resolvedL, okL := resolveInferred(ctx.TypeStore, lt, nil)
	resolvedR, okR := resolveInferred(ctx.TypeStore, rt, &resolvedL)
	if okL && okR && equal(ctx.TypeStore, resolvedL, resolvedR) {
		lt, rt = resolvedL, resolvedR
	} else {
		resolvedR2, okR2 := resolveInferred(ctx.TypeStore, rt, nil)
		resolvedL2, okL2 := resolveInferred(ctx.TypeStore, lt, &resolvedR2)
		if okR2 && okL2 && equal(ctx.TypeStore, resolvedL2, resolvedR2) {
			lt, rt = resolvedL2, resolvedR2
		}
	}

	if !equal(ctx.TypeStore, lt, rt) {
		return 0, diag.NewTypeMismatch(e.Rg, types.Display(ctx.TypeStore, lt), types.Display(ctx.TypeStore, rt))
	}
	lty := ctx.TypeStore.Get(lt)
	if !lty.IsNumeric() && lt != types.Bool {
		return 0, diag.NewInvalidOperator(e.Rg, e.Op.String(), types.Display(ctx.TypeStore, lt))
	}
	if e.Op.IsComparison() {
		return types.Bool, nil
	}
	return lt, nil
}
