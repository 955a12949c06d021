package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

func (c *Checker) checkUnaryExpr(ctx *scope.Context, e ast.UnaryExpr) (types.TypeId, error) {
	t, err := c.checkExpr(ctx, e.Operand)
	if err != nil {
		return 0, err
	}
	resolved, ok := resolveInferred(ctx.TypeStore, t, nil)
	if !ok {
		return 0, diag.NewInvalidOperator(e.Rg, e.Op.String(), types.Display(ctx.TypeStore, t))
	}
	ty := ctx.TypeStore.Get(resolved)
	switch e.Op {
	case ast.Neg:
		if !ty.IsNumeric() {
			return 0, diag.NewInvalidOperator(e.Rg, e.Op.String(), types.Display(ctx.TypeStore, resolved))
		}
		return resolved, nil
	case ast.Not:
		if resolved != types.Bool {
			return 0, diag.NewInvalidOperator(e.Rg, e.Op.String(), types.Display(ctx.TypeStore, resolved))
		}
		return types.Bool, nil
	default:
		return 0, diag.NewInvalidOperator(e.Rg, e.Op.String(), types.Display(ctx.TypeStore, resolved))
	}
}
