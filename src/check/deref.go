package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// checkDerefExpr requires the operand's type to be a Borrow and yields
// its pointee's type. There is no Ref variant here — the checker
// standardizes on Borrow everywhere.
func (c *Checker) checkDerefExpr(ctx *scope.Context, e ast.DerefExpr) (types.TypeId, error) {
	t, err := c.checkExpr(ctx, e.Operand)
	if err != nil {
		return 0, err
	}
	ty := ctx.TypeStore.Get(t)
	if ty.Kind != types.KBorrow {
		return 0, diag.NewCannotDereference(e.Rg, types.Display(ctx.TypeStore, t))
	}
	return ty.Borrow.Of, nil
}
