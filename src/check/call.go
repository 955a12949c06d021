package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// checkCallExpr requires Callee to resolve to a Fn type, the argument
// count to match its parameter count exactly, and each argument to be
// assignable to its corresponding parameter.
func (c *Checker) checkCallExpr(ctx *scope.Context, e ast.CallExpr) (types.TypeId, error) {
	calleeType, err := c.checkExpr(ctx, e.Callee)
	if err != nil {
		return 0, err
	}
	ty := ctx.TypeStore.Get(calleeType)
	if ty.Kind != types.KFn {
		return 0, diag.NewNotAFunction(e.Rg, types.Display(ctx.TypeStore, calleeType))
	}
	if len(e.Args) != len(ty.Fn.Params) {
		return 0, diag.NewArityMismatch(e.Rg, len(ty.Fn.Params), len(e.Args))
	}
	for i, arg := range e.Args {
		param := ty.Fn.Params[i]
		argType, err := c.checkExpr(ctx, arg)
		if err != nil {
			return 0, err
		}
		resolved, ok := resolveInferred(ctx.TypeStore, argType, &param)
		if !ok || !assignable(ctx.TypeStore, resolved, param) {
			return 0, diag.NewTypeMismatch(arg.Range(), types.Display(ctx.TypeStore, param), types.Display(ctx.TypeStore, argType))
		}
	}
	return ty.Fn.Ret, nil
}
