package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// checkRetStmt requires an enclosing Fn/ConstFn scope and checks Value
// (when present) against that scope's declared return type.
func (c *Checker) checkRetStmt(ctx *scope.Context, s ast.RetStmt) (types.TypeId, error) {
	ret, ok := ctx.FnScopeRetType()
	if !ok {
		return 0, diag.NewReturnOutsideFunction(s.Rg)
	}
	if s.Value == nil {
		if ret != types.Void && ret != types.Nothing {
			return 0, diag.NewMissingReturn(s.Rg, types.Display(ctx.TypeStore, ret))
		}
		return types.Nothing, nil
	}
	valueType, err := c.checkExpr(ctx, s.Value)
	if err != nil {
		return 0, err
	}
	resolved, ok := resolveInferred(ctx.TypeStore, valueType, &ret)
	if !ok || !assignable(ctx.TypeStore, resolved, ret) {
		return 0, diag.NewTypeMismatch(s.Rg, types.Display(ctx.TypeStore, ret), types.Display(ctx.TypeStore, valueType))
	}
	return types.Nothing, nil
}
