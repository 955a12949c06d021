package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// checkForStmt requires From and To to both be (or collapse to) the same
// integer type, then opens a Loop scope with Binding bound to that type.
func (c *Checker) checkForStmt(ctx *scope.Context, s ast.ForStmt) (types.TypeId, error) {
	fromType, err := c.checkExpr(ctx, s.From)
	if err != nil {
		return 0, err
	}
	toType, err := c.checkExpr(ctx, s.To)
	if err != nil {
		return 0, err
	}
	resolvedFrom, ok := resolveInferred(ctx.TypeStore, fromType, nil)
	if !ok {
		return 0, diag.NewTypeMismatch(s.From.Range(), "integer", types.Display(ctx.TypeStore, fromType))
	}
	resolvedTo, ok := resolveInferred(ctx.TypeStore, toType, &resolvedFrom)
	if !ok || !equal(ctx.TypeStore, resolvedFrom, resolvedTo) {
		return 0, diag.NewTypeMismatch(s.To.Range(), types.Display(ctx.TypeStore, resolvedFrom), types.Display(ctx.TypeStore, toType))
	}
	if !resolvedFrom.IsInt() {
		return 0, diag.NewTypeMismatch(s.Rg, "integer", types.Display(ctx.TypeStore, resolvedFrom))
	}

	ctx.EnterScope(scope.Loop())
	defer ctx.ExitScope()
	ctx.AddValue(s.Binding.Text, resolvedFrom, false)
	for _, stmt := range s.Body {
		if _, err := c.checkStmt(ctx, stmt); err != nil {
			return 0, err
		}
	}
	return types.Void, nil
}
