package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// checkConstDeclStmt is checkLetStmt restricted to module-level constants:
// always immutable, the type annotation is mandatory rather than optional.
func (c *Checker) checkConstDeclStmt(ctx *scope.Context, s ast.ConstDeclStmt) (types.TypeId, error) {
	expected, err := c.resolveTypeExpr(ctx, s.Type)
	if err != nil {
		return 0, err
	}
	valueType, err := c.checkExpr(ctx, s.Value)
	if err != nil {
		return 0, err
	}
	resolved, ok := resolveInferred(ctx.TypeStore, valueType, &expected)
	if !ok || !assignable(ctx.TypeStore, resolved, expected) {
		return 0, diag.NewTypeMismatch(s.Rg, types.Display(ctx.TypeStore, expected), types.Display(ctx.TypeStore, valueType))
	}
	ctx.AddValue(s.Name.Text, expected, false)
	return types.Void, nil
}
