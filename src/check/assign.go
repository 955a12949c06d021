package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// checkAssignExpr requires Target to resolve to a mutable place: a plain
// identifier bound mutable, or a field access through one. DerefExpr
// targets are mutable when the borrow itself is mutable.
func (c *Checker) checkAssignExpr(ctx *scope.Context, e ast.AssignExpr) (types.TypeId, error) {
	if err := c.checkAssignTarget(ctx, e.Target); err != nil {
		return 0, err
	}
	targetType, err := c.checkExpr(ctx, e.Target)
	if err != nil {
		return 0, err
	}
	valueType, err := c.checkExpr(ctx, e.Value)
	if err != nil {
		return 0, err
	}
	resolved, ok := resolveInferred(ctx.TypeStore, valueType, &targetType)
	if !ok || !assignable(ctx.TypeStore, resolved, targetType) {
		return 0, diag.NewTypeMismatch(e.Rg, types.Display(ctx.TypeStore, targetType), types.Display(ctx.TypeStore, valueType))
	}
	return types.Void, nil
}

func (c *Checker) checkAssignTarget(ctx *scope.Context, target ast.Expr) error {
	switch t := target.(type) {
	case ast.IdentExpr:
		v, ok := ctx.Lookup(t.Name.Text)
		if !ok {
			return diag.NewUnknownIdent(t.Name.Range, t.Name.Text)
		}
		if !v.Mutable {
			return diag.NewAssignToImmutable(t.Name.Range, t.Name.Text)
		}
		return nil
	case ast.MemberExpr:
		return c.checkAssignTarget(ctx, t.Base)
	case ast.DerefExpr:
		baseType, err := c.checkExpr(ctx, t.Operand)
		if err != nil {
			return err
		}
		ty := ctx.TypeStore.Get(baseType)
		if ty.Kind != types.KBorrow {
			return diag.NewCannotDereference(t.Rg, types.Display(ctx.TypeStore, baseType))
		}
		if !ty.Borrow.Mutable {
			return diag.NewAssignToImmutable(t.Rg, "dereferenced shared borrow")
		}
		return nil
	default:
		return diag.NewAssignToImmutable(target.Range(), "non-place expression")
	}
}
