package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// checkBorrowExpr requires the operand to be an addressable place — a
// plain identifier or a field access reaching one through any number of
// MemberExprs (`&s.field`, `&s.inner.field`) — since borrowing an
// arbitrary expression's result has nothing to track. The borrow is
// accounted against the root identifier's ValueID (there is exactly one
// live binding to track conflicts against, however deep the field chain
// goes), while the returned Borrow type wraps the operand's own type, so
// `&s.field` yields a borrow of the field's type, not the whole struct's.
func (c *Checker) checkBorrowExpr(ctx *scope.Context, e ast.BorrowExpr) (types.TypeId, error) {
	root, rootName, err := c.resolveBorrowRoot(ctx, e.Operand)
	if err != nil {
		return 0, err
	}
	if e.Mutable && !root.Mutable {
		return 0, diag.NewAssignToImmutable(e.Rg, rootName)
	}
	if !ctx.CanBorrowAs(root.ID, e.Mutable) {
		return 0, diag.NewBorrowConflict(e.Rg, e.Rg, rootName)
	}
	operandType, err := c.checkExpr(ctx, e.Operand)
	if err != nil {
		return 0, err
	}
	ctx.AddBorrow(root.ID, e.Mutable)
	c.Log.Debugf("borrow %s mutable=%v", rootName, e.Mutable)
	return ctx.TypeStore.Add(types.Type{Kind: types.KBorrow, Borrow: &types.BorrowType{Mutable: e.Mutable, Of: operandType}}), nil
}

// resolveBorrowRoot walks Base through any number of field accesses down
// to the identifier that owns the storage being borrowed, the same
// recursion checkAssignTarget uses to find a mutable place's root.
func (c *Checker) resolveBorrowRoot(ctx *scope.Context, e ast.Expr) (scope.Value, string, error) {
	switch t := e.(type) {
	case ast.IdentExpr:
		v, ok := ctx.Lookup(t.Name.Text)
		if !ok {
			return scope.Value{}, "", diag.NewUnknownIdent(t.Name.Range, t.Name.Text)
		}
		return v, t.Name.Text, nil
	case ast.MemberExpr:
		return c.resolveBorrowRoot(ctx, t.Base)
	default:
		return scope.Value{}, "", diag.NewCannotDereference(e.Range(), "non-addressable operand")
	}
}
