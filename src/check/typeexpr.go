package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// resolveTypeExpr turns a parsed type annotation into a TypeId, looking up
// primitives and previously defined struct/alias names in the store's
// registry. Generic arguments are parsed but never resolved past the bare
// name — monomorphization is out of scope, so a Generic's Args are
// ignored and its Name is resolved as if it were a NamedType.
func (c *Checker) resolveTypeExpr(ctx *scope.Context, t ast.TypeExpr) (types.TypeId, error) {
	switch n := t.(type) {
	case ast.NamedType:
		if id, ok := ctx.TypeStore.Primitive(n.Name.Text); ok {
			return id, nil
		}
		if id, ok := c.namedTypes[n.Name.Text]; ok {
			return id, nil
		}
		return 0, diag.NewUnknownType(n.Rg, n.Name.Text)
	case ast.BorrowType:
		of, err := c.resolveTypeExpr(ctx, n.Of)
		if err != nil {
			return 0, err
		}
		return ctx.TypeStore.Add(types.Type{Kind: types.KBorrow, Borrow: &types.BorrowType{Mutable: n.Mutable, Of: of}}), nil
	case ast.Generic:
		if id, ok := ctx.TypeStore.Primitive(n.Name.Text); ok {
			return id, nil
		}
		if id, ok := c.namedTypes[n.Name.Text]; ok {
			return id, nil
		}
		return 0, diag.NewUnknownType(n.Rg, n.Name.Text)
	default:
		return 0, diag.NewUnknownType(t.Range(), "<unknown>")
	}
}
