package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// checkMemberExpr resolves Base.Field against Base's struct type (looking
// through a Borrow transparently: `&S`.field reads through the borrow the
// same way a direct value would). A Field that names no field of the
// struct but a method checkImplStmt registered as "Struct.Field" resolves
// to that method's Fn type, whose parameters exclude the self receiver.
func (c *Checker) checkMemberExpr(ctx *scope.Context, e ast.MemberExpr) (types.TypeId, error) {
	baseType, err := c.checkExpr(ctx, e.Base)
	if err != nil {
		return 0, err
	}
	t := ctx.TypeStore.Get(baseType)
	if t.Kind == types.KBorrow {
		t = ctx.TypeStore.Get(t.Borrow.Of)
	}
	if t.Kind != types.KStruct {
		return 0, diag.NewTypeMismatch(e.Rg, "struct", types.Display(ctx.TypeStore, baseType))
	}
	for _, f := range t.Struct.Fields {
		if f.Name == e.Field.Text {
			return f.Type, nil
		}
	}
	if v, ok := ctx.LookupFn(t.Struct.Name + "." + e.Field.Text); ok {
		return v.TypeID, nil
	}
	return 0, diag.NewUnknownIdent(e.Field.Range, e.Field.Text)
}

// checkAssociateExpr resolves Type::Member, an impl's associated
// function or constant, against the current Checker's fn-value registry
// recorded for that type under the synthesized name "Type.Member" (see
// checkImplStmt).
func (c *Checker) checkAssociateExpr(ctx *scope.Context, e ast.AssociateExpr) (types.TypeId, error) {
	name := e.Type.Text + "." + e.Member.Text
	if v, ok := ctx.LookupFn(name); ok {
		return v.TypeID, nil
	}
	return 0, diag.NewUnknownIdent(e.Rg, name)
}
