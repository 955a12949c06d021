package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

func (c *Checker) checkIdentExpr(ctx *scope.Context, e ast.IdentExpr) (types.TypeId, error) {
	if v, ok := ctx.Lookup(e.Name.Text); ok {
		return v.TypeID, nil
	}
	if v, ok := ctx.LookupFn(e.Name.Text); ok {
		return v.TypeID, nil
	}
	return 0, diag.NewUnknownIdent(e.Name.Range, e.Name.Text)
}
