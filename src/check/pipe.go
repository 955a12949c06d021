package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// checkPipeExpr is sugar: `left |> right` checks the same as
// `right(left)`, desugared here rather than in the parser since the
// parser is out of scope.
func (c *Checker) checkPipeExpr(ctx *scope.Context, e ast.PipeExpr) (types.TypeId, error) {
	call := ast.CallExpr{
		NID:    e.NID,
		Rg:     e.Rg,
		Callee: e.Right,
		Args:   []ast.Expr{e.Left},
	}
	return c.checkCallExpr(ctx, call)
}
