package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

func (c *Checker) checkWhileStmt(ctx *scope.Context, s ast.WhileStmt) (types.TypeId, error) {
	condType, err := c.checkExpr(ctx, s.Cond)
	if err != nil {
		return 0, err
	}
	if condType != types.Bool {
		return 0, diag.NewTypeMismatch(s.Cond.Range(), "bool", types.Display(ctx.TypeStore, condType))
	}
	if _, diags := c.checkBody(ctx, scope.Loop(), s.Body); len(diags) > 0 {
		return 0, diags[0]
	}
	return types.Void, nil
}
