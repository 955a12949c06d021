package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// checkIfStmt requires Cond to be Bool; Then/Else branch types need not
// agree since the statement's own value is discarded.
func (c *Checker) checkIfStmt(ctx *scope.Context, s ast.IfStmt) (types.TypeId, error) {
	condType, err := c.checkExpr(ctx, s.Cond)
	if err != nil {
		return 0, err
	}
	if condType != types.Bool {
		return 0, diag.NewTypeMismatch(s.Cond.Range(), "bool", types.Display(ctx.TypeStore, condType))
	}
	if _, diags := c.checkBody(ctx, scope.Block(), s.Then); len(diags) > 0 {
		return 0, diags[0]
	}
	if s.Else != nil {
		if _, diags := c.checkBody(ctx, scope.Block(), s.Else); len(diags) > 0 {
			return 0, diags[0]
		}
	}
	return types.Void, nil
}
