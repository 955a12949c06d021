package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

func (c *Checker) checkBlockStmt(ctx *scope.Context, s ast.BlockStmt) (types.TypeId, error) {
	last, diags := c.checkBody(ctx, scope.Block(), s.Body)
	if len(diags) > 0 {
		return 0, diags[0]
	}
	return last, nil
}
