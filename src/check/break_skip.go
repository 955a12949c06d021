package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

func (c *Checker) checkBreakExpr(ctx *scope.Context, e ast.BreakExpr) (types.TypeId, error) {
	if !ctx.HasLoopScope() {
		return 0, diag.NewBreakOrSkipOutsideLoop(e.Rg)
	}
	if e.Value == nil {
		return types.Void, nil
	}
	return c.checkExpr(ctx, e.Value)
}

func (c *Checker) checkSkipExpr(ctx *scope.Context, e ast.SkipExpr) (types.TypeId, error) {
	if !ctx.HasLoopScope() {
		return 0, diag.NewBreakOrSkipOutsideLoop(e.Rg)
	}
	return types.Void, nil
}
