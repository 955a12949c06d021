package check

import (
	"sync"

	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// ProgramParallel is Program with one addition: once every top-level
// statement has been checked sequentially (so every function signature
// and type definition is visible), each top-level FnStmt's body is
// re-walked concurrently, one goroutine per function, mirroring
// ir.ValidateTree's fan-out: a sync.WaitGroup gates completion and a
// diag.DiagGroup collects errors from every worker without a shared
// lock around the checker itself (each goroutine owns its own Context
// scope stack, seeded from the same already-built global scope).
func (c *Checker) ProgramParallel(p ast.Program, store *types.Store, threads int) (*scope.Context, []*diag.Diag) {
	ctx, diags := c.Program(p, store)
	if threads <= 1 {
		return ctx, diags
	}

	group := diag.NewDiagGroup(16)

	sem := make(chan struct{}, threads)
	var wg sync.WaitGroup
	for _, stmt := range p.Stmts {
		fn, ok := stmt.(ast.FnStmt)
		if !ok {
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(fn ast.FnStmt) {
			defer wg.Done()
			defer func() { <-sem }()
			c.revalidateFn(ctx.Fork(), fn, group)
		}(fn)
	}
	wg.Wait()
	// Stop returns only after the listener has stored every diag it received.
	group.Stop()

	diags = append(diags, group.Diags()...)
	return ctx, diags
}

// revalidateFn re-checks fn's body against a scope stack seeded with the
// shared global scope, reporting any failure into group instead of
// returning it, since the caller runs many of these concurrently.
func (c *Checker) revalidateFn(ctx *scope.Context, fn ast.FnStmt, group *diag.DiagGroup) {
	retType, paramTypes, err := c.signature(ctx, fn.Params, fn.Ret)
	if err != nil {
		group.Append(toDiag(fn.Rg, err))
		return
	}
	if err := c.checkFnBody(ctx, scope.Fn(retType), fn.Params, paramTypes, retType, fn.Body); err != nil {
		group.Append(toDiag(fn.Rg, err))
	}
}
