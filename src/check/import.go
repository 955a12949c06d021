package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// checkImportExpr resolves e.Path through the Checker's Loader, loads the
// target module's AST, and registers every top-level function it exports
// as an external value in the current scope. File I/O and path
// resolution themselves belong entirely to the Loader implementation;
// the checker only calls the two methods it needs.
func (c *Checker) checkImportExpr(ctx *scope.Context, e ast.ImportExpr) (types.TypeId, error) {
	if c.Loader == nil {
		return 0, diag.NewUnknownType(e.Rg, "no loader configured for import "+e.Path)
	}
	mod, err := c.Loader.ResolveImport(0, e.Path)
	if err != nil {
		return 0, diag.NewUnknownType(e.Rg, e.Path)
	}
	program, err := c.Loader.GetAST(mod)
	if err != nil {
		return 0, diag.NewUnknownType(e.Rg, e.Path)
	}
	for _, stmt := range program.Stmts {
		fn, ok := stmt.(ast.FnStmt)
		if !ok {
			continue
		}
		retType, paramTypes, err := c.signature(ctx, fn.Params, fn.Ret)
		if err != nil {
			return 0, err
		}
		fnType := ctx.TypeStore.Add(types.Type{Kind: types.KFn, Fn: &types.FnType{Params: paramTypes, Ret: retType}})
		id := ctx.AddValueExternal(fn.Name.Text, fnType, false)
		ctx.Current().AddFnValue(scope.Value{ID: id, Name: fn.Name.Text, TypeID: fnType, Origin: scope.OriginExternal})
	}
	return types.Void, nil
}
