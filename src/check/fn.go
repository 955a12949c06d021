package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// signature resolves a parameter/return list into a Fn type, without
// opening any scope — used by FnStmt/ExternFnStmt/ConstFnStmt/FnExpr
// alike to register the callable's type before its body (if any) is
// checked, so recursive calls resolve.
func (c *Checker) signature(ctx *scope.Context, params []ast.FnParam, ret ast.TypeExpr) (types.TypeId, []types.TypeId, error) {
	paramTypes := make([]types.TypeId, len(params))
	for i, p := range params {
		t, err := c.resolveTypeExpr(ctx, p.Type)
		if err != nil {
			return 0, nil, err
		}
		paramTypes[i] = t
	}
	retType := types.Void
	if ret != nil {
		t, err := c.resolveTypeExpr(ctx, ret)
		if err != nil {
			return 0, nil, err
		}
		retType = t
	}
	return retType, paramTypes, nil
}

func (c *Checker) checkFnBody(ctx *scope.Context, kind scope.ScopeKind, params []ast.FnParam, paramTypes []types.TypeId, retType types.TypeId, body []ast.Stmt) error {
	ctx.EnterScope(kind)
	defer ctx.ExitScope()
	for i, p := range params {
		ctx.AddValue(p.Name.Text, paramTypes[i], p.Mutable)
	}
	var last types.TypeId = types.Void
	for _, stmt := range body {
		t, err := c.checkStmt(ctx, stmt)
		if err != nil {
			return err
		}
		last = t
	}
	if retType != types.Void && retType != types.Nothing && !alwaysReturns(body) {
		if !equal(ctx.TypeStore, last, retType) {
			return diag.NewMissingReturn(body[len(body)-1].Range(), types.Display(ctx.TypeStore, retType))
		}
	}
	return nil
}

// alwaysReturns reports whether body's last statement is a RetStmt, a
// cheap approximation of full control-flow reachability adequate for the
// checker's implicit-return rule: a function whose last statement is not
// a return must have that statement's own value match the declared
// return type instead.
func alwaysReturns(body []ast.Stmt) bool {
	if len(body) == 0 {
		return false
	}
	_, ok := body[len(body)-1].(ast.RetStmt)
	return ok
}

func (c *Checker) checkFnStmt(ctx *scope.Context, s ast.FnStmt) (types.TypeId, error) {
	retType, paramTypes, err := c.signature(ctx, s.Params, s.Ret)
	if err != nil {
		return 0, err
	}
	fnType := ctx.TypeStore.Add(types.Type{Kind: types.KFn, Fn: &types.FnType{Params: paramTypes, Ret: retType}})
	ctx.Current().AddFnValue(scope.Value{Name: s.Name.Text, TypeID: fnType})
	if err := c.checkFnBody(ctx, scope.Fn(retType), s.Params, paramTypes, retType, s.Body); err != nil {
		return 0, err
	}
	return types.Void, nil
}

func (c *Checker) checkExternFnStmt(ctx *scope.Context, s ast.ExternFnStmt) (types.TypeId, error) {
	retType, paramTypes, err := c.signature(ctx, s.Params, s.Ret)
	if err != nil {
		return 0, err
	}
	fnType := ctx.TypeStore.Add(types.Type{Kind: types.KFn, Fn: &types.FnType{Params: paramTypes, Ret: retType}})
	ctx.Current().AddFnValue(scope.Value{Name: s.Name.Text, TypeID: fnType})
	return types.Void, nil
}

func (c *Checker) checkConstFnStmt(ctx *scope.Context, s ast.ConstFnStmt) (types.TypeId, error) {
	retType, paramTypes, err := c.signature(ctx, s.Params, s.Ret)
	if err != nil {
		return 0, err
	}
	fnType := ctx.TypeStore.Add(types.Type{Kind: types.KFn, Fn: &types.FnType{Params: paramTypes, Ret: retType}})
	ctx.Current().AddFnValue(scope.Value{Name: s.Name.Text, TypeID: fnType})
	if err := c.checkFnBody(ctx, scope.ConstFn(retType), s.Params, paramTypes, retType, s.Body); err != nil {
		return 0, err
	}
	return types.Void, nil
}

func (c *Checker) checkFnExpr(ctx *scope.Context, e ast.FnExpr) (types.TypeId, error) {
	retType, paramTypes, err := c.signature(ctx, e.Params, e.Ret)
	if err != nil {
		return 0, err
	}
	if err := c.checkFnBody(ctx, scope.Fn(retType), e.Params, paramTypes, retType, e.Body); err != nil {
		return 0, err
	}
	return ctx.TypeStore.Add(types.Type{Kind: types.KFn, Fn: &types.FnType{Params: paramTypes, Ret: retType}}), nil
}
