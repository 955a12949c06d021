package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// checkImplStmt opens an Impl scope carrying Self's type and checks every
// item in it. Each FnStmt/ConstFnStmt item is additionally registered
// under the synthesized name "Self.method" so AssociateExpr can resolve
// it, and its body is checked in a Fn scope for its declared return type,
// nested inside an Accessor scope that carries Self and binds the self
// receiver (when the method takes one) to its declared type.
func (c *Checker) checkImplStmt(ctx *scope.Context, s ast.ImplStmt) (types.TypeId, error) {
	selfID, ok := c.namedTypes[s.Self.Text]
	if !ok {
		return 0, diag.NewUnknownType(s.Rg, s.Self.Text)
	}

	outer := ctx.Current()
	ctx.EnterScope(scope.Impl(selfID))
	defer ctx.ExitScope()

	for _, item := range s.Items {
		switch fn := item.(type) {
		case ast.FnStmt:
			if err := c.checkMethod(ctx, outer, selfID, fn.Name.Text, fn.Params, fn.Ret, fn.Body, isAssociate(fn.Params)); err != nil {
				return 0, err
			}
		case ast.ConstFnStmt:
			if err := c.checkMethod(ctx, outer, selfID, fn.Name.Text, fn.Params, fn.Ret, fn.Body, isAssociate(fn.Params)); err != nil {
				return 0, err
			}
		default:
			if _, err := c.checkStmt(ctx, item); err != nil {
				return 0, err
			}
		}
	}
	return types.Void, nil
}

// isAssociate reports whether a method takes no implicit self receiver.
// Self-taking methods name their first parameter "self" by convention,
// the way the original checker's accessor_type distinguishes the two.
func isAssociate(params []ast.FnParam) bool {
	if len(params) == 0 {
		return true
	}
	return params[0].Name.Text != "self"
}

func (c *Checker) checkMethod(ctx *scope.Context, outer *scope.Scope, selfID types.TypeId, name string, params []ast.FnParam, ret ast.TypeExpr, body []ast.Stmt, associate bool) error {
	sigParams := params
	if !associate {
		sigParams = params[1:]
	}
	retType, paramTypes, err := c.signature(ctx, sigParams, ret)
	if err != nil {
		return err
	}
	fnType := ctx.TypeStore.Add(types.Type{Kind: types.KFn, Fn: &types.FnType{Params: paramTypes, Ret: retType}})
	qualified := ctx.TypeStore.Get(selfID)
	selfName := name
	if qualified.Kind == types.KStruct {
		selfName = qualified.Struct.Name + "." + name
	}
	outer.AddFnValue(scope.Value{Name: selfName, TypeID: fnType})

	ctx.EnterScope(scope.Accessor(selfID, associate))
	defer ctx.ExitScope()
	if !associate {
		selfType, err := c.resolveTypeExpr(ctx, params[0].Type)
		if err != nil {
			return err
		}
		ctx.AddValue(params[0].Name.Text, selfType, params[0].Mutable)
	}
	return c.checkFnBody(ctx, scope.Fn(retType), sigParams, paramTypes, retType, body)
}
