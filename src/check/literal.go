package check

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// checkIntegerLiteral registers a fresh InferInt placeholder carrying the
// literal's bit width; the statement that consumes this value (a let
// binding, a call argument, a return) collapses it to a concrete type via
// resolveInferred once an expected type is known.
func (c *Checker) checkIntegerLiteral(ctx *scope.Context, lit ast.IntegerLiteral) (types.TypeId, error) {
	return ctx.TypeStore.Add(types.Type{Kind: types.KInferInt, InferBits: lit.Bits}), nil
}

func (c *Checker) checkFloatLiteral(ctx *scope.Context, lit ast.FloatLiteral) (types.TypeId, error) {
	return ctx.TypeStore.Add(types.Type{Kind: types.KInferFloat, InferBits: lit.Bits}), nil
}
