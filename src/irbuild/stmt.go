package irbuild

import (
	"fmt"

	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
)

// buildStmt dispatches on the concrete type of s. Nested function, type
// and impl declarations inside a function body have no lowering and are
// reported as an ICE.
func (b *Builder) buildStmt(s ast.Stmt) error {
	switch n := s.(type) {
	case ast.LetStmt:
		return b.buildLetStmt(n)
	case ast.ConstDeclStmt:
		return b.buildConstDeclStmt(n)
	case ast.RetStmt:
		return b.buildRetStmt(n)
	case ast.IfStmt:
		return b.buildIfStmt(n)
	case ast.WhileStmt:
		return b.buildWhileStmt(n)
	case ast.ForStmt:
		return b.buildForStmt(n)
	case ast.BlockStmt:
		return b.buildBlockStmt(n)
	case ast.ExprStmt:
		_, err := b.buildExpr(n.Value)
		return err
	case ast.FnStmt, ast.ConstFnStmt, ast.ExternFnStmt, ast.TypeDefStmt, ast.ImplStmt:
		return diag.NewICE(s.Range(), fmt.Sprintf("unexpected nested declaration %T inside a function body", s))
	default:
		panic(fmt.Sprintf("irbuild: unreachable stmt variant %T", s))
	}
}

// buildBlockStmt opens a fresh scope for s.Body and flushes its frees at
// exit (IB1), without opening a new basic block: a bare `{ ... }` is not
// a control-flow boundary, only a lexical one.
func (b *Builder) buildBlockStmt(s ast.BlockStmt) error {
	b.pushScope()
	for _, stmt := range s.Body {
		if err := b.buildStmt(stmt); err != nil {
			return err
		}
	}
	if !b.blk.terminated() {
		b.popScope()
	} else {
		b.scopes = b.scopes[:len(b.scopes)-1]
	}
	return nil
}
