package irbuild

import "github.com/yazaldefilimone/lemon/src/ast"

// buildRetStmt flushes every enclosing scope's frees, innermost first,
// before emitting the terminator — a return must release everything the
// function allocated, not just the scope it was written in.
func (b *Builder) buildRetStmt(s ast.RetStmt) error {
	if s.Value == nil {
		b.flushAllScopes()
		b.emit(Instr{Op: OpRet})
		return nil
	}
	val, err := b.buildExpr(s.Value)
	if err != nil {
		return err
	}
	b.flushAllScopes()
	b.emit(Instr{Op: OpRet, Args: []Operand{val}})
	return nil
}

// flushAllScopes emits Free for every live heap allocation across every
// open scope, innermost scope first, without actually popping them (a
// return may appear before the end of its enclosing blocks' normal
// control flow).
func (b *Builder) flushAllScopes() {
	for i := len(b.scopes) - 1; i >= 0; i-- {
		s := b.scopes[i]
		for j := len(s.needsFree) - 1; j >= 0; j-- {
			b.emit(Instr{Op: OpFree, Args: []Operand{Reg(s.needsFree[j])}})
		}
	}
}
