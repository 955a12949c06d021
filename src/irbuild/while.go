package irbuild

import "github.com/yazaldefilimone/lemon/src/ast"

// buildWhileStmt lowers to a condition block (re-entered every
// iteration), a body block jumping back to the condition, and an exit
// block the loop falls through to once Cond is false.
func (b *Builder) buildWhileStmt(s ast.WhileStmt) error {
	condBlk := b.fn.newBlock("while_cond")
	bodyBlk := b.fn.newBlock("while_body")
	exitBlk := b.fn.newBlock("while_exit")

	b.emit(Instr{Op: OpJmp, Targets: []string{condBlk.Label}})

	b.blk = condBlk
	cond, err := b.buildExpr(s.Cond)
	if err != nil {
		return err
	}
	b.emit(Instr{Op: OpBr, Args: []Operand{cond}, Targets: []string{bodyBlk.Label, exitBlk.Label}})

	b.blk = bodyBlk
	b.pushScope()
	b.loops = append(b.loops, loopCtx{breakTarget: exitBlk, continueTarget: condBlk, scopeDepth: len(b.scopes) - 1})
	for _, stmt := range s.Body {
		if err := b.buildStmt(stmt); err != nil {
			return err
		}
	}
	b.loops = b.loops[:len(b.loops)-1]
	if !b.blk.terminated() {
		b.popScope()
		b.emit(Instr{Op: OpJmp, Targets: []string{condBlk.Label}})
	} else {
		b.scopes = b.scopes[:len(b.scopes)-1]
	}

	b.blk = exitBlk
	return nil
}
