package irbuild

import "github.com/yazaldefilimone/lemon/src/ast"

// buildForStmt lowers `for binding in from..to { body }` into a counted
// loop one level up from buildWhileStmt's shape: the induction variable
// is allocated in the current block, then a condition block compares it
// against to, followed by a body block and an increment block that steps the
// induction variable and jumps back to the condition.
func (b *Builder) buildForStmt(s ast.ForStmt) error {
	from, err := b.buildExpr(s.From)
	if err != nil {
		return err
	}
	to, err := b.buildExpr(s.To)
	if err != nil {
		return err
	}

	induction := b.newRegister(from.Type())
	b.emit(Instr{Dest: &induction, Op: OpSalloc})
	b.emit(Instr{Dest: &induction, Op: OpSet, Args: []Operand{from}})

	condBlk := b.fn.newBlock("for_cond")
	bodyBlk := b.fn.newBlock("for_body")
	incrBlk := b.fn.newBlock("for_incr")
	exitBlk := b.fn.newBlock("for_exit")

	b.emit(Instr{Op: OpJmp, Targets: []string{condBlk.Label}})

	b.blk = condBlk
	cmp := b.newRegister(0)
	b.emit(Instr{Dest: &cmp, Op: OpBin, BinOp: ast.Lt, Args: []Operand{Reg(induction), to}})
	b.emit(Instr{Op: OpBr, Args: []Operand{Reg(cmp)}, Targets: []string{bodyBlk.Label, exitBlk.Label}})

	b.blk = bodyBlk
	b.pushScope()
	b.bind(s.Binding.Text, induction)
	b.loops = append(b.loops, loopCtx{breakTarget: exitBlk, continueTarget: incrBlk, scopeDepth: len(b.scopes) - 1})
	for _, stmt := range s.Body {
		if err := b.buildStmt(stmt); err != nil {
			return err
		}
	}
	b.loops = b.loops[:len(b.loops)-1]
	if !b.blk.terminated() {
		b.popScope()
		b.emit(Instr{Op: OpJmp, Targets: []string{incrBlk.Label}})
	} else {
		b.scopes = b.scopes[:len(b.scopes)-1]
	}

	b.blk = incrBlk
	stepped := b.newRegister(induction.Type)
	b.emit(Instr{Dest: &stepped, Op: OpBin, BinOp: ast.Add, Args: []Operand{Reg(induction), Imm(Const{Type: induction.Type, I: 1})}})
	b.emit(Instr{Dest: &induction, Op: OpSet, Args: []Operand{Reg(stepped)}})
	b.emit(Instr{Op: OpJmp, Targets: []string{condBlk.Label}})

	b.blk = exitBlk
	return nil
}
