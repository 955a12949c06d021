package irbuild

import "github.com/yazaldefilimone/lemon/src/ast"

// buildIfStmt lowers Cond, branches to a then-block and (if present) an
// else-block, and rejoins both into a fresh block that subsequent
// statements continue emitting into — unless both branches already
// terminate (e.g. both end in ret), in which case there is nothing left
// to rejoin and the join block is simply never reached.
func (b *Builder) buildIfStmt(s ast.IfStmt) error {
	cond, err := b.buildExpr(s.Cond)
	if err != nil {
		return err
	}

	thenBlk := b.fn.newBlock("if_then")
	var elseBlk *Block
	joinBlk := b.fn.newBlock("if_join")

	elseLabel := joinBlk.Label
	if s.Else != nil {
		elseBlk = b.fn.newBlock("if_else")
		elseLabel = elseBlk.Label
	}
	b.emit(Instr{Op: OpBr, Args: []Operand{cond}, Targets: []string{thenBlk.Label, elseLabel}})

	b.blk = thenBlk
	b.pushScope()
	for _, stmt := range s.Then {
		if err := b.buildStmt(stmt); err != nil {
			return err
		}
	}
	if !b.blk.terminated() {
		b.popScope()
		b.emit(Instr{Op: OpJmp, Targets: []string{joinBlk.Label}})
	} else {
		b.scopes = b.scopes[:len(b.scopes)-1]
	}

	if elseBlk != nil {
		b.blk = elseBlk
		b.pushScope()
		for _, stmt := range s.Else {
			if err := b.buildStmt(stmt); err != nil {
				return err
			}
		}
		if !b.blk.terminated() {
			b.popScope()
			b.emit(Instr{Op: OpJmp, Targets: []string{joinBlk.Label}})
		} else {
			b.scopes = b.scopes[:len(b.scopes)-1]
		}
	}

	b.blk = joinBlk
	return nil
}
