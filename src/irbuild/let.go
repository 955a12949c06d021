package irbuild

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/types"
)

// isHeapAllocated decides stack-vs-heap for a let binding's storage: a
// struct value is heap-allocated since its size is not known to every
// caller of a function returning or borrowing it, everything else
// (primitives, borrows) is stack-allocated.
func (b *Builder) isHeapAllocated(t types.TypeId) bool {
	return b.store.Get(t).Kind == types.KStruct
}

// buildLetStmt lowers the initializer, allocates storage of the decided
// kind, assigns the value into it with Set, and — when heap-allocated —
// records the register so the owning scope frees it on exit. A let bound
// to a borrow or to a struct initializer is the exception: the borrow
// expression's own register already denotes the borrowed place (via
// OpOwn), and a struct initializer's register is already heap-allocated
// and recorded for freeing, so the name is aliased straight to that
// register instead of copying it into a fresh alloc.
func (b *Builder) buildLetStmt(s ast.LetStmt) error {
	val, err := b.buildExpr(s.Value)
	if err != nil {
		return err
	}
	switch s.Value.(type) {
	case ast.BorrowExpr, ast.StructInitExpr:
		if val.Reg != nil {
			b.bind(s.Name.Text, *val.Reg)
			return nil
		}
	}
	dest := b.newRegister(val.Type())
	heap := b.isHeapAllocated(val.Type())
	op := OpSalloc
	if heap {
		op = OpHalloc
	}
	b.emit(Instr{Dest: &dest, Op: op})
	b.emit(Instr{Dest: &dest, Op: OpSet, Args: []Operand{val}})
	if heap {
		b.markNeedsFree(dest)
	}
	b.bind(s.Name.Text, dest)
	return nil
}
