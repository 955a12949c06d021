package irbuild

import "github.com/yazaldefilimone/lemon/src/ast"

// buildTypeDefStmt emits a struct-def IR entry ahead of any function, so
// a later pass over Module.Functions can assume every referenced struct's
// shape is already known; alias definitions need no IR entry since they
// are transparent to the checker and carry no runtime representation.
func (b *Builder) buildTypeDefStmt(s ast.TypeDefStmt) error {
	if s.Struct == nil {
		return nil
	}
	b.mod.StructDefs = append(b.mod.StructDefs, Instr{Op: OpStructDef, TypeName: s.Name.Text})
	return nil
}
