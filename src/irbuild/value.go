// Package irbuild lowers a checked AST into the linear three-address IR
// an LLVM emitter would consume: one register-named Value per
// intermediate result, grouped into Blocks, grouped into Functions, built
// up by one Builder per program that accumulates each function's
// instructions the same way a Block/Function pair would.
package irbuild

import "github.com/yazaldefilimone/lemon/src/types"

// Value is a register reference: the name a later instruction uses to
// read a prior instruction's result. Names are assigned by Function's
// monotone counter, never reused within a function.
type Value struct {
	Name string
	Type types.TypeId
}

// Const is an immediate operand: a literal value baked directly into an
// instruction rather than a register reference.
type Const struct {
	Type types.TypeId
	I    int64
	F    float64
	S    string
	B    bool
}

// Operand is either a Value (register) or a Const (immediate). Exactly
// one of Reg/Imm is set.
type Operand struct {
	Reg *Value
	Imm *Const
}

func Reg(v Value) Operand  { return Operand{Reg: &v} }
func Imm(c Const) Operand  { return Operand{Imm: &c} }

func (o Operand) Type() types.TypeId {
	if o.Reg != nil {
		return o.Reg.Type
	}
	return o.Imm.Type
}
