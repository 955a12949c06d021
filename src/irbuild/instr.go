package irbuild

import (
	"fmt"
	"strings"

	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/types"
)

// Op enumerates the instruction set the builder emits. Narrowed from the
// teacher's lir instruction set down to exactly what the checked AST
// needs to lower to: stack/heap allocation, register assignment,
// ownership transfer, memory access, arithmetic, control flow, and
// explicit frees.
type Op int

const (
	OpSalloc Op = iota // stack-allocate a local
	OpHalloc           // heap-allocate a local that escapes its scope
	OpSet              // assign a value into a register
	OpOwn              // transfer ownership of a borrowed/moved value
	OpLoad             // load through a borrow
	OpStore            // store through a borrow
	OpBin              // binary arithmetic/comparison
	OpUn               // unary arithmetic
	OpCall             // function call
	OpRet              // return from the enclosing function
	OpBr               // conditional branch
	OpJmp              // unconditional jump
	OpFree             // release a heap allocation
	OpStructDef        // struct type definition (module-level, precedes uses)
)

func (op Op) String() string {
	switch op {
	case OpSalloc:
		return "salloc"
	case OpHalloc:
		return "halloc"
	case OpSet:
		return "set"
	case OpOwn:
		return "own"
	case OpLoad:
		return "load"
	case OpStore:
		return "store"
	case OpBin:
		return "bin"
	case OpUn:
		return "un"
	case OpCall:
		return "call"
	case OpRet:
		return "ret"
	case OpBr:
		return "br"
	case OpJmp:
		return "jmp"
	case OpFree:
		return "free"
	case OpStructDef:
		return "structdef"
	default:
		return "?"
	}
}

// Instr is one linear IR instruction: a destination register (absent for
// control-flow-only instructions), an opcode, and the operands it needs.
type Instr struct {
	Dest     *Value
	Op       Op
	BinOp    ast.BinaryOp
	UnOp     ast.UnaryOp
	Args     []Operand
	Callee   string
	Targets  []string // block labels, for Br (then, else) / Jmp (target)
	TypeName string   // struct name for Halloc/StructDef, field name for a field-qualified Load/Store
}

func (i Instr) String() string {
	var b strings.Builder
	if i.Dest != nil {
		fmt.Fprintf(&b, "%s = ", i.Dest.Name)
	}
	b.WriteString(i.Op.String())
	switch i.Op {
	case OpBin:
		fmt.Fprintf(&b, " %s %s, %s", i.BinOp.String(), operandString(i.Args[0]), operandString(i.Args[1]))
	case OpUn:
		fmt.Fprintf(&b, " %s %s", i.UnOp.String(), operandString(i.Args[0]))
	case OpCall:
		fmt.Fprintf(&b, " %s(", i.Callee)
		for idx, a := range i.Args {
			if idx > 0 {
				b.WriteString(", ")
			}
			b.WriteString(operandString(a))
		}
		b.WriteString(")")
	case OpBr:
		fmt.Fprintf(&b, " %s, %s, %s", operandString(i.Args[0]), i.Targets[0], i.Targets[1])
	case OpJmp:
		fmt.Fprintf(&b, " %s", i.Targets[0])
	case OpRet:
		if len(i.Args) > 0 {
			fmt.Fprintf(&b, " %s", operandString(i.Args[0]))
		}
	case OpStructDef, OpHalloc:
		if i.TypeName != "" {
			fmt.Fprintf(&b, " %s", i.TypeName)
		}
	case OpLoad, OpStore:
		for idx, a := range i.Args {
			if idx > 0 {
				b.WriteString(",")
			}
			b.WriteString(" ")
			b.WriteString(operandString(a))
		}
		if i.TypeName != "" {
			fmt.Fprintf(&b, ".%s", i.TypeName)
		}
	default:
		for _, a := range i.Args {
			b.WriteString(" ")
			b.WriteString(operandString(a))
		}
	}
	return b.String()
}

func operandString(o Operand) string {
	if o.Reg != nil {
		return o.Reg.Name
	}
	c := o.Imm
	switch {
	case c.Type == types.Bool:
		return fmt.Sprintf("%v", c.B)
	case c.Type == types.String || c.Type == types.Str:
		return fmt.Sprintf("%q", c.S)
	case c.Type.IsFloat():
		return fmt.Sprintf("%v", c.F)
	default:
		return fmt.Sprintf("%d", c.I)
	}
}
