package irbuild

import (
	"fmt"
	"strings"

	"github.com/yazaldefilimone/lemon/src/types"
)

// Function is one lowered function: its parameters, return type, and the
// basic blocks making up its body.
type Function struct {
	Name   string
	Params []Value
	Ret    types.TypeId
	Blocks []*Block

	regSeq   int
	blockSeq int
}

func newFunction(name string, params []Value, ret types.TypeId) *Function {
	return &Function{Name: name, Params: params, Ret: ret}
}

// newRegister returns a fresh register name, "r<n>", unique within this
// function.
func (f *Function) newRegister(t types.TypeId) Value {
	v := Value{Name: fmt.Sprintf("r%d", f.regSeq), Type: t}
	f.regSeq++
	return v
}

// newBlock appends and returns a fresh block with a unique label.
func (f *Function) newBlock(prefix string) *Block {
	b := &Block{Label: fmt.Sprintf("%s%d", prefix, f.blockSeq)}
	f.blockSeq++
	f.Blocks = append(f.Blocks, b)
	return b
}

func (f *Function) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "fn %s(", f.Name)
	for i, p := range f.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s", p.Name)
	}
	sb.WriteString(") {\n")
	for _, b := range f.Blocks {
		sb.WriteString(b.String())
	}
	sb.WriteString("}\n")
	return sb.String()
}
