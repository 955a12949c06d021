package irbuild

import "strings"

// Block is one basic block: a label and its straight-line instruction
// list. Blocks only end in OpBr/OpJmp/OpRet; the builder enforces this by
// construction rather than validating it after the fact.
type Block struct {
	Label  string
	Instrs []Instr
}

func (b *Block) push(i Instr) {
	b.Instrs = append(b.Instrs, i)
}

// terminated reports whether this block already ends in a terminator, so
// the builder never appends unreachable instructions after one.
func (b *Block) terminated() bool {
	if len(b.Instrs) == 0 {
		return false
	}
	switch b.Instrs[len(b.Instrs)-1].Op {
	case OpBr, OpJmp, OpRet:
		return true
	default:
		return false
	}
}

func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString(b.Label)
	sb.WriteString(":\n")
	for _, i := range b.Instrs {
		sb.WriteString("  ")
		sb.WriteString(i.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
