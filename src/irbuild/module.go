package irbuild

import "strings"

// Module is the full lowered output of one checked ast.Program: its
// struct definitions (emitted before any function that references them,
// per the output contract) followed by its functions.
type Module struct {
	StructDefs []Instr
	Functions  []*Function
}

func (m *Module) String() string {
	var sb strings.Builder
	for _, d := range m.StructDefs {
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}
	for _, f := range m.Functions {
		sb.WriteString(f.String())
	}
	return sb.String()
}
