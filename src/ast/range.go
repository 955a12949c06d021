// Package ast defines the syntax-tree surface the checker and IR builder
// consume. The concrete lexer/parser grammar that produces this surface is
// out of scope here; ast only carries the shapes downstream stages need.
package ast

import "fmt"

// ModID identifies a loaded source module. Opaque to everything except the
// loader.
type ModID uint64

// Range is a closed-open byte span [Start, End) within module Mod.
type Range struct {
	Mod   ModID
	Start int
	End   int
}

// Merge returns the smallest Range spanning both r and other. The two
// ranges must originate from the same module; Merge panics otherwise since
// merging spans across modules is always a caller bug.
func (r Range) Merge(other Range) Range {
	if r.Mod != other.Mod {
		panic(fmt.Sprintf("cannot merge ranges from different modules: %d != %d", r.Mod, other.Mod))
	}
	start := r.Start
	if other.Start < start {
		start = other.Start
	}
	end := r.End
	if other.End > end {
		end = other.End
	}
	return Range{Mod: r.Mod, Start: start, End: end}
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d", r.Start, r.End)
}
