// Package scope implements the checker's symbol environment: a stack of
// lexical Scopes held together by a Context, plus the BorrowStore that
// tracks live borrows per value.
package scope

import "github.com/yazaldefilimone/lemon/src/types"

// ValueID names a binding uniquely within a Context's lifetime. Ids are
// never reused, so a stale ValueID (one from an exited scope) is always
// detectable as "not found" rather than silently aliasing a new binding.
type ValueID uint64

// Origin distinguishes a value declared inside the module being checked
// from one synthesized for an externally resolved symbol (an imported
// function, for instance), per add_value vs add_value_external
// in the original checker.
type Origin int

const (
	OriginScoped Origin = iota
	OriginExternal
)

// Value is one binding: a name's type, mutability and where it came from.
type Value struct {
	ID      ValueID
	Name    string
	TypeID  types.TypeId
	Mutable bool
	Origin  Origin
}
