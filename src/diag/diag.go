// Package diag carries the checker and IR builder's error taxonomy: every
// failure a check_* or build_* function can report is a *Diag, not a bare
// error string, so callers can match on Kind without parsing Message.
package diag

import "github.com/yazaldefilimone/lemon/src/ast"

// Kind enumerates every diagnostic the checker can raise, plus ICE for an
// internal invariant violation raised by the IR builder.
type Kind int

const (
	TypeMismatch Kind = iota
	CannotDereference
	BorrowConflict
	AssignToImmutable
	UnknownIdent
	ArityMismatch
	NotAFunction
	ReturnOutsideFunction
	BreakOrSkipOutsideLoop
	MissingReturn
	DuplicateFieldInit
	MissingFieldInit
	UnknownType
	InvalidOperator
	ICE
)

func (k Kind) String() string {
	switch k {
	case TypeMismatch:
		return "type-mismatch"
	case CannotDereference:
		return "cannot-dereference"
	case BorrowConflict:
		return "borrow-conflict"
	case AssignToImmutable:
		return "assign-to-immutable"
	case UnknownIdent:
		return "unknown-ident"
	case ArityMismatch:
		return "arity-mismatch"
	case NotAFunction:
		return "not-a-function"
	case ReturnOutsideFunction:
		return "return-outside-function"
	case BreakOrSkipOutsideLoop:
		return "break-or-skip-outside-loop"
	case MissingReturn:
		return "missing-return"
	case DuplicateFieldInit:
		return "duplicate-field-init"
	case MissingFieldInit:
		return "missing-field-init"
	case UnknownType:
		return "unknown-type"
	case InvalidOperator:
		return "invalid-operator"
	case ICE:
		return "internal-compiler-error"
	default:
		return "unknown-diagnostic"
	}
}

// Diag is one reported problem: its kind, the primary range it points at,
// any secondary ranges for context (e.g. the conflicting borrow site),
// and a human-readable message.
type Diag struct {
	Kind      Kind
	Primary   ast.Range
	Secondary []ast.Range
	Message   string
}

func (d *Diag) Error() string {
	return d.Message
}

func new(kind Kind, primary ast.Range, message string, secondary ...ast.Range) *Diag {
	return &Diag{Kind: kind, Primary: primary, Secondary: secondary, Message: message}
}

func NewTypeMismatch(primary ast.Range, expected, got string) *Diag {
	return new(TypeMismatch, primary, "type mismatch: expected "+expected+", got "+got)
}

func NewCannotDereference(primary ast.Range, got string) *Diag {
	return new(CannotDereference, primary, "cannot dereference "+got+": not a borrow")
}

func NewBorrowConflict(primary ast.Range, conflict ast.Range, name string) *Diag {
	return new(BorrowConflict, primary, "conflicting borrow of "+name, conflict)
}

func NewAssignToImmutable(primary ast.Range, name string) *Diag {
	return new(AssignToImmutable, primary, "cannot assign to immutable binding "+name)
}

func NewUnknownIdent(primary ast.Range, name string) *Diag {
	return new(UnknownIdent, primary, "unknown identifier "+name)
}

func NewArityMismatch(primary ast.Range, expected, got int) *Diag {
	return new(ArityMismatch, primary, "wrong number of arguments")
}

func NewNotAFunction(primary ast.Range, got string) *Diag {
	return new(NotAFunction, primary, "not a function: "+got)
}

func NewReturnOutsideFunction(primary ast.Range) *Diag {
	return new(ReturnOutsideFunction, primary, "return outside of a function")
}

func NewBreakOrSkipOutsideLoop(primary ast.Range) *Diag {
	return new(BreakOrSkipOutsideLoop, primary, "break or skip outside of a loop")
}

func NewMissingReturn(primary ast.Range, expected string) *Diag {
	return new(MissingReturn, primary, "missing return of type "+expected)
}

func NewDuplicateFieldInit(primary ast.Range, name string) *Diag {
	return new(DuplicateFieldInit, primary, "duplicate field initializer "+name)
}

func NewMissingFieldInit(primary ast.Range, name string) *Diag {
	return new(MissingFieldInit, primary, "missing field initializer "+name)
}

func NewUnknownType(primary ast.Range, name string) *Diag {
	return new(UnknownType, primary, "unknown type "+name)
}

func NewInvalidOperator(primary ast.Range, op, got string) *Diag {
	return new(InvalidOperator, primary, "invalid operator "+op+" for type "+got)
}

// NewICE marks an internal invariant violation: a builder-side bug, not a
// user-facing diagnostic. src/main.go's toDiag unwraps an error with
// github.com/pkg/errors.Cause before matching it as a *Diag, so a wrapped
// ICE is still recognized.
func NewICE(primary ast.Range, message string) *Diag {
	return new(ICE, primary, "internal compiler error: "+message)
}
