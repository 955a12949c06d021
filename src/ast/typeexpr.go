package ast

// TypeExpr is a type annotation as written in source, before the checker
// resolves it to a types.TypeId. Kept deliberately small: generics syntax
// is parsed into a Generic node but monomorphization itself is out of
// scope, so the checker only ever reads a Generic's Name and ignores its
// Args.
type TypeExpr interface {
	Range() Range
	typeExprTag()
}

// NamedType is a bare identifier reference: a primitive name or a
// previously declared struct/alias name.
type NamedType struct {
	Rg   Range
	Name Ident
}

func (t NamedType) Range() Range  { return t.Rg }
func (NamedType) typeExprTag()    {}

// BorrowType is `&T` or `&mut T`.
type BorrowType struct {
	Rg      Range
	Mutable bool
	Of      TypeExpr
}

func (t BorrowType) Range() Range { return t.Rg }
func (BorrowType) typeExprTag()   {}

// Generic is `Name<Args...>`. Args are parsed but never resolved: the
// checker and builder resolve only Name, the same way as a NamedType.
type Generic struct {
	Rg   Range
	Name Ident
	Args []TypeExpr
}

func (t Generic) Range() Range { return t.Rg }
func (Generic) typeExprTag()   {}
