package types

// Kind discriminates the Type tagged union. Every Type carries exactly the
// fields its Kind documents; the rest are zero.
type Kind int

const (
	KPrimitive Kind = iota
	KInferInt
	KInferFloat
	KBorrow
	KStruct
	KFn
	KAlias
)

// FieldType is one field of a struct type.
type FieldType struct {
	Name string
	Type TypeId
}

// BorrowType is the payload of a KBorrow Type: a reference to another
// type, tagged mutable or shared.
type BorrowType struct {
	Mutable bool
	Of      TypeId
}

// StructType is the payload of a KStruct Type.
type StructType struct {
	Name   string
	Fields []FieldType
}

// FnType is the payload of a KFn Type.
type FnType struct {
	Params []TypeId
	Ret    TypeId
}

// AliasType is the payload of a KAlias Type: a name standing for another
// type, transparent to Equal.
type AliasType struct {
	Name string
	Of   TypeId
}

// Type is one entry in a Store. Exactly one of Borrow/Struct/Fn/Alias is
// non-nil, selected by Kind; InferBits is meaningful only for
// KInferInt/KInferFloat.
type Type struct {
	Kind      Kind
	Primitive TypeId
	InferBits uint8

	Borrow *BorrowType
	Struct *StructType
	Fn     *FnType
	Alias  *AliasType
}

// IsNumeric reports whether t ultimately denotes a number (fixed-width or
// still-inferred).
func (t Type) IsNumeric() bool {
	switch t.Kind {
	case KPrimitive:
		return t.Primitive.IsInt() || t.Primitive.IsFloat()
	case KInferInt, KInferFloat:
		return true
	default:
		return false
	}
}
