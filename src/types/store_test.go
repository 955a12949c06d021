package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStoreSeedsPrimitivesInFixedOrder(t *testing.T) {
	s := NewStore()
	require.Equal(t, numPrimitives, s.Len())

	for _, tc := range []struct {
		name string
		id   TypeId
	}{
		{"void", Void},
		{"bool", Bool},
		{"str", Str},
		{"string", String},
		{"char", Char},
		{"i32", I32},
		{"f64", F64},
		{"nothing", Nothing},
	} {
		id, ok := s.Primitive(tc.name)
		require.Truef(t, ok, "Primitive(%q) not found", tc.name)
		require.Equal(t, tc.id, id)
	}
}

func TestStoreAddAssignsStableIncreasingIds(t *testing.T) {
	s := NewStore()
	before := s.Len()

	first := s.Add(Type{Kind: KStruct, Struct: &StructType{Name: "Point"}})
	second := s.Add(Type{Kind: KStruct, Struct: &StructType{Name: "Line"}})

	require.Equal(t, TypeId(before), first)
	require.Equal(t, TypeId(before+1), second)
	require.Equal(t, before+2, s.Len())

	got := s.Get(first)
	require.Equal(t, "Point", got.Struct.Name)
}

func TestTypeIdClassification(t *testing.T) {
	require.True(t, I32.IsSignedInt())
	require.False(t, I32.IsUnsignedInt())
	require.True(t, U64.IsUnsignedInt())
	require.True(t, I64.IsInt())
	require.True(t, F32.IsFloat())
	require.False(t, Bool.IsFloat())
	require.False(t, Void.IsInt())
}

func TestDisplay(t *testing.T) {
	s := NewStore()

	borrowed := s.Add(Type{Kind: KBorrow, Borrow: &BorrowType{Mutable: true, Of: I32}})
	point := s.Add(Type{Kind: KStruct, Struct: &StructType{Name: "Point", Fields: []FieldType{
		{Name: "x", Type: I32},
		{Name: "y", Type: I32},
	}}})
	fn := s.Add(Type{Kind: KFn, Fn: &FnType{Params: []TypeId{I32, Bool}, Ret: point}})
	alias := s.Add(Type{Kind: KAlias, Alias: &AliasType{Name: "Coord", Of: point}})

	require.Equal(t, "i32", Display(s, I32))
	require.Equal(t, "&mut i32", Display(s, borrowed))
	require.Equal(t, "Point", Display(s, point))
	require.Equal(t, "fn(i32, bool) -> Point", Display(s, fn))
	require.Equal(t, "Coord", Display(s, alias))
}
