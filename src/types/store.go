package types

// Store is an append-only table of Types indexed by TypeId. Ids are never
// reused or reordered, so a TypeId handed out by one call remains valid
// for the Store's whole lifetime (TS1); the first numPrimitives entries
// are always the reserved primitives in the fixed order declared in
// typeid.go (TS2).
type Store struct {
	types []Type
	names map[string]TypeId
}

// NewStore builds a Store pre-seeded with the 18 primitive entries, in the
// same order every time, so primitive TypeIds are stable across runs.
func NewStore() *Store {
	s := &Store{
		types: make([]Type, 0, numPrimitives),
		names: make(map[string]TypeId, numPrimitives),
	}
	seed := []struct {
		id   TypeId
		name string
	}{
		{Void, "void"},
		{Bool, "bool"},
		{Str, "str"},
		{String, "string"},
		{Char, "char"},
		{I8, "i8"},
		{I16, "i16"},
		{I32, "i32"},
		{I64, "i64"},
		{Isize, "isize"},
		{U8, "u8"},
		{U16, "u16"},
		{U32, "u32"},
		{U64, "u64"},
		{Usize, "usize"},
		{F32, "f32"},
		{F64, "f64"},
		{Nothing, "nothing"},
	}
	for _, p := range seed {
		s.types = append(s.types, Type{Kind: KPrimitive, Primitive: p.id})
		s.names[p.name] = p.id
	}
	return s
}

// Primitive looks up a reserved primitive by its source name, e.g. "i32".
func (s *Store) Primitive(name string) (TypeId, bool) {
	id, ok := s.names[name]
	return id, ok
}

// Add appends t and returns its freshly assigned TypeId. Never call Add
// for a primitive; use Primitive to look those up instead.
func (s *Store) Add(t Type) TypeId {
	id := TypeId(len(s.types))
	s.types = append(s.types, t)
	return id
}

// Get returns the Type stored at id. Get panics on an out-of-range id: a
// checker or builder that holds a TypeId it didn't get from this Store (or
// from Add/Primitive on it) has an internal invariant violation, not a
// recoverable error.
func (s *Store) Get(id TypeId) Type {
	return s.types[id]
}

// Len reports how many types have been registered, primitives included.
func (s *Store) Len() int {
	return len(s.types)
}
