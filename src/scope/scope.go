package scope

// Scope is one lexical level: the values and named functions declared
// directly in it, the borrows taken on values that live in it, and the
// kind of construct that opened it.
type Scope struct {
	Values   map[string]Value
	FnValues map[string]Value
	Borrows  *BorrowStore
	Kind     ScopeKind
}

// newScope returns an empty Scope of the given kind.
func newScope(kind ScopeKind) *Scope {
	return &Scope{
		Values:   make(map[string]Value),
		FnValues: make(map[string]Value),
		Borrows:  NewBorrowStore(),
		Kind:     kind,
	}
}

// AddValue registers v under its own name, shadowing any prior value of
// the same name declared directly in this scope.
func (s *Scope) AddValue(v Value) {
	s.Values[v.Name] = v
}

// GetValue looks up a name declared directly in this scope (no outward
// walk; Context.Lookup does the walk).
func (s *Scope) GetValue(name string) (Value, bool) {
	v, ok := s.Values[name]
	return v, ok
}

// AddFnValue registers a named function value, kept separate from
// ordinary values so a function and a local variable may share a name
// without one shadowing the other.
func (s *Scope) AddFnValue(v Value) {
	s.FnValues[v.Name] = v
}

// GetFnValue looks up a named function declared directly in this scope.
func (s *Scope) GetFnValue(name string) (Value, bool) {
	v, ok := s.FnValues[name]
	return v, ok
}

// CanBorrowAs delegates to this scope's own BorrowStore; Context.CanBorrowAs
// additionally consults the context-level store for values that escape
// their declaring scope.
func (s *Scope) CanBorrowAs(value ValueID, mutable bool) bool {
	return s.Borrows.CanBorrowAs(value, mutable)
}

// AddBorrow records a borrow in this scope's store.
func (s *Scope) AddBorrow(value ValueID, mutable bool) BorrowID {
	return s.Borrows.Add(value, mutable)
}

// DropBorrow releases a borrow from this scope's store.
func (s *Scope) DropBorrow(id BorrowID) {
	s.Borrows.Drop(id)
}
