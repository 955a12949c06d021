package scope

import "github.com/yazaldefilimone/lemon/src/types"

// Context owns the whole scope stack for one module being checked, plus
// the TypeStore it resolves types against and a context-level BorrowStore
// for values that escape the scope they were declared in (a returned
// borrow, for instance). A Scope never points back to its Context; any
// code that needs information beyond its own scope takes *Context as an
// explicit parameter.
type Context struct {
	Scopes       []*Scope
	TypeStore    *types.Store
	Borrows      *BorrowStore
	valueCounter ValueID
}

// NewContext returns a Context with its TypeStore and a single Global
// scope already pushed — the bottom scope is always Global and is never
// popped.
func NewContext(store *types.Store) *Context {
	c := &Context{
		TypeStore: store,
		Borrows:   NewBorrowStore(),
	}
	c.Scopes = append(c.Scopes, newScope(Global()))
	return c
}

// Fork returns a new Context sharing this one's TypeStore and
// context-level BorrowStore but starting its own scope stack from just
// the shared Global scope. Used by the optional parallel-function check
// mode so each goroutine can push/pop its own Fn-body scopes without
// racing on a shared Scopes slice.
func (c *Context) Fork() *Context {
	return &Context{
		Scopes:    []*Scope{c.Scopes[0]},
		TypeStore: c.TypeStore,
		Borrows:   c.Borrows,
	}
}

// EnterScope pushes a new scope of the given kind.
func (c *Context) EnterScope(kind ScopeKind) {
	c.Scopes = append(c.Scopes, newScope(kind))
}

// ExitScope pops the innermost scope. Popping the Global scope is a
// caller bug: it panics rather than silently leaving the stack empty.
func (c *Context) ExitScope() *Scope {
	n := len(c.Scopes)
	if n <= 1 {
		panic("scope: cannot exit the global scope")
	}
	top := c.Scopes[n-1]
	c.Scopes = c.Scopes[:n-1]
	return top
}

// Current returns the innermost scope.
func (c *Context) Current() *Scope {
	return c.Scopes[len(c.Scopes)-1]
}

// HasFnScope reports whether any scope on the stack, searched from the
// innermost outward, is a Fn/ConstFn scope.
func (c *Context) HasFnScope() bool {
	for i := len(c.Scopes) - 1; i >= 0; i-- {
		if c.Scopes[i].Kind.IsFn() {
			return true
		}
	}
	return false
}

// HasLoopScope reports whether any scope on the stack is a Loop scope,
// searched innermost outward, stopping at the first enclosing Fn scope
// since a loop in an outer function does not enclose an inner function's
// body.
func (c *Context) HasLoopScope() bool {
	for i := len(c.Scopes) - 1; i >= 0; i-- {
		if c.Scopes[i].Kind.IsLoop() {
			return true
		}
		if c.Scopes[i].Kind.IsFn() {
			return false
		}
	}
	return false
}

// FnScopeRetType returns the return type of the nearest enclosing
// Fn/ConstFn scope, searched innermost outward.
func (c *Context) FnScopeRetType() (types.TypeId, bool) {
	for i := len(c.Scopes) - 1; i >= 0; i-- {
		if ret, ok := c.Scopes[i].Kind.RetType(); ok {
			return ret, true
		}
	}
	return 0, false
}

// SelfScopeType returns the Self type of the nearest enclosing
// Impl/Accessor scope, searched innermost outward.
func (c *Context) SelfScopeType() (types.TypeId, bool) {
	for i := len(c.Scopes) - 1; i >= 0; i-- {
		if self, ok := c.Scopes[i].Kind.SelfType(); ok {
			return self, true
		}
	}
	return 0, false
}

// Lookup walks the scope stack innermost-first looking for a value named
// name, returning the innermost match.
func (c *Context) Lookup(name string) (Value, bool) {
	for i := len(c.Scopes) - 1; i >= 0; i-- {
		if v, ok := c.Scopes[i].GetValue(name); ok {
			return v, true
		}
	}
	return Value{}, false
}

// LookupFn walks the scope stack innermost-first looking for a named
// function.
func (c *Context) LookupFn(name string) (Value, bool) {
	for i := len(c.Scopes) - 1; i >= 0; i-- {
		if v, ok := c.Scopes[i].GetFnValue(name); ok {
			return v, true
		}
	}
	return Value{}, false
}

// AddValue allocates a fresh ValueID, registers the binding in the
// current scope with OriginScoped, and returns the id.
func (c *Context) AddValue(name string, typeID types.TypeId, mutable bool) ValueID {
	id := c.nextValueID()
	c.Current().AddValue(Value{ID: id, Name: name, TypeID: typeID, Mutable: mutable, Origin: OriginScoped})
	return id
}

// AddValueExternal is AddValue for a binding synthesized from an
// externally resolved symbol rather than declared directly in source.
func (c *Context) AddValueExternal(name string, typeID types.TypeId, mutable bool) ValueID {
	id := c.nextValueID()
	c.Current().AddValue(Value{ID: id, Name: name, TypeID: typeID, Mutable: mutable, Origin: OriginExternal})
	return id
}

func (c *Context) nextValueID() ValueID {
	id := c.valueCounter
	c.valueCounter++
	return id
}

// CanBorrowAs reports whether value can be borrowed as requested,
// consulting both the current scope's local BorrowStore and the
// context-level store (for values that escaped an exited scope).
func (c *Context) CanBorrowAs(value ValueID, mutable bool) bool {
	return c.Current().CanBorrowAs(value, mutable) && c.Borrows.CanBorrowAs(value, mutable)
}

// AddBorrow records a borrow in the current scope's store. Use
// AddEscapingBorrow instead for a value that must remain tracked past its
// declaring scope's exit (e.g. a borrow returned from a function).
func (c *Context) AddBorrow(value ValueID, mutable bool) BorrowID {
	return c.Current().AddBorrow(value, mutable)
}

// AddEscapingBorrow records a borrow in the context-level store, so it
// remains visible to CanBorrowAs even after the declaring scope exits.
func (c *Context) AddEscapingBorrow(value ValueID, mutable bool) BorrowID {
	return c.Borrows.Add(value, mutable)
}
