package check

import "github.com/yazaldefilimone/lemon/src/types"

// equal reports whether a and b denote the same type. Void and Nothing
// compare equal to each other (both mean "no value", one from an empty
// return position and one from a diverging expression); Borrow compares
// by recursing on the pointee only, never on mutability — the direction a
// mutable borrow may decay to an immutable one is a separate
// assignability rule, not part of equality.
func equal(store *types.Store, a, b types.TypeId) bool {
	if a == b {
		return true
	}
	if isVoidlike(a) && isVoidlike(b) {
		return true
	}
	ta, tb := store.Get(a), store.Get(b)
	if ta.Kind == types.KAlias {
		return equal(store, ta.Alias.Of, b)
	}
	if tb.Kind == types.KAlias {
		return equal(store, a, tb.Alias.Of)
	}
	if ta.Kind != tb.Kind {
		return false
	}
	switch ta.Kind {
	case types.KBorrow:
		return equal(store, ta.Borrow.Of, tb.Borrow.Of)
	case types.KStruct:
		return ta.Struct.Name == tb.Struct.Name
	case types.KFn:
		if len(ta.Fn.Params) != len(tb.Fn.Params) {
			return false
		}
		for i := range ta.Fn.Params {
			if !equal(store, ta.Fn.Params[i], tb.Fn.Params[i]) {
				return false
			}
		}
		return equal(store, ta.Fn.Ret, tb.Fn.Ret)
	default:
		return false
	}
}

func isVoidlike(id types.TypeId) bool {
	return id == types.Void || id == types.Nothing
}

// assignable reports whether a value of type from may be used where a
// value of type to is expected. This is equal plus the one-way borrow
// mutability decay: a &mut T is assignable where &T is expected, never
// the reverse.
func assignable(store *types.Store, from, to types.TypeId) bool {
	if equal(store, from, to) {
		return true
	}
	ft, tt := store.Get(from), store.Get(to)
	if ft.Kind == types.KBorrow && tt.Kind == types.KBorrow {
		if ft.Borrow.Mutable && !tt.Borrow.Mutable {
			return equal(store, ft.Borrow.Of, tt.Borrow.Of)
		}
	}
	return false
}
