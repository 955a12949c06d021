package scope

import "github.com/yazaldefilimone/lemon/src/types"

// Tag discriminates ScopeKind the way the original ScopeType enum does.
type Tag int

const (
	TagGlobal Tag = iota
	TagBlock
	TagLoop
	TagFn
	TagConstFn
	TagImpl
	TagAccessor
)

// ScopeKind tags what a Scope was opened for. Only the fields matching Tag
// are meaningful; the rest are zero.
type ScopeKind struct {
	Tag           Tag
	Ret           types.TypeId // TagFn, TagConstFn
	Self          types.TypeId // TagImpl, TagAccessor
	AccessorAssoc bool         // TagAccessor: true for an associated (non-instance) accessor
}

func Global() ScopeKind           { return ScopeKind{Tag: TagGlobal} }
func Block() ScopeKind            { return ScopeKind{Tag: TagBlock} }
func Loop() ScopeKind             { return ScopeKind{Tag: TagLoop} }
func Fn(ret types.TypeId) ScopeKind      { return ScopeKind{Tag: TagFn, Ret: ret} }
func ConstFn(ret types.TypeId) ScopeKind { return ScopeKind{Tag: TagConstFn, Ret: ret} }
func Impl(self types.TypeId) ScopeKind   { return ScopeKind{Tag: TagImpl, Self: self} }
func Accessor(self types.TypeId, assoc bool) ScopeKind {
	return ScopeKind{Tag: TagAccessor, Self: self, AccessorAssoc: assoc}
}

// RetType returns the scope's declared return type, if this kind carries
// one (Fn or ConstFn).
func (k ScopeKind) RetType() (types.TypeId, bool) {
	if k.Tag == TagFn || k.Tag == TagConstFn {
		return k.Ret, true
	}
	return 0, false
}

// SelfType returns the impl/accessor's receiver type, if this kind carries
// one.
func (k ScopeKind) SelfType() (types.TypeId, bool) {
	if k.Tag == TagImpl || k.Tag == TagAccessor {
		return k.Self, true
	}
	return 0, false
}

// AccessorType is SelfType restricted to TagAccessor, matching the
// original's narrower accessor_type accessor.
func (k ScopeKind) AccessorType() (types.TypeId, bool) {
	if k.Tag == TagAccessor {
		return k.Self, true
	}
	return 0, false
}

func (k ScopeKind) IsGlobal() bool   { return k.Tag == TagGlobal }
func (k ScopeKind) IsBlock() bool    { return k.Tag == TagBlock }
func (k ScopeKind) IsLoop() bool     { return k.Tag == TagLoop }
func (k ScopeKind) IsFn() bool       { return k.Tag == TagFn || k.Tag == TagConstFn }
func (k ScopeKind) IsImpl() bool     { return k.Tag == TagImpl }
func (k ScopeKind) IsAccessor() bool { return k.Tag == TagAccessor }

// IsAccessorAssociate reports whether this is an associated (static, no
// self receiver) accessor rather than an instance method.
func (k ScopeKind) IsAccessorAssociate() bool {
	return k.Tag == TagAccessor && k.AccessorAssoc
}
