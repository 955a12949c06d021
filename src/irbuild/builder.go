package irbuild

import (
	"github.com/sirupsen/logrus"

	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/types"
)

// bscope is the builder's own lexical scope: which source names currently
// map to which register, and which heap allocations made directly in it
// still need an explicit Free when it exits. Distinct from scope.Scope:
// the checker's Scope tracks types and borrows, this one tracks registers
// and free obligations, and the two are walked independently.
type bscope struct {
	vars      map[string]Value
	needsFree []Value
}

func newBscope() *bscope {
	return &bscope{vars: make(map[string]Value)}
}

// loopCtx records where break/skip jump to inside the loop currently
// being built, and the bscope index of the loop's own body scope, so an
// early exit knows exactly which scopes (its own down to the body scope,
// inclusive) it is unwinding.
type loopCtx struct {
	breakTarget    *Block
	continueTarget *Block
	scopeDepth     int
}

// Builder lowers one checked ast.Program into a Module. It assumes the
// program already passed the checker: it never reports a type mismatch,
// only internal invariant violations (ICE) when an assumption the checker
// should have guaranteed does not hold.
type Builder struct {
	Log    *logrus.Logger
	store  *types.Store
	mod    *Module
	fn     *Function
	blk    *Block
	scopes []*bscope
	loops  []loopCtx
	consts map[string]Const
}

// New returns a Builder. log may be nil, in which case the standard
// logger is used.
func New(store *types.Store, log *logrus.Logger) *Builder {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Builder{Log: log, store: store}
}

// Build lowers every top-level statement of p in order, emitting struct
// definitions before any function (IB output contract) since a later
// pass over Functions may already need a struct's shape.
func (b *Builder) Build(p ast.Program) (*Module, error) {
	b.mod = &Module{}
	for _, stmt := range p.Stmts {
		if err := b.buildTopLevel(stmt); err != nil {
			return nil, err
		}
	}
	return b.mod, nil
}

func (b *Builder) buildTopLevel(s ast.Stmt) error {
	switch n := s.(type) {
	case ast.TypeDefStmt:
		return b.buildTypeDefStmt(n)
	case ast.FnStmt:
		return b.buildFnStmt(n)
	case ast.ConstFnStmt:
		return b.buildConstFnStmt(n)
	case ast.ExternFnStmt:
		return nil // no body to lower
	case ast.ImplStmt:
		return b.buildImplStmt(n)
	case ast.ConstDeclStmt:
		return b.buildConstDeclStmt(n)
	default:
		return diag.NewICE(s.Range(), "unexpected top-level statement")
	}
}

func (b *Builder) pushScope() {
	b.scopes = append(b.scopes, newBscope())
}

// popScope emits Free for every heap allocation owned directly by the
// innermost scope, innermost-first, before removing it — the IB1
// invariant that scope entries are released in reverse creation order.
func (b *Builder) popScope() {
	n := len(b.scopes)
	top := b.scopes[n-1]
	for i := len(top.needsFree) - 1; i >= 0; i-- {
		v := top.needsFree[i]
		b.emit(Instr{Op: OpFree, Args: []Operand{Reg(v)}})
	}
	b.scopes = b.scopes[:n-1]
}

func (b *Builder) bind(name string, v Value) {
	b.scopes[len(b.scopes)-1].vars[name] = v
}

func (b *Builder) lookup(name string) (Value, bool) {
	for i := len(b.scopes) - 1; i >= 0; i-- {
		if v, ok := b.scopes[i].vars[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

func (b *Builder) markNeedsFree(v Value) {
	top := b.scopes[len(b.scopes)-1]
	top.needsFree = append(top.needsFree, v)
}

// flushScopesSince emits Free for every live heap allocation in scopes
// from depth upward (innermost first), without popping them — used by
// break/skip, which jump out of a loop body but leave the bscope stack
// itself to unwind normally as buildStmt's callers return.
func (b *Builder) flushScopesSince(depth int) {
	for i := len(b.scopes) - 1; i >= depth; i-- {
		s := b.scopes[i]
		for j := len(s.needsFree) - 1; j >= 0; j-- {
			b.emit(Instr{Op: OpFree, Args: []Operand{Reg(s.needsFree[j])}})
		}
	}
}

// namedType resolves a source type name to its TypeId by scanning the
// shared Store for a struct or alias entry with a matching name — the
// builder has no named-type map of its own, since every user-defined
// type was already registered into the Store by the checker before the
// builder ever runs.
func (b *Builder) namedType(name string) (types.TypeId, bool) {
	if id, ok := b.store.Primitive(name); ok {
		return id, true
	}
	for id := types.TypeId(0); int(id) < b.store.Len(); id++ {
		t := b.store.Get(id)
		switch t.Kind {
		case types.KStruct:
			if t.Struct.Name == name {
				return id, true
			}
		case types.KAlias:
			if t.Alias.Name == name {
				return id, true
			}
		}
	}
	return 0, false
}

func (b *Builder) emit(i Instr) {
	if b.blk.terminated() {
		return
	}
	b.blk.push(i)
}

func (b *Builder) newRegister(t types.TypeId) Value {
	return b.fn.newRegister(t)
}
