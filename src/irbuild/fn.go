package irbuild

import (
	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/types"
)

// buildFnStmt lowers a function: a new Function with one parameter
// register per declared parameter already bound by name, a body block,
// and finalization that flushes the function's outermost scope's frees
// before returning (build_stmt dispatch + end_fn_scope in the original
// builder).
func (b *Builder) buildFnStmt(s ast.FnStmt) error {
	ret, err := b.resolveTypeExpr(s.Ret)
	if err != nil {
		return err
	}
	return b.buildFunction(s.Name.Text, s.Params, ret, s.Body)
}

func (b *Builder) buildConstFnStmt(s ast.ConstFnStmt) error {
	ret, err := b.resolveTypeExpr(s.Ret)
	if err != nil {
		return err
	}
	return b.buildFunction(s.Name.Text, s.Params, ret, s.Body)
}

// resolveTypeExpr turns a parsed type annotation into a TypeId the way
// check/typeexpr.go's resolveTypeExpr does, but against the builder's own
// namedType lookup rather than a checker's namedTypes map — every name it
// can be asked to resolve was already registered into the shared Store
// by the time the builder runs.
func (b *Builder) resolveTypeExpr(t ast.TypeExpr) (types.TypeId, error) {
	if t == nil {
		return types.Void, nil
	}
	switch n := t.(type) {
	case ast.NamedType:
		id, ok := b.namedType(n.Name.Text)
		if !ok {
			return 0, diag.NewICE(n.Rg, "unknown type "+n.Name.Text+" reached the builder")
		}
		return id, nil
	case ast.BorrowType:
		of, err := b.resolveTypeExpr(n.Of)
		if err != nil {
			return 0, err
		}
		return b.store.Add(types.Type{Kind: types.KBorrow, Borrow: &types.BorrowType{Mutable: n.Mutable, Of: of}}), nil
	case ast.Generic:
		id, ok := b.namedType(n.Name.Text)
		if !ok {
			return 0, diag.NewICE(n.Rg, "unknown type "+n.Name.Text+" reached the builder")
		}
		return id, nil
	default:
		return 0, diag.NewICE(t.Range(), "unexpected type expression reached the builder")
	}
}

// buildConstDeclStmt records a module-level constant's value so
// buildIdentExpr can resolve a later reference to it directly as an
// immediate — constants have no runtime IR of their own in this
// lowering, only a compile-time substitution.
func (b *Builder) buildConstDeclStmt(s ast.ConstDeclStmt) error {
	c, ok := literalConst(s.Value)
	if !ok {
		return diag.NewICE(s.Rg, "a module-level constant initializer that is not a literal reached the builder")
	}
	if b.consts == nil {
		b.consts = make(map[string]Const)
	}
	b.consts[s.Name.Text] = c
	return nil
}

// literalConst extracts the Const payload of a literal expression, or
// reports false for anything else — module-level constants in this
// lowering are restricted to literal initializers.
func literalConst(e ast.Expr) (Const, bool) {
	switch n := e.(type) {
	case ast.IntegerLiteral:
		return Const{Type: types.I32, I: n.Value}, true
	case ast.FloatLiteral:
		return Const{Type: types.F64, F: n.Value}, true
	case ast.BoolLiteral:
		return Const{Type: types.Bool, B: n.Value}, true
	case ast.StringLiteral:
		return Const{Type: types.String, S: n.Value}, true
	case ast.CharLiteral:
		return Const{Type: types.Char, I: int64(n.Value)}, true
	default:
		return Const{}, false
	}
}

// buildFunction is the shared lowering for every function-shaped
// declaration: ordinary, const, and impl methods alike.
func (b *Builder) buildFunction(name string, params []ast.FnParam, ret types.TypeId, body []ast.Stmt) error {
	fn := newFunction(name, nil, ret)
	b.fn = fn
	b.pushScope()

	entry := fn.newBlock("entry")
	b.blk = entry

	paramVals := make([]Value, len(params))
	for i, p := range params {
		pt, err := b.resolveTypeExpr(p.Type)
		if err != nil {
			return err
		}
		v := fn.newRegister(pt)
		paramVals[i] = v
		b.bind(p.Name.Text, v)
	}
	fn.Params = paramVals

	for _, stmt := range body {
		if err := b.buildStmt(stmt); err != nil {
			return err
		}
	}

	if !b.blk.terminated() {
		b.popScope()
		b.emit(Instr{Op: OpRet})
	} else {
		b.scopes = b.scopes[:len(b.scopes)-1]
	}

	b.mod.Functions = append(b.mod.Functions, fn)
	return nil
}
