package irbuild

import (
	"fmt"

	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/types"
)

// buildExpr dispatches on the concrete type of e and returns the operand
// representing its value: a fresh register for anything that needs
// computing, or a Const for a literal.
func (b *Builder) buildExpr(e ast.Expr) (Operand, error) {
	switch n := e.(type) {
	case ast.IntegerLiteral:
		return Imm(Const{Type: types.I32, I: n.Value}), nil
	case ast.FloatLiteral:
		return Imm(Const{Type: types.F64, F: n.Value}), nil
	case ast.BoolLiteral:
		return Imm(Const{Type: types.Bool, B: n.Value}), nil
	case ast.StringLiteral:
		return Imm(Const{Type: types.String, S: n.Value}), nil
	case ast.CharLiteral:
		return Imm(Const{Type: types.Char, I: int64(n.Value)}), nil
	case ast.IdentExpr:
		return b.buildIdentExpr(n)
	case ast.GroupExpr:
		return b.buildExpr(n.Inner)
	case ast.BinaryExpr:
		return b.buildBinaryExpr(n)
	case ast.UnaryExpr:
		return b.buildUnaryExpr(n)
	case ast.BorrowExpr:
		return b.buildBorrowExpr(n)
	case ast.DerefExpr:
		return b.buildDerefExpr(n)
	case ast.CallExpr:
		return b.buildCallExpr(n)
	case ast.AssignExpr:
		return b.buildAssignExpr(n)
	case ast.IfExpr:
		return b.buildIfExpr(n)
	case ast.PipeExpr:
		return b.buildExpr(ast.CallExpr{NID: n.NID, Rg: n.Rg, Callee: n.Right, Args: []ast.Expr{n.Left}})
	case ast.MemberExpr:
		return b.buildMemberExpr(n)
	case ast.StructInitExpr:
		return b.buildStructInitExpr(n)
	case ast.BreakExpr:
		return b.buildBreakExpr(n)
	case ast.SkipExpr:
		return b.buildSkipExpr(n)
	case ast.AssociateExpr, ast.FnExpr, ast.ImportExpr:
		return Operand{}, diag.NewICE(e.Range(), fmt.Sprintf("lowering for a bare %T is not yet reachable from a checked function body in this build", e))
	default:
		panic(fmt.Sprintf("irbuild: unreachable expr variant %T", e))
	}
}

func (b *Builder) buildIdentExpr(e ast.IdentExpr) (Operand, error) {
	if v, ok := b.lookup(e.Name.Text); ok {
		return Reg(v), nil
	}
	if c, ok := b.consts[e.Name.Text]; ok {
		return Imm(c), nil
	}
	return Operand{}, diag.NewICE(e.Name.Range, "identifier "+e.Name.Text+" not bound to any register or constant")
}

func (b *Builder) buildBinaryExpr(e ast.BinaryExpr) (Operand, error) {
	left, err := b.buildExpr(e.Left)
	if err != nil {
		return Operand{}, err
	}
	right, err := b.buildExpr(e.Right)
	if err != nil {
		return Operand{}, err
	}
	dest := b.newRegister(left.Type())
	b.emit(Instr{Dest: &dest, Op: OpBin, BinOp: e.Op, Args: []Operand{left, right}})
	return Reg(dest), nil
}

func (b *Builder) buildUnaryExpr(e ast.UnaryExpr) (Operand, error) {
	operand, err := b.buildExpr(e.Operand)
	if err != nil {
		return Operand{}, err
	}
	dest := b.newRegister(operand.Type())
	b.emit(Instr{Dest: &dest, Op: OpUn, UnOp: e.Op, Args: []Operand{operand}})
	return Reg(dest), nil
}

func (b *Builder) buildBorrowExpr(e ast.BorrowExpr) (Operand, error) {
	ident, ok := e.Operand.(ast.IdentExpr)
	if !ok {
		return Operand{}, diag.NewICE(e.Rg, "borrow of a non-identifier reached the builder")
	}
	v, ok := b.lookup(ident.Name.Text)
	if !ok {
		return Operand{}, diag.NewICE(ident.Name.Range, "identifier "+ident.Name.Text+" not bound to any register")
	}
	dest := b.newRegister(v.Type)
	b.emit(Instr{Dest: &dest, Op: OpOwn, Args: []Operand{Reg(v)}})
	return Reg(dest), nil
}

func (b *Builder) buildDerefExpr(e ast.DerefExpr) (Operand, error) {
	operand, err := b.buildExpr(e.Operand)
	if err != nil {
		return Operand{}, err
	}
	dest := b.newRegister(operand.Type())
	b.emit(Instr{Dest: &dest, Op: OpLoad, Args: []Operand{operand}})
	return Reg(dest), nil
}

func (b *Builder) buildArgs(exprs []ast.Expr) ([]Operand, error) {
	out := make([]Operand, len(exprs))
	for i, a := range exprs {
		v, err := b.buildExpr(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (b *Builder) emitCall(callee string, args []Operand) (Operand, error) {
	dest := b.newRegister(0)
	b.emit(Instr{Dest: &dest, Op: OpCall, Callee: callee, Args: args})
	return Reg(dest), nil
}

// buildCallExpr handles three callee shapes: a plain function name, a
// `Type::member` associated call, and a `base.method` instance call —
// the last desugars to a call of "StructName.method" with base prepended
// as the implicit receiver argument, matching how checkImplStmt
// registers a method's qualified name against the impl's outer scope.
func (b *Builder) buildCallExpr(e ast.CallExpr) (Operand, error) {
	switch callee := e.Callee.(type) {
	case ast.IdentExpr:
		args, err := b.buildArgs(e.Args)
		if err != nil {
			return Operand{}, err
		}
		return b.emitCall(callee.Name.Text, args)
	case ast.AssociateExpr:
		args, err := b.buildArgs(e.Args)
		if err != nil {
			return Operand{}, err
		}
		return b.emitCall(callee.Type.Text+"."+callee.Member.Text, args)
	case ast.MemberExpr:
		base, err := b.buildExpr(callee.Base)
		if err != nil {
			return Operand{}, err
		}
		rest, err := b.buildArgs(e.Args)
		if err != nil {
			return Operand{}, err
		}
		structName, ok := b.structNameOf(base.Type())
		if !ok {
			return Operand{}, diag.NewICE(e.Rg, "method call on a value whose type is not a known struct reached the builder")
		}
		args := append([]Operand{base}, rest...)
		return b.emitCall(structName+"."+callee.Field.Text, args)
	default:
		return Operand{}, diag.NewICE(e.Rg, "call through an unsupported callee reached the builder")
	}
}

// structNameOf unwraps borrows to find the struct name behind a TypeId, so
// a method call through `&self`/`&mut self` still resolves.
func (b *Builder) structNameOf(id types.TypeId) (string, bool) {
	t := b.store.Get(id)
	switch t.Kind {
	case types.KStruct:
		return t.Struct.Name, true
	case types.KBorrow:
		return b.structNameOf(t.Borrow.Of)
	default:
		return "", false
	}
}

// buildMemberExpr lowers a field read `base.field` to a named Load: the
// field is identified by name since the builder does not track per-field
// byte offsets, leaving layout to the out-of-scope backend.
func (b *Builder) buildMemberExpr(e ast.MemberExpr) (Operand, error) {
	base, err := b.buildExpr(e.Base)
	if err != nil {
		return Operand{}, err
	}
	dest := b.newRegister(0)
	b.emit(Instr{Dest: &dest, Op: OpLoad, Args: []Operand{base}, TypeName: e.Field.Text})
	return Reg(dest), nil
}

// buildStructInitExpr heap-allocates a struct value and stores each field
// in declaration order, regardless of the order fields were written in
// source — the checker already verified the field sets match exactly.
func (b *Builder) buildStructInitExpr(e ast.StructInitExpr) (Operand, error) {
	id, ok := b.namedType(e.Type.Text)
	if !ok {
		return Operand{}, diag.NewICE(e.Rg, "struct type "+e.Type.Text+" not found in the type store")
	}
	st := b.store.Get(id)
	dest := b.newRegister(id)
	b.emit(Instr{Dest: &dest, Op: OpHalloc, TypeName: e.Type.Text})
	for _, field := range st.Struct.Fields {
		init, ok := findFieldInit(e.Fields, field.Name)
		if !ok {
			return Operand{}, diag.NewICE(e.Rg, "missing field "+field.Name+" in a struct initializer reached the builder")
		}
		val, err := b.buildExpr(init.Value)
		if err != nil {
			return Operand{}, err
		}
		b.emit(Instr{Op: OpStore, Args: []Operand{Reg(dest), val}, TypeName: field.Name})
	}
	b.markNeedsFree(dest)
	return Reg(dest), nil
}

func findFieldInit(fields []ast.FieldInit, name string) (ast.FieldInit, bool) {
	for _, f := range fields {
		if f.Name.Text == name {
			return f, true
		}
	}
	return ast.FieldInit{}, false
}

// buildBreakExpr jumps to the nearest enclosing loop's exit block, after
// flushing every scope opened since the loop was entered — a break only
// unwinds the loop body, not scopes belonging to the function around it.
func (b *Builder) buildBreakExpr(e ast.BreakExpr) (Operand, error) {
	if len(b.loops) == 0 {
		return Operand{}, diag.NewICE(e.Rg, "break outside of a loop reached the builder")
	}
	top := b.loops[len(b.loops)-1]
	if e.Value != nil {
		if _, err := b.buildExpr(e.Value); err != nil {
			return Operand{}, err
		}
	}
	b.flushScopesSince(top.scopeDepth)
	b.emit(Instr{Op: OpJmp, Targets: []string{top.breakTarget.Label}})
	return Operand{}, nil
}

// buildSkipExpr jumps to the nearest enclosing loop's continue target
// (the condition block for a while, the increment block for a for),
// flushing the same scopes a break would.
func (b *Builder) buildSkipExpr(e ast.SkipExpr) (Operand, error) {
	if len(b.loops) == 0 {
		return Operand{}, diag.NewICE(e.Rg, "skip outside of a loop reached the builder")
	}
	top := b.loops[len(b.loops)-1]
	b.flushScopesSince(top.scopeDepth)
	b.emit(Instr{Op: OpJmp, Targets: []string{top.continueTarget.Label}})
	return Operand{}, nil
}

func (b *Builder) buildAssignExpr(e ast.AssignExpr) (Operand, error) {
	val, err := b.buildExpr(e.Value)
	if err != nil {
		return Operand{}, err
	}
	switch t := e.Target.(type) {
	case ast.IdentExpr:
		v, ok := b.lookup(t.Name.Text)
		if !ok {
			return Operand{}, diag.NewICE(t.Name.Range, "identifier "+t.Name.Text+" not bound to any register")
		}
		b.emit(Instr{Dest: &v, Op: OpSet, Args: []Operand{val}})
		b.bind(t.Name.Text, v)
		return val, nil
	case ast.DerefExpr:
		target, err := b.buildExpr(t.Operand)
		if err != nil {
			return Operand{}, err
		}
		b.emit(Instr{Op: OpStore, Args: []Operand{target, val}})
		return val, nil
	default:
		return Operand{}, diag.NewICE(e.Rg, "assignment to an unsupported place reached the builder")
	}
}

func (b *Builder) buildIfExpr(e ast.IfExpr) (Operand, error) {
	cond, err := b.buildExpr(e.Cond)
	if err != nil {
		return Operand{}, err
	}

	thenBlk := b.fn.newBlock("ifexpr_then")
	elseBlk := b.fn.newBlock("ifexpr_else")
	joinBlk := b.fn.newBlock("ifexpr_join")
	b.emit(Instr{Op: OpBr, Args: []Operand{cond}, Targets: []string{thenBlk.Label, elseBlk.Label}})

	result := b.newRegister(0)

	b.blk = thenBlk
	b.pushScope()
	thenVal, err := b.buildLastExprValue(e.Then)
	if err != nil {
		return Operand{}, err
	}
	if !b.blk.terminated() {
		b.emit(Instr{Dest: &result, Op: OpSet, Args: []Operand{thenVal}})
		b.popScope()
		b.emit(Instr{Op: OpJmp, Targets: []string{joinBlk.Label}})
	} else {
		b.scopes = b.scopes[:len(b.scopes)-1]
	}

	b.blk = elseBlk
	b.pushScope()
	elseVal, err := b.buildLastExprValue(e.Else)
	if err != nil {
		return Operand{}, err
	}
	if !b.blk.terminated() {
		b.emit(Instr{Dest: &result, Op: OpSet, Args: []Operand{elseVal}})
		b.popScope()
		b.emit(Instr{Op: OpJmp, Targets: []string{joinBlk.Label}})
	} else {
		b.scopes = b.scopes[:len(b.scopes)-1]
	}

	b.blk = joinBlk
	return Reg(result), nil
}

// buildLastExprValue runs a statement list and returns the value of its
// final ExprStmt, if any, or the zero Operand if the body ends in
// something else (a bare ret, for instance, which already terminated the
// block).
func (b *Builder) buildLastExprValue(body []ast.Stmt) (Operand, error) {
	var last Operand
	for _, stmt := range body {
		if es, ok := stmt.(ast.ExprStmt); ok {
			v, err := b.buildExpr(es.Value)
			if err != nil {
				return Operand{}, err
			}
			last = v
			continue
		}
		if err := b.buildStmt(stmt); err != nil {
			return Operand{}, err
		}
	}
	return last, nil
}
