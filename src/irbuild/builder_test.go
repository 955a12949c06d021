package irbuild

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/types"
)

func ident(name string) ast.Ident { return ast.Ident{Text: name} }

func namedType(name string) ast.TypeExpr { return ast.NamedType{Name: ident(name)} }

// buildProgram lowers stmts against store with a fresh Builder, failing
// the test immediately on error so call sites read as plain assertions.
func buildProgram(t *testing.T, store *types.Store, stmts []ast.Stmt) *Module {
	t.Helper()
	b := New(store, nil)
	mod, err := b.Build(ast.Program{Stmts: stmts})
	require.NoError(t, err)
	return mod
}

// addStruct registers a struct type directly into store, standing in for
// the checker's checkTypeDefStmt — irbuild.Build alone never populates
// the Store, it only emits an OpStructDef marker, since in the real
// pipeline check.Program already ran against the same Store first.
func addStruct(store *types.Store, name string, fields ...types.FieldType) {
	store.Add(types.Type{Kind: types.KStruct, Struct: &types.StructType{Name: name, Fields: fields}})
}

func TestBuildFnStmtAddReturnsParamsAddedTogether(t *testing.T) {
	fn := ast.FnStmt{
		Name: ident("add"),
		Params: []ast.FnParam{
			{Name: ident("a"), Type: namedType("i32")},
			{Name: ident("b"), Type: namedType("i32")},
		},
		Ret: namedType("i32"),
		Body: []ast.Stmt{
			ast.RetStmt{Value: ast.BinaryExpr{
				Op:    ast.Add,
				Left:  ast.IdentExpr{Name: ident("a")},
				Right: ast.IdentExpr{Name: ident("b")},
			}},
		},
	}

	mod := buildProgram(t, types.NewStore(), []ast.Stmt{fn})
	require.Len(t, mod.Functions, 1)

	f := mod.Functions[0]
	require.Equal(t, "add", f.Name)
	require.Equal(t, types.I32, f.Ret)
	require.Len(t, f.Params, 2)
	require.Equal(t, types.I32, f.Params[0].Type)

	require.Len(t, f.Blocks, 1)
	entry := f.Blocks[0]
	require.True(t, entry.terminated())

	var sawBin, sawRet bool
	for _, in := range entry.Instrs {
		switch in.Op {
		case OpBin:
			sawBin = true
			require.Equal(t, ast.Add, in.BinOp)
		case OpRet:
			sawRet = true
		}
	}
	require.True(t, sawBin, "expected a bin instruction computing a + b")
	require.True(t, sawRet, "expected the add instruction's result to be returned")
}

func TestBuildLetStmtHeapAllocatesStructsOnly(t *testing.T) {
	store := types.NewStore()
	addStruct(store, "Point",
		types.FieldType{Name: "x", Type: types.I32},
		types.FieldType{Name: "y", Type: types.I32},
	)
	typedef := ast.TypeDefStmt{
		Name: ident("Point"),
		Struct: &ast.StructType{Fields: []ast.FieldType{
			{Name: ident("x"), Type: namedType("i32")},
			{Name: ident("y"), Type: namedType("i32")},
		}},
	}
	fn := ast.FnStmt{
		Name: ident("make"),
		Body: []ast.Stmt{
			ast.LetStmt{Name: ident("n"), Value: ast.IntegerLiteral{Value: 1, Bits: 8}},
			ast.LetStmt{Name: ident("p"), Value: ast.StructInitExpr{
				Type: ident("Point"),
				Fields: []ast.FieldInit{
					{Name: ident("x"), Value: ast.IntegerLiteral{Value: 1, Bits: 8}},
					{Name: ident("y"), Value: ast.IntegerLiteral{Value: 2, Bits: 8}},
				},
			}},
			ast.RetStmt{},
		},
	}

	mod := buildProgram(t, store, []ast.Stmt{typedef, fn})
	require.Len(t, mod.StructDefs, 1)
	require.Equal(t, "Point", mod.StructDefs[0].TypeName)

	require.Len(t, mod.Functions, 1)
	entry := mod.Functions[0].Blocks[0]

	var sallocs, hallocs, frees int
	for _, in := range entry.Instrs {
		switch in.Op {
		case OpSalloc:
			sallocs++
		case OpHalloc:
			hallocs++
		case OpFree:
			frees++
		}
	}
	require.Equal(t, 1, sallocs, "the plain integer local must be stack-allocated")
	require.Equal(t, 1, hallocs, "the struct local must be heap-allocated")
	require.Equal(t, 1, frees, "the heap-allocated struct must be freed on scope exit")
}

func TestBuildLetStmtBorrowAliasesSourceRegisterInsteadOfAllocating(t *testing.T) {
	fn := ast.FnStmt{
		Name: ident("make"),
		Params: []ast.FnParam{
			{Name: ident("x"), Type: namedType("i32")},
		},
		Body: []ast.Stmt{
			ast.LetStmt{Name: ident("p"), Value: ast.BorrowExpr{Operand: ast.IdentExpr{Name: ident("x")}}},
			ast.RetStmt{},
		},
	}

	mod := buildProgram(t, types.NewStore(), []ast.Stmt{fn})
	require.Len(t, mod.Functions, 1)
	entry := mod.Functions[0].Blocks[0]

	var sallocs, hallocs, sets, owns int
	for _, in := range entry.Instrs {
		switch in.Op {
		case OpSalloc:
			sallocs++
		case OpHalloc:
			hallocs++
		case OpSet:
			sets++
		case OpOwn:
			owns++
		}
	}
	require.Zero(t, sallocs, "a let bound to a borrow must not allocate a fresh stack slot")
	require.Zero(t, hallocs, "a let bound to a borrow must not allocate a fresh heap slot")
	require.Zero(t, sets, "a let bound to a borrow must not copy into a second register with Set")
	require.Equal(t, 1, owns, "the borrow itself still lowers to a single OpOwn")
}

func TestBuildWhileStmtBreakJumpsToExit(t *testing.T) {
	fn := ast.FnStmt{
		Name: ident("loop"),
		Body: []ast.Stmt{
			ast.WhileStmt{
				Cond: ast.BoolLiteral{Value: true},
				Body: []ast.Stmt{
					ast.ExprStmt{Value: ast.BreakExpr{}},
				},
			},
			ast.RetStmt{},
		},
	}

	mod := buildProgram(t, types.NewStore(), []ast.Stmt{fn})
	f := mod.Functions[0]

	var bodyBlk, exitBlk *Block
	for _, blk := range f.Blocks {
		switch blk.Label {
		case "while_body2":
			bodyBlk = blk
		case "while_exit3":
			exitBlk = blk
		}
	}
	require.NotNil(t, bodyBlk, "expected a while_body block")
	require.NotNil(t, exitBlk, "expected a while_exit block")
	require.True(t, bodyBlk.terminated())
	last := bodyBlk.Instrs[len(bodyBlk.Instrs)-1]
	require.Equal(t, OpJmp, last.Op)
	require.Equal(t, exitBlk.Label, last.Targets[0], "break must jump straight to the loop's exit block")
}

func TestBuildForStmtCountedLoop(t *testing.T) {
	fn := ast.FnStmt{
		Name: ident("sumTo"),
		Body: []ast.Stmt{
			ast.ForStmt{
				Binding: ident("i"),
				From:    ast.IntegerLiteral{Value: 0, Bits: 8},
				To:      ast.IntegerLiteral{Value: 10, Bits: 8},
				Body:    []ast.Stmt{ast.ExprStmt{Value: ast.SkipExpr{}}},
			},
			ast.RetStmt{},
		},
	}

	mod := buildProgram(t, types.NewStore(), []ast.Stmt{fn})
	f := mod.Functions[0]
	require.Len(t, f.Blocks, 5, "entry, for_cond, for_body, for_incr, for_exit")
}

func TestBuildMemberAndMethodCall(t *testing.T) {
	store := types.NewStore()
	addStruct(store, "Box", types.FieldType{Name: "v", Type: types.I32})
	typedef := ast.TypeDefStmt{
		Name:   ident("Box"),
		Struct: &ast.StructType{Fields: []ast.FieldType{{Name: ident("v"), Type: namedType("i32")}}},
	}
	impl := ast.ImplStmt{
		Self: ident("Box"),
		Items: []ast.Stmt{
			ast.FnStmt{
				Name: ident("value"),
				Params: []ast.FnParam{
					{Name: ident("self"), Type: ast.BorrowType{Of: namedType("Box")}},
				},
				Ret: namedType("i32"),
				Body: []ast.Stmt{
					ast.RetStmt{Value: ast.MemberExpr{Base: ast.IdentExpr{Name: ident("self")}, Field: ident("v")}},
				},
			},
		},
	}
	caller := ast.FnStmt{
		Name: ident("useBox"),
		Body: []ast.Stmt{
			ast.LetStmt{Name: ident("b"), Value: ast.StructInitExpr{
				Type:   ident("Box"),
				Fields: []ast.FieldInit{{Name: ident("v"), Value: ast.IntegerLiteral{Value: 7, Bits: 8}}},
			}},
			ast.ExprStmt{Value: ast.CallExpr{
				Callee: ast.MemberExpr{Base: ast.IdentExpr{Name: ident("b")}, Field: ident("value")},
			}},
			ast.RetStmt{},
		},
	}

	mod := buildProgram(t, store, []ast.Stmt{typedef, impl, caller})
	require.Len(t, mod.Functions, 2)

	method := mod.Functions[0]
	require.Equal(t, "Box.value", method.Name)
	require.Equal(t, types.I32, method.Ret)

	var foundLoad bool
	for _, in := range method.Blocks[0].Instrs {
		if in.Op == OpLoad && in.TypeName == "v" {
			foundLoad = true
		}
	}
	require.True(t, foundLoad, "expected self.v to lower to a field-qualified Load")

	useBox := mod.Functions[1]
	var foundCall bool
	for _, in := range useBox.Blocks[0].Instrs {
		if in.Op == OpCall && in.Callee == "Box.value" {
			foundCall = true
			require.Len(t, in.Args, 1, "the instance receiver must be prepended as the call's first argument")
		}
	}
	require.True(t, foundCall, "expected b.value() to lower to a call of Box.value")
}
