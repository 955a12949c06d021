package check

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/types"
)

func ident(name string) ast.Ident { return ast.Ident{Text: name} }

func namedType(name string) ast.TypeExpr { return ast.NamedType{Name: ident(name)} }

// checkProgram runs a fresh Checker over stmts against a fresh Store,
// returning whatever diagnostics surfaced.
func checkProgram(stmts []ast.Stmt) []*diag.Diag {
	c := New(nil, nil)
	_, diags := c.Program(ast.Program{Stmts: stmts}, types.NewStore())
	return diags
}

func TestProgramFnStmtHappyPath(t *testing.T) {
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

	diags := checkProgram([]ast.Stmt{fn})
	require.Empty(t, diags)
}

func TestProgramLetStmtTypeMismatchReportsDiag(t *testing.T) {
	fn := ast.FnStmt{
		Name: ident("f"),
		Body: []ast.Stmt{
			ast.LetStmt{Name: ident("n"), Type: namedType("i32"), Value: ast.StringLiteral{Value: "nope"}},
			ast.RetStmt{},
		},
	}

	diags := checkProgram([]ast.Stmt{fn})
	require.Len(t, diags, 1)
	require.Equal(t, diag.TypeMismatch, diags[0].Kind)
}

func TestProgramUnknownIdentReportsDiag(t *testing.T) {
	fn := ast.FnStmt{
		Name: ident("f"),
		Body: []ast.Stmt{
			ast.ExprStmt{Value: ast.IdentExpr{Name: ident("nope")}},
			ast.RetStmt{},
		},
	}

	diags := checkProgram([]ast.Stmt{fn})
	require.Len(t, diags, 1)
	require.Equal(t, diag.UnknownIdent, diags[0].Kind)
}

func TestProgramStructInitDuplicateFieldReportsDiag(t *testing.T) {
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
			ast.ExprStmt{Value: ast.StructInitExpr{
				Type: ident("Point"),
				Fields: []ast.FieldInit{
					{Name: ident("x"), Value: ast.IntegerLiteral{Value: 1, Bits: 8}},
					{Name: ident("x"), Value: ast.IntegerLiteral{Value: 2, Bits: 8}},
					{Name: ident("y"), Value: ast.IntegerLiteral{Value: 3, Bits: 8}},
				},
			}},
			ast.RetStmt{},
		},
	}

	diags := checkProgram([]ast.Stmt{typedef, fn})
	require.Len(t, diags, 1)
	require.Equal(t, diag.DuplicateFieldInit, diags[0].Kind)
}

func TestProgramStructInitMissingFieldReportsDiag(t *testing.T) {
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
			ast.ExprStmt{Value: ast.StructInitExpr{
				Type:   ident("Point"),
				Fields: []ast.FieldInit{{Name: ident("x"), Value: ast.IntegerLiteral{Value: 1, Bits: 8}}},
			}},
			ast.RetStmt{},
		},
	}

	diags := checkProgram([]ast.Stmt{typedef, fn})
	require.Len(t, diags, 1)
	require.Equal(t, diag.MissingFieldInit, diags[0].Kind)
}

func TestProgramImplMethodCallResolvesThroughBox(t *testing.T) {
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

	diags := checkProgram([]ast.Stmt{typedef, impl, caller})
	require.Empty(t, diags)
}

func TestProgramCallExprArityMismatchReportsDiag(t *testing.T) {
	callee := ast.FnStmt{
		Name:   ident("add"),
		Params: []ast.FnParam{{Name: ident("a"), Type: namedType("i32")}, {Name: ident("b"), Type: namedType("i32")}},
		Ret:    namedType("i32"),
		Body:   []ast.Stmt{ast.RetStmt{Value: ast.IdentExpr{Name: ident("a")}}},
	}
	caller := ast.FnStmt{
		Name: ident("useIt"),
		Body: []ast.Stmt{
			ast.ExprStmt{Value: ast.CallExpr{
				Callee: ast.IdentExpr{Name: ident("add")},
				Args:   []ast.Expr{ast.IntegerLiteral{Value: 1, Bits: 8}},
			}},
			ast.RetStmt{},
		},
	}

	diags := checkProgram([]ast.Stmt{callee, caller})
	require.Len(t, diags, 1)
	require.Equal(t, diag.ArityMismatch, diags[0].Kind)
}

func TestProgramBorrowConflictOnSecondMutableBorrow(t *testing.T) {
	fn := ast.FnStmt{
		Name: ident("f"),
		Body: []ast.Stmt{
			ast.LetStmt{Name: ident("n"), Mutable: true, Type: namedType("i32"), Value: ast.IntegerLiteral{Value: 1, Bits: 8}},
			ast.LetStmt{Name: ident("r1"), Value: ast.BorrowExpr{Mutable: true, Operand: ast.IdentExpr{Name: ident("n")}}},
			ast.LetStmt{Name: ident("r2"), Value: ast.BorrowExpr{Mutable: true, Operand: ast.IdentExpr{Name: ident("n")}}},
			ast.RetStmt{},
		},
	}

	diags := checkProgram([]ast.Stmt{fn})
	require.Len(t, diags, 1)
	require.Equal(t, diag.BorrowConflict, diags[0].Kind)
}

func TestProgramBorrowOfStructFieldIsAddressable(t *testing.T) {
	typedef := ast.TypeDefStmt{
		Name:   ident("Box"),
		Struct: &ast.StructType{Fields: []ast.FieldType{{Name: ident("v"), Type: namedType("i32")}}},
	}
	fn := ast.FnStmt{
		Name: ident("f"),
		Body: []ast.Stmt{
			ast.LetStmt{Name: ident("b"), Value: ast.StructInitExpr{
				Type:   ident("Box"),
				Fields: []ast.FieldInit{{Name: ident("v"), Value: ast.IntegerLiteral{Value: 7, Bits: 8}}},
			}},
			ast.LetStmt{Name: ident("r"), Value: ast.BorrowExpr{
				Operand: ast.MemberExpr{Base: ast.IdentExpr{Name: ident("b")}, Field: ident("v")},
			}},
			ast.RetStmt{},
		},
	}

	diags := checkProgram([]ast.Stmt{typedef, fn})
	require.Empty(t, diags)
}

func TestProgramBorrowConflictOnSecondMutableBorrowOfSameFieldRoot(t *testing.T) {
	typedef := ast.TypeDefStmt{
		Name:   ident("Box"),
		Struct: &ast.StructType{Fields: []ast.FieldType{{Name: ident("v"), Type: namedType("i32")}}},
	}
	fn := ast.FnStmt{
		Name: ident("f"),
		Body: []ast.Stmt{
			ast.LetStmt{Name: ident("b"), Mutable: true, Value: ast.StructInitExpr{
				Type:   ident("Box"),
				Fields: []ast.FieldInit{{Name: ident("v"), Value: ast.IntegerLiteral{Value: 7, Bits: 8}}},
			}},
			ast.LetStmt{Name: ident("r1"), Value: ast.BorrowExpr{
				Mutable: true,
				Operand: ast.MemberExpr{Base: ast.IdentExpr{Name: ident("b")}, Field: ident("v")},
			}},
			ast.LetStmt{Name: ident("r2"), Value: ast.BorrowExpr{
				Mutable: true,
				Operand: ast.MemberExpr{Base: ast.IdentExpr{Name: ident("b")}, Field: ident("v")},
			}},
			ast.RetStmt{},
		},
	}

	diags := checkProgram([]ast.Stmt{typedef, fn})
	require.Len(t, diags, 1)
	require.Equal(t, diag.BorrowConflict, diags[0].Kind)
}

func TestProgramAssignToImmutableBindingReportsDiag(t *testing.T) {
	fn := ast.FnStmt{
		Name: ident("f"),
		Body: []ast.Stmt{
			ast.LetStmt{Name: ident("n"), Type: namedType("i32"), Value: ast.IntegerLiteral{Value: 1, Bits: 8}},
			ast.ExprStmt{Value: ast.AssignExpr{
				Target: ast.IdentExpr{Name: ident("n")},
				Value:  ast.IntegerLiteral{Value: 2, Bits: 8},
			}},
			ast.RetStmt{},
		},
	}

	diags := checkProgram([]ast.Stmt{fn})
	require.Len(t, diags, 1)
	require.Equal(t, diag.AssignToImmutable, diags[0].Kind)
}

func TestProgramAssignToMutableBindingSucceeds(t *testing.T) {
	fn := ast.FnStmt{
		Name: ident("f"),
		Body: []ast.Stmt{
			ast.LetStmt{Name: ident("n"), Mutable: true, Type: namedType("i32"), Value: ast.IntegerLiteral{Value: 1, Bits: 8}},
			ast.ExprStmt{Value: ast.AssignExpr{
				Target: ast.IdentExpr{Name: ident("n")},
				Value:  ast.IntegerLiteral{Value: 2, Bits: 8},
			}},
			ast.RetStmt{},
		},
	}

	diags := checkProgram([]ast.Stmt{fn})
	require.Empty(t, diags)
}

func TestProgramBreakOutsideLoopReportsDiag(t *testing.T) {
	fn := ast.FnStmt{
		Name: ident("f"),
		Body: []ast.Stmt{
			ast.ExprStmt{Value: ast.BreakExpr{}},
			ast.RetStmt{},
		},
	}

	diags := checkProgram([]ast.Stmt{fn})
	require.Len(t, diags, 1)
	require.Equal(t, diag.BreakOrSkipOutsideLoop, diags[0].Kind)
}

func TestProgramBreakInsideWhileSucceeds(t *testing.T) {
	fn := ast.FnStmt{
		Name: ident("f"),
		Body: []ast.Stmt{
			ast.WhileStmt{
				Cond: ast.BoolLiteral{Value: true},
				Body: []ast.Stmt{ast.ExprStmt{Value: ast.BreakExpr{}}},
			},
			ast.RetStmt{},
		},
	}

	diags := checkProgram([]ast.Stmt{fn})
	require.Empty(t, diags)
}

func TestProgramForStmtBindsCountedLoopVariable(t *testing.T) {
	fn := ast.FnStmt{
		Name: ident("f"),
		Body: []ast.Stmt{
			ast.ForStmt{
				Binding: ident("i"),
				From:    ast.IntegerLiteral{Value: 0, Bits: 8},
				To:      ast.IntegerLiteral{Value: 10, Bits: 8},
				Body:    []ast.Stmt{ast.ExprStmt{Value: ast.IdentExpr{Name: ident("i")}}},
			},
			ast.RetStmt{},
		},
	}

	diags := checkProgram([]ast.Stmt{fn})
	require.Empty(t, diags)
}

func TestProgramDerefRequiresBorrow(t *testing.T) {
	fn := ast.FnStmt{
		Name: ident("f"),
		Body: []ast.Stmt{
			ast.LetStmt{Name: ident("n"), Type: namedType("i32"), Value: ast.IntegerLiteral{Value: 1, Bits: 8}},
			ast.ExprStmt{Value: ast.DerefExpr{Operand: ast.IdentExpr{Name: ident("n")}}},
			ast.RetStmt{},
		},
	}

	diags := checkProgram([]ast.Stmt{fn})
	require.Len(t, diags, 1)
	require.Equal(t, diag.CannotDereference, diags[0].Kind)
}

// mockLoader resolves every import path to the same fixed program,
// standing in for real module/file resolution in import tests.
type mockLoader struct {
	prog ast.Program
}

func (m mockLoader) GetAST(mod ast.ModID) (ast.Program, error) { return m.prog, nil }
func (m mockLoader) ResolveImport(base ast.ModID, path string) (ast.ModID, error) {
	return 1, nil
}

func TestProgramImportRegistersExternalFunction(t *testing.T) {
	exported := ast.FnStmt{
		Name:   ident("double"),
		Params: []ast.FnParam{{Name: ident("n"), Type: namedType("i32")}},
		Ret:    namedType("i32"),
		Body:   []ast.Stmt{ast.RetStmt{Value: ast.IdentExpr{Name: ident("n")}}},
	}
	loader := mockLoader{prog: ast.Program{Stmts: []ast.Stmt{exported}}}

	fn := ast.FnStmt{
		Name: ident("useImport"),
		Body: []ast.Stmt{
			ast.ExprStmt{Value: ast.ImportExpr{Path: "math"}},
			ast.ExprStmt{Value: ast.CallExpr{
				Callee: ast.IdentExpr{Name: ident("double")},
				Args:   []ast.Expr{ast.IntegerLiteral{Value: 2, Bits: 8}},
			}},
			ast.RetStmt{},
		},
	}

	c := New(loader, nil)
	_, diags := c.Program(ast.Program{Stmts: []ast.Stmt{fn}}, types.NewStore())
	require.Empty(t, diags)
}

func TestProgramImportWithoutLoaderReportsDiag(t *testing.T) {
	fn := ast.FnStmt{
		Name: ident("f"),
		Body: []ast.Stmt{
			ast.ExprStmt{Value: ast.ImportExpr{Path: "math"}},
			ast.RetStmt{},
		},
	}

	diags := checkProgram([]ast.Stmt{fn})
	require.Len(t, diags, 1)
	require.Equal(t, diag.UnknownType, diags[0].Kind)
}

// TestProgramReportsOneDiagnosticKindPerFailingTopLevelStatement checks
// that Program continues past a failing top-level statement rather than
// aborting the walk, and that the reported Kinds line up in statement
// order — a cmp.Diff over the Kind slice reads clearer than a chain of
// individual require.Equal calls once there is more than one failure.
func TestProgramReportsOneDiagnosticKindPerFailingTopLevelStatement(t *testing.T) {
	unknownIdent := ast.FnStmt{
		Name: ident("a"),
		Body: []ast.Stmt{
			ast.ExprStmt{Value: ast.IdentExpr{Name: ident("nope")}},
			ast.RetStmt{},
		},
	}
	breakOutsideLoop := ast.FnStmt{
		Name: ident("b"),
		Body: []ast.Stmt{
			ast.ExprStmt{Value: ast.BreakExpr{}},
			ast.RetStmt{},
		},
	}

	diags := checkProgram([]ast.Stmt{unknownIdent, breakOutsideLoop})

	var got []diag.Kind
	for _, d := range diags {
		got = append(got, d.Kind)
	}
	want := []diag.Kind{diag.UnknownIdent, diag.BreakOrSkipOutsideLoop}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diagnostic kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestProgramParallelSurfacesSequentialDiag(t *testing.T) {
	bad := ast.FnStmt{
		Name: ident("bad"),
		Body: []ast.Stmt{
			ast.ExprStmt{Value: ast.IdentExpr{Name: ident("nope")}},
			ast.RetStmt{},
		},
	}
	good := ast.FnStmt{
		Name: ident("good"),
		Ret:  namedType("i32"),
		Body: []ast.Stmt{ast.RetStmt{Value: ast.IntegerLiteral{Value: 1, Bits: 8}}},
	}
	prog := ast.Program{Stmts: []ast.Stmt{bad, good}}

	c1 := New(nil, nil)
	_, seqDiags := c1.Program(prog, types.NewStore())
	require.Len(t, seqDiags, 1)

	c2 := New(nil, nil)
	_, parDiags := c2.ProgramParallel(prog, types.NewStore(), 4)
	require.GreaterOrEqual(t, len(parDiags), 1, "the parallel per-function revalidation pass must surface the same error the sequential pass found")
}
