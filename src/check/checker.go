// Package check implements the type/borrow checker: one free function per
// AST statement or expression variant, each taking the Checker and a
// *scope.Context explicitly rather than hanging off a method on the node
// itself, dispatched from Program/checkStmt/checkExpr by an exhaustive
// type switch.
package check

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yazaldefilimone/lemon/src/ast"
	"github.com/yazaldefilimone/lemon/src/diag"
	"github.com/yazaldefilimone/lemon/src/loader"
	"github.com/yazaldefilimone/lemon/src/scope"
	"github.com/yazaldefilimone/lemon/src/types"
)

// Checker holds the dependencies every check_* function needs beyond the
// *scope.Context it is handed: the loader for import resolution and a
// logger for verbose tracing of scope/borrow decisions.
type Checker struct {
	Loader loader.Loader
	Log    *logrus.Logger

	// namedTypes maps struct/alias names declared by TypeDefStmt to their
	// resolved TypeId, populated as the checker walks top-level
	// statements. A TypeDefStmt is registered the moment it is reached, so
	// only lookups after it in program order see the name; a type used
	// before its definition is reported as UnknownType.
	namedTypes map[string]types.TypeId
}

// New returns a Checker. log may be nil, in which case the standard
// logger is used at its default level.
func New(l loader.Loader, log *logrus.Logger) *Checker {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Checker{Loader: l, Log: log, namedTypes: make(map[string]types.TypeId)}
}

// Program type-checks every top-level statement of p against a fresh
// Context, continuing to the next top-level statement after an error
// rather than aborting the whole program: only the internal calls within
// one statement's check short-circuit on the first error.
func (c *Checker) Program(p ast.Program, store *types.Store) (*scope.Context, []*diag.Diag) {
	ctx := scope.NewContext(store)
	var diags []*diag.Diag
	for _, stmt := range p.Stmts {
		if _, err := c.checkStmt(ctx, stmt); err != nil {
			diags = append(diags, toDiag(stmt.Range(), err))
		}
	}
	return ctx, diags
}

// toDiag normalizes any error returned by a check_* call into a *diag.Diag,
// wrapping a non-Diag error (an internal invariant violation) as an ICE so
// callers never have to type-switch on the error themselves.
func toDiag(rg ast.Range, err error) *diag.Diag {
	if d, ok := err.(*diag.Diag); ok {
		return d
	}
	return diag.NewICE(rg, err.Error())
}

// checkStmt dispatches on the concrete type of s. The default case is
// unreachable by construction: ast.Stmt is a closed sum and every variant
// is listed here.
func (c *Checker) checkStmt(ctx *scope.Context, s ast.Stmt) (types.TypeId, error) {
	switch n := s.(type) {
	case ast.LetStmt:
		return c.checkLetStmt(ctx, n)
	case ast.ConstDeclStmt:
		return c.checkConstDeclStmt(ctx, n)
	case ast.FnStmt:
		return c.checkFnStmt(ctx, n)
	case ast.ExternFnStmt:
		return c.checkExternFnStmt(ctx, n)
	case ast.ConstFnStmt:
		return c.checkConstFnStmt(ctx, n)
	case ast.TypeDefStmt:
		return c.checkTypeDefStmt(ctx, n)
	case ast.ImplStmt:
		return c.checkImplStmt(ctx, n)
	case ast.RetStmt:
		return c.checkRetStmt(ctx, n)
	case ast.IfStmt:
		return c.checkIfStmt(ctx, n)
	case ast.WhileStmt:
		return c.checkWhileStmt(ctx, n)
	case ast.ForStmt:
		return c.checkForStmt(ctx, n)
	case ast.BlockStmt:
		return c.checkBlockStmt(ctx, n)
	case ast.ExprStmt:
		return c.checkExpr(ctx, n.Value)
	default:
		panic(fmt.Sprintf("check: unreachable stmt variant %T", s))
	}
}

// checkBody checks every statement of a body in a new scope of the given kind,
// collecting errors the same per-statement-continues way Program does.
func (c *Checker) checkBody(ctx *scope.Context, kind scope.ScopeKind, body []ast.Stmt) (types.TypeId, []*diag.Diag) {
	ctx.EnterScope(kind)
	defer ctx.ExitScope()
	var diags []*diag.Diag
	last := types.Void
	for _, stmt := range body {
		t, err := c.checkStmt(ctx, stmt)
		if err != nil {
			diags = append(diags, toDiag(stmt.Range(), err))
			continue
		}
		last = t
	}
	return last, diags
}

// checkExpr dispatches on the concrete type of e.
func (c *Checker) checkExpr(ctx *scope.Context, e ast.Expr) (types.TypeId, error) {
	switch n := e.(type) {
	case ast.IntegerLiteral:
		return c.checkIntegerLiteral(ctx, n)
	case ast.FloatLiteral:
		return c.checkFloatLiteral(ctx, n)
	case ast.BoolLiteral:
		return types.Bool, nil
	case ast.StringLiteral:
		return types.String, nil
	case ast.CharLiteral:
		return types.Char, nil
	case ast.IdentExpr:
		return c.checkIdentExpr(ctx, n)
	case ast.GroupExpr:
		return c.checkExpr(ctx, n.Inner)
	case ast.CallExpr:
		return c.checkCallExpr(ctx, n)
	case ast.MemberExpr:
		return c.checkMemberExpr(ctx, n)
	case ast.AssociateExpr:
		return c.checkAssociateExpr(ctx, n)
	case ast.StructInitExpr:
		return c.checkStructInitExpr(ctx, n)
	case ast.BinaryExpr:
		return c.checkBinaryExpr(ctx, n)
	case ast.UnaryExpr:
		return c.checkUnaryExpr(ctx, n)
	case ast.BorrowExpr:
		return c.checkBorrowExpr(ctx, n)
	case ast.DerefExpr:
		return c.checkDerefExpr(ctx, n)
	case ast.AssignExpr:
		return c.checkAssignExpr(ctx, n)
	case ast.PipeExpr:
		return c.checkPipeExpr(ctx, n)
	case ast.IfExpr:
		return c.checkIfExpr(ctx, n)
	case ast.FnExpr:
		return c.checkFnExpr(ctx, n)
	case ast.ImportExpr:
		return c.checkImportExpr(ctx, n)
	case ast.BreakExpr:
		return c.checkBreakExpr(ctx, n)
	case ast.SkipExpr:
		return c.checkSkipExpr(ctx, n)
	default:
		panic(fmt.Sprintf("check: unreachable expr variant %T", e))
	}
}
