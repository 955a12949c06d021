package ast

// LetStmt binds a new local value, optionally mutable, with an optional
// type annotation (absent when the type is to be inferred from Value).
type LetStmt struct {
	NID     NodeID
	Rg      Range
	Name    Ident
	Mutable bool
	Type    TypeExpr
	Value   Expr
}

func (s LetStmt) ID() NodeID   { return s.NID }
func (s LetStmt) Range() Range { return s.Rg }
func (LetStmt) stmtTag()       {}

// ConstDeclStmt binds a module-level constant; always immutable, always
// has an explicit type.
type ConstDeclStmt struct {
	NID   NodeID
	Rg    Range
	Name  Ident
	Type  TypeExpr
	Value Expr
}

func (s ConstDeclStmt) ID() NodeID   { return s.NID }
func (s ConstDeclStmt) Range() Range { return s.Rg }
func (ConstDeclStmt) stmtTag()       {}

// FnStmt declares a named function.
type FnStmt struct {
	NID    NodeID
	Rg     Range
	Name   Ident
	Params []FnParam
	Ret    TypeExpr
	Body   []Stmt
}

func (s FnStmt) ID() NodeID   { return s.NID }
func (s FnStmt) Range() Range { return s.Rg }
func (FnStmt) stmtTag()       {}

// ExternFnStmt declares a function with no body, implemented elsewhere;
// the checker registers its signature but never lowers a body for it.
type ExternFnStmt struct {
	NID    NodeID
	Rg     Range
	Name   Ident
	Params []FnParam
	Ret    TypeExpr
}

func (s ExternFnStmt) ID() NodeID   { return s.NID }
func (s ExternFnStmt) Range() Range { return s.Rg }
func (ExternFnStmt) stmtTag()       {}

// ConstFnStmt declares a function usable in const-evaluation contexts; it
// opens a ConstFn scope rather than an ordinary Fn scope. The checker
// applies the same rules inside it as inside a FnStmt body and rejects no
// operation as non-const.
type ConstFnStmt struct {
	NID    NodeID
	Rg     Range
	Name   Ident
	Params []FnParam
	Ret    TypeExpr
	Body   []Stmt
}

func (s ConstFnStmt) ID() NodeID   { return s.NID }
func (s ConstFnStmt) Range() Range { return s.Rg }
func (ConstFnStmt) stmtTag()       {}

// FieldType is one field in a TypeDefStmt's struct body.
type FieldType struct {
	Name Ident
	Type TypeExpr
}

// StructType is the body of a TypeDefStmt that defines a struct (as
// opposed to a plain alias).
type StructType struct {
	Fields []FieldType
}

// TypeDefStmt introduces a new named type: either a struct definition
// (Struct non-nil) or an alias to an existing TypeExpr (Alias non-nil).
// Exactly one of the two is set.
type TypeDefStmt struct {
	NID    NodeID
	Rg     Range
	Name   Ident
	Struct *StructType
	Alias  TypeExpr
}

func (s TypeDefStmt) ID() NodeID   { return s.NID }
func (s TypeDefStmt) Range() Range { return s.Rg }
func (TypeDefStmt) stmtTag()       {}

// ImplStmt attaches a block of methods/associated functions to Self.
type ImplStmt struct {
	NID   NodeID
	Rg    Range
	Self  Ident
	Items []Stmt
}

func (s ImplStmt) ID() NodeID   { return s.NID }
func (s ImplStmt) Range() Range { return s.Rg }
func (ImplStmt) stmtTag()       {}

// RetStmt returns from the nearest enclosing Fn/ConstFn scope. Value is
// nil for a bare `ret`.
type RetStmt struct {
	NID   NodeID
	Rg    Range
	Value Expr
}

func (s RetStmt) ID() NodeID   { return s.NID }
func (s RetStmt) Range() Range { return s.Rg }
func (RetStmt) stmtTag()       {}

// IfStmt is an if used in statement position: Else is optional, and unlike
// IfExpr its branch types need not agree since the result is discarded.
type IfStmt struct {
	NID  NodeID
	Rg   Range
	Cond Expr
	Then []Stmt
	Else []Stmt
}

func (s IfStmt) ID() NodeID   { return s.NID }
func (s IfStmt) Range() Range { return s.Rg }
func (IfStmt) stmtTag()       {}

// WhileStmt loops while Cond holds.
type WhileStmt struct {
	NID  NodeID
	Rg   Range
	Cond Expr
	Body []Stmt
}

func (s WhileStmt) ID() NodeID   { return s.NID }
func (s WhileStmt) Range() Range { return s.Rg }
func (WhileStmt) stmtTag()       {}

// ForStmt iterates Binding over the half-open range [From, To).
type ForStmt struct {
	NID     NodeID
	Rg      Range
	Binding Ident
	From    Expr
	To      Expr
	Body    []Stmt
}

func (s ForStmt) ID() NodeID   { return s.NID }
func (s ForStmt) Range() Range { return s.Rg }
func (ForStmt) stmtTag()       {}

// BlockStmt is a bare `{ ... }` introducing its own Block scope without
// any of If/While/Fn's extra semantics.
type BlockStmt struct {
	NID  NodeID
	Rg   Range
	Body []Stmt
}

func (s BlockStmt) ID() NodeID   { return s.NID }
func (s BlockStmt) Range() Range { return s.Rg }
func (BlockStmt) stmtTag()       {}

// ExprStmt is an expression evaluated for its side effect; its value, if
// any, is discarded.
type ExprStmt struct {
	NID   NodeID
	Rg    Range
	Value Expr
}

func (s ExprStmt) ID() NodeID   { return s.NID }
func (s ExprStmt) Range() Range { return s.Rg }
func (ExprStmt) stmtTag()       {}
