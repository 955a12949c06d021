package ast

// IdentExpr is a bare name used in expression position.
type IdentExpr struct {
	NID  NodeID
	Name Ident
}

func (e IdentExpr) ID() NodeID   { return e.NID }
func (e IdentExpr) Range() Range { return e.Name.Range }
func (IdentExpr) exprTag()       {}

// GroupExpr is a parenthesized expression; it exists only so Range()
// covers the parens, the inner Expr already carries its own type.
type GroupExpr struct {
	NID   NodeID
	Rg    Range
	Inner Expr
}

func (e GroupExpr) ID() NodeID   { return e.NID }
func (e GroupExpr) Range() Range { return e.Rg }
func (GroupExpr) exprTag()       {}

// CallExpr applies Callee to Args. Callee is usually an IdentExpr or
// MemberExpr (a method-associated call).
type CallExpr struct {
	NID    NodeID
	Rg     Range
	Callee Expr
	Args   []Expr
}

func (e CallExpr) ID() NodeID   { return e.NID }
func (e CallExpr) Range() Range { return e.Rg }
func (CallExpr) exprTag()       {}

// MemberExpr is `Base.Field`, a field access through an instance value.
type MemberExpr struct {
	NID   NodeID
	Rg    Range
	Base  Expr
	Field Ident
}

func (e MemberExpr) ID() NodeID   { return e.NID }
func (e MemberExpr) Range() Range { return e.Rg }
func (MemberExpr) exprTag()       {}

// AssociateExpr is `Type::Member`, a reference to an impl's associated
// function or constant, resolved against the Self type rather than an
// instance value.
type AssociateExpr struct {
	NID    NodeID
	Rg     Range
	Type   Ident
	Member Ident
}

func (e AssociateExpr) ID() NodeID   { return e.NID }
func (e AssociateExpr) Range() Range { return e.Rg }
func (AssociateExpr) exprTag()       {}

// FieldInit is one `name: value` pair inside a StructInitExpr.
type FieldInit struct {
	Name  Ident
	Value Expr
}

// StructInitExpr builds a struct value: `Type { field: value, ... }`. The
// checker enforces that the field set exactly matches the struct
// definition's fields (DuplicateFieldInit / MissingFieldInit).
type StructInitExpr struct {
	NID    NodeID
	Rg     Range
	Type   Ident
	Fields []FieldInit
}

func (e StructInitExpr) ID() NodeID   { return e.NID }
func (e StructInitExpr) Range() Range { return e.Rg }
func (StructInitExpr) exprTag()       {}

// BinaryExpr is `Left Op Right`.
type BinaryExpr struct {
	NID   NodeID
	Rg    Range
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (e BinaryExpr) ID() NodeID   { return e.NID }
func (e BinaryExpr) Range() Range { return e.Rg }
func (BinaryExpr) exprTag()       {}

// UnaryExpr is `Op Operand`.
type UnaryExpr struct {
	NID     NodeID
	Rg      Range
	Op      UnaryOp
	Operand Expr
}

func (e UnaryExpr) ID() NodeID   { return e.NID }
func (e UnaryExpr) Range() Range { return e.Rg }
func (UnaryExpr) exprTag()       {}

// BorrowExpr is `&Operand` or `&mut Operand`.
type BorrowExpr struct {
	NID     NodeID
	Rg      Range
	Mutable bool
	Operand Expr
}

func (e BorrowExpr) ID() NodeID   { return e.NID }
func (e BorrowExpr) Range() Range { return e.Rg }
func (BorrowExpr) exprTag()       {}

// DerefExpr is `*Operand`.
type DerefExpr struct {
	NID     NodeID
	Rg      Range
	Operand Expr
}

func (e DerefExpr) ID() NodeID   { return e.NID }
func (e DerefExpr) Range() Range { return e.Rg }
func (DerefExpr) exprTag()       {}

// AssignExpr is `Target = Value`. Target must resolve to a mutable place;
// the checker reports AssignToImmutable otherwise.
type AssignExpr struct {
	NID    NodeID
	Rg     Range
	Target Expr
	Value  Expr
}

func (e AssignExpr) ID() NodeID   { return e.NID }
func (e AssignExpr) Range() Range { return e.Rg }
func (AssignExpr) exprTag()       {}

// PipeExpr is `Left |> Right`, sugar the checker desugars to a call with
// Right as the callee and Left as its only argument.
type PipeExpr struct {
	NID   NodeID
	Rg    Range
	Left  Expr
	Right Expr
}

func (e PipeExpr) ID() NodeID   { return e.NID }
func (e PipeExpr) Range() Range { return e.Rg }
func (PipeExpr) exprTag()       {}

// IfExpr is an if used in expression position: both branches must be
// present and their types must agree, unlike IfStmt where Else is
// optional.
type IfExpr struct {
	NID  NodeID
	Rg   Range
	Cond Expr
	Then []Stmt
	Else []Stmt
}

func (e IfExpr) ID() NodeID   { return e.NID }
func (e IfExpr) Range() Range { return e.Rg }
func (IfExpr) exprTag()       {}

// FnParam is one parameter in a function signature.
type FnParam struct {
	Name    Ident
	Type    TypeExpr
	Mutable bool
}

// FnExpr is an anonymous function value (closure-shaped, but capture
// semantics are out of scope here). The checker types it as a Fn value;
// the builder has no lowering for it and reports an ICE.
type FnExpr struct {
	NID    NodeID
	Rg     Range
	Params []FnParam
	Ret    TypeExpr
	Body   []Stmt
}

func (e FnExpr) ID() NodeID   { return e.NID }
func (e FnExpr) Range() Range { return e.Rg }
func (FnExpr) exprTag()       {}

// ImportExpr references a module by path; module resolution itself is out
// of scope, so the checker only hands Path to loader.Loader.ResolveImport.
type ImportExpr struct {
	NID  NodeID
	Rg   Range
	Path string
}

func (e ImportExpr) ID() NodeID   { return e.NID }
func (e ImportExpr) Range() Range { return e.Rg }
func (ImportExpr) exprTag()       {}

// BreakExpr exits the nearest enclosing loop. Value is nil unless the loop
// is used in expression position.
type BreakExpr struct {
	NID   NodeID
	Rg    Range
	Value Expr
}

func (e BreakExpr) ID() NodeID   { return e.NID }
func (e BreakExpr) Range() Range { return e.Rg }
func (BreakExpr) exprTag()       {}

// SkipExpr continues the nearest enclosing loop (a la `continue`).
type SkipExpr struct {
	NID NodeID
	Rg  Range
}

func (e SkipExpr) ID() NodeID   { return e.NID }
func (e SkipExpr) Range() Range { return e.Rg }
func (SkipExpr) exprTag()       {}
