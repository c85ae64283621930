package parser

// Stmt represents a top-level statement: an expression evaluated for
// its output, or a binding of a name to an expression's value.
type Stmt interface {
	Accept(visitor StmtVisitor) interface{}
}

// ExpressionStmt wraps a raw expression as a statement; its value is
// projected to an Output.
type ExpressionStmt struct {
	Expr Expr
}

func (e *ExpressionStmt) Accept(visitor StmtVisitor) interface{} {
	return visitor.VisitExpressionStmt(e)
}

// AssignStmt: `name = expr`. Binds silently on success; an error leaves
// the environment untouched.
type AssignStmt struct {
	Name string
	Expr Expr
}

func (a *AssignStmt) Accept(visitor StmtVisitor) interface{} {
	return visitor.VisitAssignStmt(a)
}

type StmtVisitor interface {
	VisitExpressionStmt(stmt *ExpressionStmt) interface{}
	VisitAssignStmt(stmt *AssignStmt) interface{}
}
