package parser

// Expr is the abstract syntax for the expression language: identifiers,
// literals, unary/binary arithmetic, function calls, and system blocks.
// The variant set is closed by design; new expression forms are added
// here and in ExprVisitor, never via an open interface hierarchy.
type Expr interface {
	Accept(visitor ExprVisitor) interface{}
}

// Identifier: a bare name, e.g. `plant`.
type Identifier struct {
	Name string
	Line int
}

func (i *Identifier) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitIdentifier(i)
}

// StringLiteral: a double-quoted string, e.g. `"data.csv"`.
type StringLiteral struct {
	Value string
	Line  int
}

func (s *StringLiteral) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitStringLiteral(s)
}

// FloatLiteral: a numeric literal, always evaluated as a float.
type FloatLiteral struct {
	Value float64
	Line  int
}

func (f *FloatLiteral) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitFloatLiteral(f)
}

// VectorLiteral: `[1 2 -3]` or `[1, 2, -3]`, comma and whitespace
// separators are both legal and may be mixed.
type VectorLiteral struct {
	Elements []Expr
	Line     int
}

func (v *VectorLiteral) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitVectorLiteral(v)
}

// UnOp: unary minus, the only unary operator in the language.
type UnOp struct {
	Operand Expr
	Line    int
}

func (u *UnOp) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitUnOp(u)
}

// BinOp: one of +, -, *, / at standard precedence, left associative.
type BinOp struct {
	Op    string
	Left  Expr
	Right Expr
	Line  int
}

func (b *BinOp) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitBinOp(b)
}

// FunctionCall: `f(a1, a2, ...)`.
type FunctionCall struct {
	Callee Expr
	Args   []Expr
	Line   int
}

func (f *FunctionCall) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitFunctionCall(f)
}

// SystemItemKind discriminates the two shapes a system block line can
// take: a − b (Difference) or block(in) (component application).
type SystemItemKind int

const (
	SystemItemDifference SystemItemKind = iota
	SystemItemApplication
)

// SystemItem binds an output signal name to either a Difference of two
// prior signals or the application of a named block to one prior
// signal. Block names are resolved against the outer environment only;
// input names are resolved against u and the system's own prior
// bindings, per the forward-reference-only wiring discipline. Neither
// is re-parsed as an expression.
type SystemItem struct {
	Name string
	Kind SystemItemKind

	// Populated when Kind == SystemItemDifference.
	DiffA, DiffB string

	// Populated when Kind == SystemItemApplication.
	BlockName, InputName string

	Line int
}

// System: `system { name = expr; ... }`.
type System struct {
	Items []SystemItem
	Line  int
}

func (s *System) Accept(visitor ExprVisitor) interface{} {
	return visitor.VisitSystem(s)
}

type ExprVisitor interface {
	VisitIdentifier(expr *Identifier) interface{}
	VisitStringLiteral(expr *StringLiteral) interface{}
	VisitFloatLiteral(expr *FloatLiteral) interface{}
	VisitVectorLiteral(expr *VectorLiteral) interface{}
	VisitUnOp(expr *UnOp) interface{}
	VisitBinOp(expr *BinOp) interface{}
	VisitFunctionCall(expr *FunctionCall) interface{}
	VisitSystem(expr *System) interface{}
}
