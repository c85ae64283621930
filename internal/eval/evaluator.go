// Package eval walks the parser's AST against an Environment, driving
// the engine package's transfer-function, state-space, and simulation
// primitives. It implements parser.ExprVisitor/StmtVisitor directly
// (Accept returns interface{}, type-asserted back to *outcome here),
// the same double-dispatch shape the AST package's visitor interfaces
// are built around.
package eval

import (
	"ctrlplay/internal/engine"
	"ctrlplay/internal/errors"
	"ctrlplay/internal/hostenv"
	"ctrlplay/internal/parser"
	"ctrlplay/internal/value"
)

// outcome carries an expression's result through the Accept/interface{}
// visitor boundary: exactly one of val or err is set.
type outcome struct {
	val *value.Value
	err *errors.EvalError
}

// stmtOutcome carries a statement's result: the Output to append, or
// nil when the statement bound silently.
type stmtOutcome struct {
	output *value.Output
}

// Evaluator walks a Program against a single Environment and the host's
// read_file port.
type Evaluator struct {
	Env  *Environment
	Host hostenv.Env
}

func NewEvaluator(host hostenv.Env) *Evaluator {
	return &Evaluator{Env: NewEnvironment(), Host: host}
}

// Run walks stmts in order and returns the ordered Output list. A
// failing statement emits Err and leaves the environment exactly as it
// was before that statement; subsequent statements still run.
func (e *Evaluator) Run(stmts []parser.Stmt) []*value.Output {
	var outputs []*value.Output
	for _, stmt := range stmts {
		result := stmt.Accept(e).(*stmtOutcome)
		if result.output != nil {
			outputs = append(outputs, result.output)
		}
	}
	return outputs
}

func (e *Evaluator) eval(expr parser.Expr) (*value.Value, *errors.EvalError) {
	result := expr.Accept(e).(*outcome)
	return result.val, result.err
}

// --- StmtVisitor ---

func (e *Evaluator) VisitExpressionStmt(stmt *parser.ExpressionStmt) interface{} {
	val, err := e.eval(stmt.Expr)
	if err != nil {
		return &stmtOutcome{output: value.ErrOutput(err)}
	}
	return &stmtOutcome{output: val.ToOutput()}
}

func (e *Evaluator) VisitAssignStmt(stmt *parser.AssignStmt) interface{} {
	val, err := e.eval(stmt.Expr)
	if err != nil {
		return &stmtOutcome{output: value.ErrOutput(err)}
	}
	e.Env.Set(stmt.Name, val)
	return &stmtOutcome{}
}

// --- ExprVisitor ---

func (e *Evaluator) VisitIdentifier(expr *parser.Identifier) interface{} {
	v, ok := e.Env.Get(expr.Name)
	if !ok {
		return &outcome{err: errors.NewNullDeref(expr.Name)}
	}
	return &outcome{val: v}
}

func (e *Evaluator) VisitStringLiteral(expr *parser.StringLiteral) interface{} {
	return &outcome{val: value.String(expr.Value)}
}

func (e *Evaluator) VisitFloatLiteral(expr *parser.FloatLiteral) interface{} {
	return &outcome{val: value.Float(expr.Value)}
}

func (e *Evaluator) VisitVectorLiteral(expr *parser.VectorLiteral) interface{} {
	elems := make([]float64, len(expr.Elements))
	for i, el := range expr.Elements {
		v, err := e.eval(el)
		if err != nil {
			return &outcome{err: err}
		}
		if v.Kind != value.KindFloat {
			return &outcome{err: errors.NewTypeError("vector elements must be Float, got " + v.TypeName())}
		}
		elems[i] = v.Num
	}
	return &outcome{val: value.Vector(elems)}
}

func (e *Evaluator) VisitUnOp(expr *parser.UnOp) interface{} {
	v, err := e.eval(expr.Operand)
	if err != nil {
		return &outcome{err: err}
	}
	if v.Kind != value.KindFloat {
		return &outcome{err: errors.NewTypeError("unary - requires a Float, got " + v.TypeName())}
	}
	return &outcome{val: value.Float(-v.Num)}
}

func (e *Evaluator) VisitBinOp(expr *parser.BinOp) interface{} {
	left, err := e.eval(expr.Left)
	if err != nil {
		return &outcome{err: err}
	}
	right, err := e.eval(expr.Right)
	if err != nil {
		return &outcome{err: err}
	}
	if left.Kind != value.KindFloat || right.Kind != value.KindFloat {
		return &outcome{err: errors.NewTypeError("operator " + expr.Op + " requires two Float operands")}
	}
	var result float64
	switch expr.Op {
	case "+":
		result = left.Num + right.Num
	case "-":
		result = left.Num - right.Num
	case "*":
		result = left.Num * right.Num
	case "/":
		result = left.Num / right.Num
	default:
		return &outcome{err: errors.NewTypeError("unknown operator " + expr.Op)}
	}
	return &outcome{val: value.Float(result)}
}

func (e *Evaluator) VisitFunctionCall(expr *parser.FunctionCall) interface{} {
	callee, err := e.eval(expr.Callee)
	if err != nil {
		if err.Kind == errors.NullDeref {
			if id, ok := expr.Callee.(*parser.Identifier); ok {
				return &outcome{err: errors.NewUnknownFunction(id.Name)}
			}
		}
		return &outcome{err: err}
	}
	if callee.Kind != value.KindBuiltinFunction {
		return &outcome{err: errors.NewTypeError("value is not callable: " + callee.TypeName())}
	}

	args := make([]*value.Value, len(expr.Args))
	for i, a := range expr.Args {
		v, err := e.eval(a)
		if err != nil {
			return &outcome{err: err}
		}
		args[i] = v
	}

	result, err := e.callBuiltin(callee.Builtin, args)
	if err != nil {
		return &outcome{err: err}
	}
	return &outcome{val: result}
}

// VisitSystem builds a CompoundSystem from a system { ... } block. Block
// names in Application items resolve against the environment as it
// stands when the System expression is evaluated — never against names
// defined earlier in the same block (see open-question decision).
func (e *Evaluator) VisitSystem(expr *parser.System) interface{} {
	defs := make([]engine.ComponentDef, len(expr.Items))
	for i, item := range expr.Items {
		switch item.Kind {
		case parser.SystemItemDifference:
			defs[i] = engine.ComponentDef{
				Block:      engine.DifferenceBlock(),
				Name:       item.Name,
				InputNames: []string{item.DiffA, item.DiffB},
			}
		case parser.SystemItemApplication:
			blockVal, ok := e.Env.Get(item.BlockName)
			if !ok {
				return &outcome{err: errors.NewNullDeref(item.BlockName)}
			}
			var block engine.Block
			switch blockVal.Kind {
			case value.KindTransferFunction:
				block = engine.TransferFunctionBlock(blockVal.TF)
			case value.KindStateSpace:
				block = engine.StateSpaceBlock(blockVal.SS)
			default:
				return &outcome{err: errors.NewTypeError(item.BlockName + " must be a TransferFunction or StateSpaceModel to use as a system block")}
			}
			defs[i] = engine.ComponentDef{
				Block:      block,
				Name:       item.Name,
				InputNames: []string{item.InputName},
			}
		}
	}

	cs, err := engine.Build(defs)
	if err != nil {
		return &outcome{err: errors.NewOther(err.Error(), err)}
	}
	return &outcome{val: value.CompoundSystem(cs)}
}
