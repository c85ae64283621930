package eval

import (
	"ctrlplay/internal/errors"
	"ctrlplay/internal/hostenv"
	"ctrlplay/internal/lexer"
	"ctrlplay/internal/parser"
	"ctrlplay/internal/value"
)

// EvalSource lexes, parses, and evaluates one program against a fresh
// Evaluator, returning its full Output stream. A parse failure (the
// parser panics with *errors.SyntaxError) is reported as a single Err
// output rather than propagating, matching "no error is fatal to the
// interpreter".
func EvalSource(source string, host hostenv.Env) []*value.Output {
	ev := NewEvaluator(host)
	return evalOn(ev, source)
}

// EvalOn evaluates source against an existing Evaluator, preserving its
// Environment across calls — the shape the REPL needs for persistent
// bindings between lines.
func EvalOn(ev *Evaluator, source string) []*value.Output {
	return evalOn(ev, source)
}

func evalOn(ev *Evaluator, source string) (outputs []*value.Output) {
	defer func() {
		if r := recover(); r != nil {
			outputs = []*value.Output{value.ErrOutput(syntaxErrorOutput(r))}
		}
	}()

	scanner := lexer.NewScanner(source)
	tokens := scanner.ScanTokens()
	p := parser.NewParser(tokens)
	stmts := p.Parse()

	return ev.Run(stmts)
}

func syntaxErrorOutput(r interface{}) *errors.EvalError {
	if se, ok := r.(*errors.SyntaxError); ok {
		return errors.NewOther(se.Error(), se)
	}
	if err, ok := r.(error); ok {
		return errors.NewOther(err.Error(), err)
	}
	return errors.NewOther("parse error", nil)
}
