// Package errors defines the closed set of error kinds the evaluator can
// surface to a user.
package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is a closed enum of user-facing error categories.
type Kind string

const (
	IO                         Kind = "IO"
	NullDeref                  Kind = "NullDeref"
	UnknownFunction            Kind = "UnknownFunction"
	TypeError                  Kind = "TypeError"
	IncorrectNumberOfArguments Kind = "IncorrectNumberOfArguments"
	Other                      Kind = "Other"
)

// EvalError is the error type produced by the parser and evaluator. Its
// Kind is fixed at construction; Cause, when set, is the underlying Go
// error that triggered an Other/IO error (a CSV parse failure, a
// rejected tf() construction, and so on).
type EvalError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *EvalError) Unwrap() error {
	return e.Cause
}

func NewNullDeref(name string) *EvalError {
	return &EvalError{Kind: NullDeref, Message: fmt.Sprintf("%s is not defined", name)}
}

func NewUnknownFunction(name string) *EvalError {
	return &EvalError{Kind: UnknownFunction, Message: fmt.Sprintf("%s is not a function", name)}
}

func NewTypeError(message string) *EvalError {
	return &EvalError{Kind: TypeError, Message: message}
}

func NewArityError(expected, got int) *EvalError {
	return &EvalError{
		Kind:    IncorrectNumberOfArguments,
		Message: fmt.Sprintf("expected %d argument(s), got %d", expected, got),
	}
}

// NewOther wraps a domain error (engine construction, CSV parsing, signal
// resolution) with github.com/pkg/errors so the original cause survives
// for %+v-style debugging while the user only ever sees Message.
func NewOther(message string, cause error) *EvalError {
	if cause != nil {
		cause = errors.Wrap(cause, message)
	}
	return &EvalError{Kind: Other, Message: message, Cause: cause}
}

func NewIO(message string) *EvalError {
	return &EvalError{Kind: IO, Message: message}
}

// SyntaxError is raised (via panic, recovered at the parser's entry
// point) when the token stream does not conform to the grammar.
type SyntaxError struct {
	Message string
	Line    int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d: %s", e.Line, e.Message)
}

func NewSyntaxError(message string, line int) *SyntaxError {
	return &SyntaxError{Message: message, Line: line}
}
