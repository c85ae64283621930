// Package value defines the evaluator's runtime value and output types:
// closed tagged variants, never an open interface{} hierarchy, per the
// engine's "tagged records over trait objects" convention.
package value

import (
	"ctrlplay/internal/engine"
)

// Kind discriminates the closed set of runtime value variants the
// evaluator can produce.
type Kind int

const (
	KindString Kind = iota
	KindFloat
	KindVector
	KindMatrix
	KindBuiltinFunction
	KindTransferFunction
	KindStateSpace
	KindCompoundSystem
	KindArxModel
)

// Value is a tagged union over every runtime value the language
// produces. Engine objects (TF, SS, CompoundSystem) are immutable
// after construction; Value holds a plain pointer to them rather than
// deep-copying, so assignment and reuse inside a system block alias
// the same underlying object.
type Value struct {
	Kind Kind

	Str string
	Num float64
	Vec []float64
	Mat *engine.Matrix

	// Builtin names the built-in function this value is bound to
	// (load, tf, tf2ss, step, arx); there is no user-defined function form.
	Builtin string

	TF       *engine.TransferFunction
	SS       *engine.StateSpace
	Compound *engine.CompoundSystem
	Arx      *engine.ArxModel
}

func String(s string) *Value  { return &Value{Kind: KindString, Str: s} }
func Float(f float64) *Value  { return &Value{Kind: KindFloat, Num: f} }
func Vector(v []float64) *Value { return &Value{Kind: KindVector, Vec: v} }
func Matrix(m *engine.Matrix) *Value { return &Value{Kind: KindMatrix, Mat: m} }
func BuiltinFunction(name string) *Value { return &Value{Kind: KindBuiltinFunction, Builtin: name} }
func TransferFunction(tf *engine.TransferFunction) *Value {
	return &Value{Kind: KindTransferFunction, TF: tf}
}
func StateSpaceModel(ss *engine.StateSpace) *Value {
	return &Value{Kind: KindStateSpace, SS: ss}
}
func CompoundSystem(cs *engine.CompoundSystem) *Value {
	return &Value{Kind: KindCompoundSystem, Compound: cs}
}
func ArxModel(m *engine.ArxModel) *Value {
	return &Value{Kind: KindArxModel, Arx: m}
}

// TypeName returns the human-readable name used in TypeError messages.
func (v *Value) TypeName() string {
	switch v.Kind {
	case KindString:
		return "String"
	case KindFloat:
		return "Float"
	case KindVector:
		return "Vector"
	case KindMatrix:
		return "Matrix"
	case KindBuiltinFunction:
		return "BuiltInFunction"
	case KindTransferFunction:
		return "TransferFunction"
	case KindStateSpace:
		return "StateSpaceModel"
	case KindCompoundSystem:
		return "CompoundSystem"
	case KindArxModel:
		return "ArxModel"
	default:
		return "Unknown"
	}
}
