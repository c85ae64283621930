package value

import (
	"strconv"
	"strings"

	"ctrlplay/internal/engine"
	"ctrlplay/internal/errors"
	"ctrlplay/internal/numfmt"
)

// OutputKind discriminates the closed set of user-facing result
// variants an expression statement can project to.
type OutputKind int

const (
	OutputErr OutputKind = iota
	OutputText
	OutputPlot
	OutputSystemDiagram
)

// Output is the tagged result of one expression statement.
type Output struct {
	Kind OutputKind

	Err  *errors.EvalError
	Text string
	Plot *engine.Matrix
	Diagram *engine.CompoundSystem
}

func ErrOutput(err *errors.EvalError) *Output {
	return &Output{Kind: OutputErr, Err: err}
}

func TextOutput(s string) *Output {
	return &Output{Kind: OutputText, Text: s}
}

func PlotOutput(m *engine.Matrix) *Output {
	return &Output{Kind: OutputPlot, Plot: m}
}

func SystemDiagramOutput(cs *engine.CompoundSystem) *Output {
	return &Output{Kind: OutputSystemDiagram, Diagram: cs}
}

// ToOutput projects a runtime value to its fixed Output variant, per
// the variant-to-variant mapping: strings/floats/vectors render
// textually, matrices become plots, TF/SS render textually, compound
// systems become a diagram description.
func (v *Value) ToOutput() *Output {
	switch v.Kind {
	case KindString:
		return TextOutput(v.Str)
	case KindFloat:
		return TextOutput(numfmt.Format(v.Num))
	case KindVector:
		return TextOutput(formatVector(v.Vec))
	case KindMatrix:
		return PlotOutput(v.Mat)
	case KindBuiltinFunction:
		return TextOutput("<builtin " + v.Builtin + ">")
	case KindTransferFunction:
		return TextOutput(v.TF.Display())
	case KindStateSpace:
		return TextOutput(formatStateSpace(v.SS))
	case KindCompoundSystem:
		return SystemDiagramOutput(v.Compound)
	case KindArxModel:
		return TextOutput(formatArx(v.Arx))
	default:
		return TextOutput("")
	}
}

func formatArx(m *engine.ArxModel) string {
	var b strings.Builder
	b.WriteString("ArxModel(nk=" + strconv.Itoa(m.NK) + ")\n")
	b.WriteString("a: " + formatVector(m.A) + "\n")
	b.WriteString("b: " + formatVector(m.B) + "\n")
	return b.String()
}

func formatVector(vec []float64) string {
	parts := make([]string, len(vec))
	for i, f := range vec {
		parts[i] = numfmt.Format(f)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func formatMatrixRows(m *engine.Matrix) string {
	var b strings.Builder
	for r := 0; r < m.Rows(); r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(formatVector(m.Row(r)))
	}
	return b.String()
}

func formatStateSpace(ss *engine.StateSpace) string {
	var b strings.Builder
	b.WriteString("StateSpace(n=" + strconv.Itoa(ss.StateSize()) +
		", m=" + strconv.Itoa(ss.InputSize()) +
		", r=" + strconv.Itoa(ss.OutputSize()) + ")\n")
	b.WriteString("A:\n" + formatMatrixRows(ss.A()) + "\n")
	b.WriteString("B:\n" + formatMatrixRows(ss.B()) + "\n")
	b.WriteString("C:\n" + formatMatrixRows(ss.C()) + "\n")
	b.WriteString("D:\n" + formatMatrixRows(ss.D()) + "\n")
	return b.String()
}
