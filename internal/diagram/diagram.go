// Package diagram renders a CompoundSystem as a textual block-diagram
// description, the plain-text stand-in for the SVG block-diagram the
// out-of-scope UI layer would draw from a SystemDiagram output.
package diagram

import (
	"strconv"
	"strings"

	"ctrlplay/internal/engine"
)

// Render produces a line-per-component description of cs: each line
// names the component's output signal, the block kind driving it, and
// the signals it reads from.
func Render(cs *engine.CompoundSystem) string {
	var b strings.Builder
	b.WriteString("system (" + strconv.Itoa(len(cs.Components)) + " components)\n")
	for i, c := range cs.Components {
		name := c.Name
		if name == "" {
			name = "(output)"
		}
		b.WriteString("  [" + strconv.Itoa(i) + "] " + name + " = " + blockLabel(c.Block) + "(")
		for j, in := range c.Inputs {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(signalLabel(in, cs))
		}
		b.WriteString(")\n")
	}
	return b.String()
}

func blockLabel(b engine.Block) string {
	switch b.Kind {
	case engine.BlockTransferFunction:
		return "TransferFunction"
	case engine.BlockStateSpace:
		return "StateSpace"
	case engine.BlockDifference:
		return "Difference"
	default:
		return "Block"
	}
}

func signalLabel(ref engine.SignalRef, cs *engine.CompoundSystem) string {
	if ref.IsSystemInput {
		return "u"
	}
	name := cs.Components[ref.ComponentIndex].Name
	if name == "" {
		return "(output " + strconv.Itoa(ref.ComponentIndex) + ")"
	}
	return name
}
