package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// BlockKind discriminates the three built-in block variants a compound
// system's components can wire together.
type BlockKind int

const (
	BlockTransferFunction BlockKind = iota
	BlockStateSpace
	BlockDifference
)

// Block is a tagged union over the block variants: a SISO transfer
// function, a MIMO state-space model, or the stateless two-input
// Difference primitive (a - b).
type Block struct {
	Kind BlockKind
	TF   *TransferFunction
	SS   *StateSpace
}

func TransferFunctionBlock(tf *TransferFunction) Block {
	return Block{Kind: BlockTransferFunction, TF: tf}
}

func StateSpaceBlock(ss *StateSpace) Block {
	return Block{Kind: BlockStateSpace, SS: ss}
}

func DifferenceBlock() Block {
	return Block{Kind: BlockDifference}
}

// differenceStateSpace is the fixed realization of the Difference
// primitive: stateless, two scalar inputs, D = [1, -1].
func differenceStateSpace() *StateSpace {
	return NewStateSpace(
		Zeros(0, 0),
		Zeros(0, 2),
		Zeros(1, 0),
		NewMatrix(1, 2, []float64{1, -1}),
	)
}

// SignalRef resolves either to the distinguished external input u, or to
// the output of an earlier component.
type SignalRef struct {
	IsSystemInput  bool
	ComponentIndex int
}

// Component is one wired block in a compound system: a block, the
// signal name bound to its output, and its ordered input references.
type Component struct {
	Block  Block
	Name   string
	Inputs []SignalRef
}

// CompoundSystem is an ordered, forward-reference-only wiring graph of
// components sharing named scalar/vector signals. Immutable once built.
type CompoundSystem struct {
	ID         uuid.UUID
	Components []Component
}

// ComponentDef is the pre-resolution form of a Component: the caller
// names its inputs, and Build resolves those names against the signals
// defined so far.
type ComponentDef struct {
	Block      Block
	Name       string
	InputNames []string
}

const systemInputName = "u"

// Build performs single-pass forward name resolution over defs, per the
// language's strict forward-reference discipline: a component may only
// read u or an earlier component's output.
func Build(defs []ComponentDef) (*CompoundSystem, error) {
	symtab := map[string]SignalRef{systemInputName: {IsSystemInput: true}}
	components := make([]Component, 0, len(defs))

	for i, def := range defs {
		if _, exists := symtab[def.Name]; exists {
			return nil, fmt.Errorf("duplicate name %s", def.Name)
		}

		inputs := make([]SignalRef, len(def.InputNames))
		for j, name := range def.InputNames {
			ref, ok := symtab[name]
			if !ok {
				return nil, fmt.Errorf("signal %s does not exist", name)
			}
			inputs[j] = ref
		}

		symtab[def.Name] = SignalRef{ComponentIndex: i}
		components = append(components, Component{Block: def.Block, Name: def.Name, Inputs: inputs})
	}

	return &CompoundSystem{ID: uuid.New(), Components: components}, nil
}
