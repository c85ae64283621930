package engine

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	// StepCount is the fixed simulation horizon: samples 0..StepCount
	// inclusive, StepCount+1 samples total.
	StepCount = 35
	// StepAmplitude is the constant unit-step input amplitude.
	StepAmplitude = 1.0
)

// OpKind discriminates the three kinds of scheduled operation a plan's
// step list can contain.
type OpKind int

const (
	OpCalculateOutput OpKind = iota
	OpCalculateOutputWithFeedthrough
	OpUpdateState
)

// ScheduleStep is one entry in a plan's linear, topology-ignorant
// schedule.
type ScheduleStep struct {
	Op        OpKind
	Component int
}

// InputBinding describes where a component's input values live in the
// flat signal buffer at execution time: either a contiguous slice (the
// common one-input case) or two individually indexed scalars, read in
// the order the user wrote them (the Difference a-b case).
type InputBinding struct {
	Indexed bool
	Start   int // used when !Indexed
	Len     int // used when !Indexed
	Indices []int // used when Indexed, always length 2
}

// ComponentPlan is the per-component slice of a Plan: its realized
// state-space block and its slot in the state and signal buffers.
type ComponentPlan struct {
	SS          *StateSpace
	StateStart  int
	StateLen    int
	OutputStart int
	OutputLen   int
	Input       InputBinding
}

// Plan is a compiled, ready-to-execute description of a compound
// system's simulation: a static schedule plus buffer layout.
type Plan struct {
	RunID       uuid.UUID
	Schedule    []ScheduleStep
	Components  []ComponentPlan
	OutputIndex int
	StateSize   int
	SignalSize  int
}

// PlanSimulation compiles sys into an execution Plan. Returns an error
// if any transfer-function block fails to convert to state space, if a
// component has an unsupported input arity, or if a two-input component
// is wired to a non-scalar signal.
func PlanSimulation(sys *CompoundSystem) (*Plan, error) {
	n := len(sys.Components)
	comps := make([]ComponentPlan, n)
	signalSize := 1 // slot 0 is reserved for u
	stateSize := 0

	for i, c := range sys.Components {
		ss, err := realize(c.Block)
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", c.Name, err)
		}

		input, err := bindInputs(c, comps, signalSize)
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", c.Name, err)
		}

		stateStart := stateSize
		stateSize += ss.StateSize()
		outStart := signalSize
		signalSize += ss.OutputSize()

		comps[i] = ComponentPlan{
			SS:          ss,
			StateStart:  stateStart,
			StateLen:    ss.StateSize(),
			OutputStart: outStart,
			OutputLen:   ss.OutputSize(),
			Input:       input,
		}
	}

	var schedule []ScheduleStep
	for i, cp := range comps {
		switch {
		case cp.SS.HasFeedthrough():
			schedule = append(schedule, ScheduleStep{Op: OpCalculateOutputWithFeedthrough, Component: i})
		case cp.OutputLen > 0:
			schedule = append(schedule, ScheduleStep{Op: OpCalculateOutput, Component: i})
		}
	}
	for i, cp := range comps {
		if cp.StateLen > 0 {
			schedule = append(schedule, ScheduleStep{Op: OpUpdateState, Component: i})
		}
	}

	outputIndex := 0
	if n > 0 {
		outputIndex = comps[n-1].OutputStart
	}

	return &Plan{
		RunID:       uuid.New(),
		Schedule:    schedule,
		Components:  comps,
		OutputIndex: outputIndex,
		StateSize:   stateSize,
		SignalSize:  signalSize,
	}, nil
}

func realize(b Block) (*StateSpace, error) {
	switch b.Kind {
	case BlockTransferFunction:
		ss, ok := b.TF.ConvertToStateSpace()
		if !ok {
			return nil, fmt.Errorf("could not convert to state space")
		}
		return ss, nil
	case BlockStateSpace:
		return b.SS, nil
	case BlockDifference:
		return differenceStateSpace(), nil
	default:
		return nil, fmt.Errorf("unknown block kind")
	}
}

// refSlot returns the [start, len) of a signal reference within the
// flat signal buffer, given the components planned so far (ref can only
// point at u or an earlier, already-planned component by construction).
func refSlot(ref SignalRef, comps []ComponentPlan) (int, int) {
	if ref.IsSystemInput {
		return 0, 1
	}
	cp := comps[ref.ComponentIndex]
	return cp.OutputStart, cp.OutputLen
}

func bindInputs(c Component, comps []ComponentPlan, _ int) (InputBinding, error) {
	switch len(c.Inputs) {
	case 1:
		start, length := refSlot(c.Inputs[0], comps)
		return InputBinding{Start: start, Len: length}, nil
	case 2:
		indices := make([]int, 2)
		for i, ref := range c.Inputs {
			start, length := refSlot(ref, comps)
			if length != 1 {
				return InputBinding{}, fmt.Errorf("two-input component requires scalar signals, got size %d", length)
			}
			indices[i] = start
		}
		return InputBinding{Indexed: true, Indices: indices}, nil
	default:
		return InputBinding{}, fmt.Errorf("unsupported input arity %d", len(c.Inputs))
	}
}

// gather returns a component's bound inputs. A contiguous binding is
// returned as a sub-slice of the signal buffer itself; an indexed
// binding is copied into scratch, which is reused when it is already
// large enough.
func gather(b InputBinding, signal []float64, scratch []float64) []float64 {
	if !b.Indexed {
		return signal[b.Start : b.Start+b.Len]
	}
	if cap(scratch) < len(b.Indices) {
		scratch = make([]float64, len(b.Indices))
	}
	scratch = scratch[:len(b.Indices)]
	for i, idx := range b.Indices {
		scratch[i] = signal[idx]
	}
	return scratch
}

// Execute runs the fixed-horizon unit-step response described by plan
// and returns a 1x(StepCount+1) row matrix of output samples.
func Execute(plan *Plan) *Matrix {
	signal := make([]float64, plan.SignalSize)
	state := make([]float64, plan.StateSize)
	scratch := make([]float64, 2)
	output := make([]float64, StepCount+1)

	for k := 0; k <= StepCount; k++ {
		signal[0] = StepAmplitude

		for _, step := range plan.Schedule {
			cp := plan.Components[step.Component]
			out := signal[cp.OutputStart : cp.OutputStart+cp.OutputLen]
			stateSlice := state[cp.StateStart : cp.StateStart+cp.StateLen]

			switch step.Op {
			case OpCalculateOutput:
				cp.SS.CalculateOutput(stateSlice, out)
			case OpCalculateOutputWithFeedthrough:
				in := gather(cp.Input, signal, scratch)
				cp.SS.CalculateOutputWithFeedthrough(in, stateSlice, out)
			case OpUpdateState:
				in := gather(cp.Input, signal, scratch)
				cp.SS.UpdateState(in, stateSlice)
			}
		}

		output[k] = signal[plan.OutputIndex]
	}

	return NewMatrix(1, StepCount+1, output)
}
