package eval

import (
	"fmt"

	"ctrlplay/internal/engine"
	"ctrlplay/internal/errors"
	"ctrlplay/internal/numfmt"
	"ctrlplay/internal/value"
)

func (e *Evaluator) callBuiltin(name string, args []*value.Value) (*value.Value, *errors.EvalError) {
	switch name {
	case "load":
		return e.builtinLoad(args)
	case "tf":
		return builtinTF(args)
	case "tf2ss":
		return builtinTF2SS(args)
	case "step":
		return builtinStep(args)
	case "arx":
		return builtinARX(args)
	default:
		return nil, errors.NewUnknownFunction(name)
	}
}

func (e *Evaluator) builtinLoad(args []*value.Value) (*value.Value, *errors.EvalError) {
	if len(args) != 1 {
		return nil, errors.NewArityError(1, len(args))
	}
	if args[0].Kind != value.KindString {
		return nil, errors.NewTypeError("load expects a String path, got " + args[0].TypeName())
	}
	path := args[0].Str

	text, ok := e.Host.ReadFile(path)
	if !ok {
		return nil, errors.NewOther(fmt.Sprintf("file %s could not be read", path), nil)
	}

	mat, err := parseCSV(text)
	if err != nil {
		return nil, errors.NewOther(err.Error(), err)
	}
	return value.Matrix(mat), nil
}

func builtinTF(args []*value.Value) (*value.Value, *errors.EvalError) {
	if len(args) != 2 {
		return nil, errors.NewArityError(2, len(args))
	}
	if args[0].Kind != value.KindVector || args[1].Kind != value.KindVector {
		return nil, errors.NewTypeError("tf expects two Vector arguments")
	}
	tf, ok := engine.NewTransferFunction(args[0].Vec, args[1].Vec)
	if !ok {
		return nil, errors.NewOther("could not construct transfer function: num and den must be non-empty", nil)
	}
	return value.TransferFunction(tf), nil
}

func builtinTF2SS(args []*value.Value) (*value.Value, *errors.EvalError) {
	if len(args) != 1 {
		return nil, errors.NewArityError(1, len(args))
	}
	if args[0].Kind != value.KindTransferFunction {
		return nil, errors.NewTypeError("tf2ss expects a TransferFunction, got " + args[0].TypeName())
	}
	ss, ok := args[0].TF.ConvertToStateSpace()
	if !ok {
		return nil, errors.NewOther("could not convert to state space", nil)
	}
	return value.StateSpaceModel(ss), nil
}

func builtinStep(args []*value.Value) (*value.Value, *errors.EvalError) {
	if len(args) != 1 {
		return nil, errors.NewArityError(1, len(args))
	}

	var cs *engine.CompoundSystem
	switch args[0].Kind {
	case value.KindTransferFunction:
		built, err := engine.Build([]engine.ComponentDef{
			{Block: engine.TransferFunctionBlock(args[0].TF), Name: "", InputNames: []string{"u"}},
		})
		if err != nil {
			return nil, errors.NewOther(err.Error(), err)
		}
		cs = built
	case value.KindStateSpace:
		built, err := engine.Build([]engine.ComponentDef{
			{Block: engine.StateSpaceBlock(args[0].SS), Name: "", InputNames: []string{"u"}},
		})
		if err != nil {
			return nil, errors.NewOther(err.Error(), err)
		}
		cs = built
	case value.KindCompoundSystem:
		cs = args[0].Compound
	default:
		return nil, errors.NewTypeError("step expects a TransferFunction, StateSpaceModel, or CompoundSystem, got " + args[0].TypeName())
	}

	plan, err := engine.PlanSimulation(cs)
	if err != nil {
		return nil, errors.NewOther(err.Error(), err)
	}
	return value.Matrix(engine.Execute(plan)), nil
}

// builtinARX identifies an ARX model from sampled output/input vectors:
// arx(y, u, na, nb, nk). na/nb/nk are Floats carrying non-negative
// integer lag counts, since the language has no separate integer type.
func builtinARX(args []*value.Value) (*value.Value, *errors.EvalError) {
	if len(args) != 5 {
		return nil, errors.NewArityError(5, len(args))
	}
	if args[0].Kind != value.KindVector || args[1].Kind != value.KindVector {
		return nil, errors.NewTypeError("arx expects y and u to be Vectors")
	}
	na, err := lagCount(args[2], "na")
	if err != nil {
		return nil, err
	}
	nb, err := lagCount(args[3], "nb")
	if err != nil {
		return nil, err
	}
	nk, err := lagCount(args[4], "nk")
	if err != nil {
		return nil, err
	}

	structure := engine.ArxModelStructure{NA: na, NB: nb, NK: nk}
	model, identErr := engine.IdentifyARX(structure, args[0].Vec, args[1].Vec)
	if identErr != nil {
		return nil, errors.NewOther(identErr.Error(), identErr)
	}
	return value.ArxModel(model), nil
}

// lagCount validates that v is a Float holding a non-negative integer,
// as required for na/nb/nk lag counts.
func lagCount(v *value.Value, name string) (int, *errors.EvalError) {
	if v.Kind != value.KindFloat {
		return 0, errors.NewTypeError(name + " must be a Float, got " + v.TypeName())
	}
	n := v.Num
	if n < 0 || n != float64(int(n)) {
		return 0, errors.NewTypeError(name + " must be a non-negative integer, got " + numfmt.Format(n))
	}
	return int(n), nil
}
