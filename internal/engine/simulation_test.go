package engine

import (
	"math"
	"testing"
)

// singleBlockSystem synthesises a trivial one-component compound system
// reading directly from u, mirroring how the step() builtin wraps a bare
// TF/SS block for simulation.
func singleBlockSystem(t *testing.T, b Block) *CompoundSystem {
	t.Helper()
	sys, err := Build([]ComponentDef{{Block: b, Name: "", InputNames: []string{"u"}}})
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	return sys
}

func TestExecuteGeometricStepResponseConverges(t *testing.T) {
	tf, _ := NewTransferFunction([]float64{1}, []float64{1, -0.5})
	sys := singleBlockSystem(t, TransferFunctionBlock(tf))

	plan, err := PlanSimulation(sys)
	if err != nil {
		t.Fatalf("unexpected plan error: %v", err)
	}
	out := Execute(plan)

	if out.Rows() != 1 || out.Cols() != StepCount+1 {
		t.Fatalf("expected 1x%d row, got %dx%d", StepCount+1, out.Rows(), out.Cols())
	}

	tol := 2 * math.Pow(0.5, 35)
	if got := out.At(0, StepCount); math.Abs(got-2.0) > tol {
		t.Fatalf("sample %d = %v, want within %v of 2.0", StepCount, got, tol)
	}
}

func TestExecuteFirstFourSamplesMatchScenarioOne(t *testing.T) {
	tf, _ := NewTransferFunction([]float64{1}, []float64{1, -0.5})
	sys := singleBlockSystem(t, TransferFunctionBlock(tf))

	plan, err := PlanSimulation(sys)
	if err != nil {
		t.Fatalf("unexpected plan error: %v", err)
	}
	out := Execute(plan)

	want := []float64{1, 1.5, 1.75, 1.875}
	for k, w := range want {
		if !closeTo(out.At(0, k), w, 1e-9) {
			t.Errorf("sample %d = %v, want %v", k, out.At(0, k), w)
		}
	}
}

func TestExecutePureGainIsConstantRow(t *testing.T) {
	tf, _ := NewTransferFunction([]float64{4}, []float64{1})
	sys := singleBlockSystem(t, TransferFunctionBlock(tf))

	plan, err := PlanSimulation(sys)
	if err != nil {
		t.Fatalf("unexpected plan error: %v", err)
	}
	out := Execute(plan)

	if out.Cols() != StepCount+1 {
		t.Fatalf("expected %d samples, got %d", StepCount+1, out.Cols())
	}
	for k := 0; k <= StepCount; k++ {
		if !closeTo(out.At(0, k), 4, 1e-12) {
			t.Errorf("sample %d = %v, want 4", k, out.At(0, k))
		}
	}
}

func TestExecuteIsDeterministic(t *testing.T) {
	tf, _ := NewTransferFunction([]float64{1, 0.25}, []float64{1, -0.3, 0.04})
	sys := singleBlockSystem(t, TransferFunctionBlock(tf))

	plan, err := PlanSimulation(sys)
	if err != nil {
		t.Fatalf("unexpected plan error: %v", err)
	}

	first := Execute(plan)
	second := Execute(plan)
	for k := 0; k <= StepCount; k++ {
		if first.At(0, k) != second.At(0, k) {
			t.Fatalf("sample %d differs between runs: %v vs %v", k, first.At(0, k), second.At(0, k))
		}
	}
}

func TestPlanSimulationRejectsZeroLeadDen(t *testing.T) {
	tf, _ := NewTransferFunction([]float64{1}, []float64{0, 1})
	sys := singleBlockSystem(t, TransferFunctionBlock(tf))

	if _, err := PlanSimulation(sys); err == nil {
		t.Fatal("expected planning to fail when a block cannot convert to state space")
	}
}

func TestBuildRejectsBackwardReference(t *testing.T) {
	// A feedback wire (e depends on y, y depends on e) cannot be expressed:
	// forward-reference-only resolution makes cycles unconstructible.
	plant, _ := NewTransferFunction([]float64{1}, []float64{1, -0.5})
	_, err := Build([]ComponentDef{
		{Block: DifferenceBlock(), Name: "e", InputNames: []string{"u", "y"}},
		{Block: TransferFunctionBlock(plant), Name: "y", InputNames: []string{"e"}},
	})
	if err == nil || err.Error() != "signal y does not exist" {
		t.Fatalf("expected backward reference to fail name resolution, got %v", err)
	}
}

func TestPlanSimulationDifferenceTwoInputComponent(t *testing.T) {
	plant, _ := NewTransferFunction([]float64{1}, []float64{1, -0.5})
	sys, err := Build([]ComponentDef{
		{Block: TransferFunctionBlock(plant), Name: "y", InputNames: []string{"u"}},
		{Block: DifferenceBlock(), Name: "e", InputNames: []string{"u", "y"}},
	})
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	plan, err := PlanSimulation(sys)
	if err != nil {
		t.Fatalf("unexpected plan error: %v", err)
	}
	out := Execute(plan)
	if out.Cols() != StepCount+1 {
		t.Fatalf("expected %d samples, got %d", StepCount+1, out.Cols())
	}
}
