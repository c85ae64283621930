package engine

import "testing"

func TestHasFeedthrough(t *testing.T) {
	zeroD := NewStateSpace(Zeros(1, 1), Zeros(1, 1), Zeros(1, 1), Zeros(1, 1))
	if zeroD.HasFeedthrough() {
		t.Error("expected no feedthrough for zero D")
	}

	nonzeroD := NewStateSpace(Zeros(1, 1), Zeros(1, 1), Zeros(1, 1), NewMatrix(1, 1, []float64{0.5}))
	if !nonzeroD.HasFeedthrough() {
		t.Error("expected feedthrough for nonzero D")
	}
}

func TestUpdateStateAndCalculateOutput(t *testing.T) {
	// x_{k+1} = 2x_k + u_k ; y_k = 3x_k (no feedthrough)
	ss := NewStateSpace(
		NewMatrix(1, 1, []float64{2}),
		NewMatrix(1, 1, []float64{1}),
		NewMatrix(1, 1, []float64{3}),
		Zeros(1, 1),
	)
	state := []float64{1}
	out := make([]float64, 1)

	ss.CalculateOutput(state, out)
	if out[0] != 3 {
		t.Fatalf("expected y=3, got %v", out[0])
	}

	ss.UpdateState([]float64{1}, state)
	if state[0] != 3 {
		t.Fatalf("expected next state 2*1+1=3, got %v", state[0])
	}
}

func TestCalculateOutputWithFeedthrough(t *testing.T) {
	ss := NewStateSpace(
		Zeros(0, 0),
		Zeros(0, 1),
		Zeros(1, 0),
		NewMatrix(1, 1, []float64{5}),
	)
	out := make([]float64, 1)
	ss.CalculateOutputWithFeedthrough([]float64{2}, nil, out)
	if out[0] != 10 {
		t.Fatalf("expected y=10, got %v", out[0])
	}
}

func TestDifferenceStateSpace(t *testing.T) {
	diff := differenceStateSpace()
	if diff.StateSize() != 0 || diff.InputSize() != 2 || diff.OutputSize() != 1 {
		t.Fatalf("unexpected shape: n=%d m=%d r=%d", diff.StateSize(), diff.InputSize(), diff.OutputSize())
	}
	if !diff.HasFeedthrough() {
		t.Fatal("expected Difference to have feedthrough")
	}
	out := make([]float64, 1)
	diff.CalculateOutputWithFeedthrough([]float64{7, 3}, nil, out)
	if out[0] != 4 {
		t.Fatalf("expected 7-3=4, got %v", out[0])
	}
}
