package engine

import (
	"math"
	"testing"
)

func closeTo(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNewTransferFunctionPadsShorterSide(t *testing.T) {
	tf, ok := NewTransferFunction([]float64{2}, []float64{1, -0.5})
	if !ok {
		t.Fatal("expected ok")
	}
	if len(tf.Num()) != 2 || len(tf.Den()) != 2 {
		t.Fatalf("expected padded length 2, got num=%v den=%v", tf.Num(), tf.Den())
	}
	if tf.Num()[1] != 0 {
		t.Fatalf("expected zero padding, got %v", tf.Num())
	}
}

func TestNewTransferFunctionRejectsEmpty(t *testing.T) {
	if _, ok := NewTransferFunction(nil, []float64{1}); ok {
		t.Fatal("expected construction to fail on empty num")
	}
	if _, ok := NewTransferFunction([]float64{1}, nil); ok {
		t.Fatal("expected construction to fail on empty den")
	}
}

func TestConvertToStateSpacePureGain(t *testing.T) {
	tf, _ := NewTransferFunction([]float64{2}, []float64{3})
	ss, ok := tf.ConvertToStateSpace()
	if !ok {
		t.Fatal("expected conversion to succeed")
	}
	if ss.StateSize() != 0 {
		t.Fatalf("expected zero state size, got %d", ss.StateSize())
	}
	if !closeTo(ss.d.At(0, 0), 2.0/3.0, 1e-12) {
		t.Fatalf("expected D=2/3, got %v", ss.d.At(0, 0))
	}
}

func TestConvertToStateSpaceRejectsZeroLeadDen(t *testing.T) {
	tf, _ := NewTransferFunction([]float64{1}, []float64{0, 1})
	if _, ok := tf.ConvertToStateSpace(); ok {
		t.Fatal("expected conversion to fail when den[0] == 0")
	}
}

func TestConvertToStateSpaceControllableCanonical(t *testing.T) {
	tf, _ := NewTransferFunction([]float64{1, 1.5, 2}, []float64{1.5, 0.5, 0.75})
	ss, ok := tf.ConvertToStateSpace()
	if !ok {
		t.Fatal("expected conversion to succeed")
	}

	wantA := [][]float64{{-1.0 / 3.0, -0.5}, {1, 0}}
	for i := range wantA {
		for j := range wantA[i] {
			if !closeTo(ss.a.At(i, j), wantA[i][j], 1e-12) {
				t.Errorf("A[%d][%d] = %v, want %v", i, j, ss.a.At(i, j), wantA[i][j])
			}
		}
	}
	if !closeTo(ss.b.At(0, 0), 1, 1e-12) || !closeTo(ss.b.At(1, 0), 0, 1e-12) {
		t.Errorf("B = [%v %v], want [1 0]", ss.b.At(0, 0), ss.b.At(1, 0))
	}
	if !closeTo(ss.c.At(0, 0), 7.0/9.0, 1e-12) || !closeTo(ss.c.At(0, 1), 1, 1e-12) {
		t.Errorf("C = [%v %v], want [7/9 1]", ss.c.At(0, 0), ss.c.At(0, 1))
	}
	if !closeTo(ss.d.At(0, 0), 2.0/3.0, 1e-12) {
		t.Errorf("D = %v, want 2/3", ss.d.At(0, 0))
	}
}

func TestConvertToStateSpaceImpulseResponseMatchesPolynomialDivision(t *testing.T) {
	num := []float64{1, -1, 0.5}
	den := []float64{2, 0.3, -0.1}
	tf, _ := NewTransferFunction(num, den)
	ss, ok := tf.ConvertToStateSpace()
	if !ok {
		t.Fatal("expected conversion to succeed")
	}

	n := len(num)
	direct := directImpulseResponse(num, den, n)

	state := make([]float64, ss.StateSize())
	out := make([]float64, 1)
	for k := 0; k < n; k++ {
		u := 0.0
		if k == 0 {
			u = 1.0
		}
		input := []float64{u}
		ss.CalculateOutputWithFeedthrough(input, state, out)
		if !closeTo(out[0], direct[k], 1e-9*math.Max(1, math.Abs(direct[k]))) {
			t.Errorf("sample %d: got %v, want %v", k, out[0], direct[k])
		}
		ss.UpdateState(input, state)
	}
}

// directImpulseResponse computes the first n samples of num/den by the
// standard power-series division recurrence in z^-1, the textbook
// reference the controllable-canonical realization is checked against:
//
//	c[k] = (num[k] - sum_{i=1}^{k} den[i]*c[k-i]) / den[0]
func directImpulseResponse(num, den []float64, n int) []float64 {
	numAt := func(k int) float64 {
		if k < len(num) {
			return num[k]
		}
		return 0
	}
	c := make([]float64, n)
	for k := 0; k < n; k++ {
		acc := numAt(k)
		for i := 1; i < len(den) && i <= k; i++ {
			acc -= den[i] * c[k-i]
		}
		c[k] = acc / den[0]
	}
	return c
}

func TestDisplayRoundTrip(t *testing.T) {
	tf, _ := NewTransferFunction([]float64{-1, 1.5, -2}, []float64{1.5, 0.5, 0.75})
	want := "  -1 + 1.5 z^-1 - 2 z^-2\n--------------------------\n1.5 + 0.5 z^-1 + 0.75 z^-2\n"
	if got := tf.Display(); got != want {
		t.Errorf("Display() =\n%q\nwant\n%q", got, want)
	}
}

func TestDisplaySuppressesUnityDenominator(t *testing.T) {
	tf, _ := NewTransferFunction([]float64{1, 2}, []float64{1})
	want := "1 + 2 z^-1\n"
	if got := tf.Display(); got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
}

func TestDisplayAllZeroIsZero(t *testing.T) {
	tf, _ := NewTransferFunction([]float64{0, 0}, []float64{1})
	if got := tf.Display(); got != "0\n" {
		t.Errorf("Display() = %q, want %q", got, "0\n")
	}
}
