package engine

import "fmt"

// StateSpace is a discrete MIMO linear state-space model:
//
//	x_{k+1} = A*x_k + B*u_k
//	y_k     = C*x_k + D*u_k
//
// n, m and r (state/input/output size) may each be zero. StateSpace is
// immutable once built.
type StateSpace struct {
	a, b, c, d *Matrix
	n, m, r    int
}

// NewStateSpace validates dimensional consistency across A, B, C, D and
// builds the model. Mismatched shapes are always a caller bug (the
// caller chose n, m, r), so this panics rather than returning an error.
func NewStateSpace(a, b, c, d *Matrix) *StateSpace {
	n := a.Rows()
	if a.Cols() != n {
		panic(fmt.Sprintf("engine: A must be square, got %dx%d", a.Rows(), a.Cols()))
	}
	if b.Rows() != n {
		panic(fmt.Sprintf("engine: B must have %d rows to match A, got %d", n, b.Rows()))
	}
	m := b.Cols()
	if c.Cols() != n {
		panic(fmt.Sprintf("engine: C must have %d cols to match A, got %d", n, c.Cols()))
	}
	r := c.Rows()
	if d.Rows() != r || d.Cols() != m {
		panic(fmt.Sprintf("engine: D must be %dx%d to match C/B, got %dx%d", r, m, d.Rows(), d.Cols()))
	}
	return &StateSpace{a: a, b: b, c: c, d: d, n: n, m: m, r: r}
}

func (ss *StateSpace) StateSize() int  { return ss.n }
func (ss *StateSpace) InputSize() int  { return ss.m }
func (ss *StateSpace) OutputSize() int { return ss.r }

func (ss *StateSpace) A() *Matrix { return ss.a }
func (ss *StateSpace) B() *Matrix { return ss.b }
func (ss *StateSpace) C() *Matrix { return ss.c }
func (ss *StateSpace) D() *Matrix { return ss.d }

// HasFeedthrough reports whether any entry of D is non-zero.
func (ss *StateSpace) HasFeedthrough() bool {
	return ss.d.HasNonZero()
}

// CalculateOutput writes C*state into out. Assumes no feedthrough; D is
// not consulted.
func (ss *StateSpace) CalculateOutput(state []float64, out []float64) {
	if ss.r == 0 {
		return
	}
	for i := range out {
		out[i] = 0
	}
	if ss.n == 0 {
		return
	}
	ss.c.AddInto(out, state)
}

// CalculateOutputWithFeedthrough writes C*state + D*input into out.
func (ss *StateSpace) CalculateOutputWithFeedthrough(input, state, out []float64) {
	if ss.r == 0 {
		return
	}
	for i := range out {
		out[i] = 0
	}
	if ss.n > 0 {
		ss.c.AddInto(out, state)
	}
	if ss.m > 0 {
		ss.d.AddInto(out, input)
	}
}

// UpdateState assigns A*state + B*input back into state in place.
func (ss *StateSpace) UpdateState(input, state []float64) {
	if ss.n == 0 {
		return
	}
	next := make([]float64, ss.n)
	ss.a.AddInto(next, state)
	if ss.m > 0 {
		ss.b.AddInto(next, input)
	}
	copy(state, next)
}
