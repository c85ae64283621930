package engine

import "fmt"

// ArxModelStructure fixes the lag structure of an ARX (AutoRegressive
// with eXogenous input) model before identification: NA past outputs,
// NB past inputs, and an input delay of NK samples.
//
//	y[t] = a[0]*y[t-1] + ... + a[NA-1]*y[t-NA]
//	     + b[0]*u[t-NK] + ... + b[NB-1]*u[t-NK-NB+1]
type ArxModelStructure struct {
	NA int
	NB int
	NK int
}

func (s ArxModelStructure) numParams() int {
	return s.NA + s.NB
}

func (s ArxModelStructure) maximumDelay() int {
	if s.NB > 0 {
		d := s.NB + s.NK - 1
		if s.NA > d {
			return s.NA
		}
		return d
	}
	return s.NA
}

// buildRegressorRow assembles the regressor phi(t) used to predict
// y[t]: the NA preceding y samples followed by the NB preceding
// (delayed) u samples.
func (s ArxModelStructure) buildRegressorRow(y, u []float64, t int) []float64 {
	row := make([]float64, s.numParams())
	for i := 0; i < s.NA; i++ {
		row[i] = y[t-i-1]
	}
	for i := 0; i < s.NB; i++ {
		row[i+s.NA] = u[t-i-s.NK]
	}
	return row
}

func (s ArxModelStructure) toModel(theta []float64) *ArxModel {
	a := make([]float64, s.NA)
	copy(a, theta[:s.NA])
	b := make([]float64, s.NB)
	copy(b, theta[s.NA:])
	return &ArxModel{A: a, B: b, NK: s.NK}
}

// ArxModel is the result of ARX identification: the estimated
// autoregressive coefficients A and exogenous-input coefficients B,
// plus the input delay NK carried over from the fitted structure.
type ArxModel struct {
	A  []float64
	B  []float64
	NK int
}

// IdentifyARX estimates an ArxModel from an equal-length input/output
// sample pair by least squares: it builds the regressor matrix X from
// structure's lag pattern and solves the normal equations
// (X^T X) theta = X^T y for theta, then splits theta back into A and B.
//
// Returns an error if y and u differ in length, if there are fewer
// samples than the structure's maximum delay requires, if NA and NB
// are both zero, or if the normal equations are singular (e.g. the
// data is insufficiently persistent to excite every regressor).
func IdentifyARX(structure ArxModelStructure, y, u []float64) (*ArxModel, error) {
	if len(y) != len(u) {
		return nil, fmt.Errorf("arx: y has %d samples, u has %d", len(y), len(u))
	}
	delay := structure.maximumDelay()
	if len(y) < delay {
		return nil, fmt.Errorf("arx: need at least %d samples for this structure, got %d", delay, len(y))
	}
	numParams := structure.numParams()
	if numParams == 0 {
		return nil, fmt.Errorf("arx: structure has no parameters (NA and NB both zero)")
	}
	numSamples := len(y) - delay

	x := Zeros(numSamples, numParams)
	for i := 0; i < numSamples; i++ {
		row := structure.buildRegressorRow(y, u, i+delay)
		for c, v := range row {
			x.Set(i, c, v)
		}
	}

	xtx := Zeros(numParams, numParams)
	xty := make([]float64, numParams)
	for r := 0; r < numParams; r++ {
		for c := 0; c < numParams; c++ {
			sum := 0.0
			for i := 0; i < numSamples; i++ {
				sum += x.At(i, r) * x.At(i, c)
			}
			xtx.Set(r, c, sum)
		}
		sum := 0.0
		for i := 0; i < numSamples; i++ {
			sum += x.At(i, r) * y[i+delay]
		}
		xty[r] = sum
	}

	theta, ok := xtx.SolveLinear(xty)
	if !ok {
		return nil, fmt.Errorf("arx: normal equations are singular for this structure and data")
	}
	return structure.toModel(theta), nil
}
