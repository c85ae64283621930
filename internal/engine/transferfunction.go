package engine

import (
	"strconv"
	"strings"

	"ctrlplay/internal/numfmt"
)

// TransferFunction is a discrete SISO rational function in the unit
// delay operator z^-1:
//
//	(num[0] + num[1]*z^-1 + ... ) / (den[0] + den[1]*z^-1 + ...)
//
// Both coefficient slices always have the same length (the shorter one
// is zero-padded on construction). TransferFunction is immutable once
// built.
type TransferFunction struct {
	num []float64
	den []float64
}

// NewTransferFunction builds a TransferFunction from numerator and
// denominator coefficients. Returns false if either slice is empty;
// otherwise the shorter slice is padded with trailing zeros so both have
// equal length.
func NewTransferFunction(num, den []float64) (*TransferFunction, bool) {
	if len(num) == 0 || len(den) == 0 {
		return nil, false
	}
	n := len(num)
	if len(den) > n {
		n = len(den)
	}
	paddedNum := make([]float64, n)
	copy(paddedNum, num)
	paddedDen := make([]float64, n)
	copy(paddedDen, den)
	return &TransferFunction{num: paddedNum, den: paddedDen}, true
}

func (tf *TransferFunction) Num() []float64 { return append([]float64(nil), tf.num...) }
func (tf *TransferFunction) Den() []float64 { return append([]float64(nil), tf.den...) }

// ConvertToStateSpace builds the controllable-canonical realization of
// tf. Returns false if den[0] == 0.
func (tf *TransferFunction) ConvertToStateSpace() (*StateSpace, bool) {
	d0 := tf.den[0]
	if d0 == 0 {
		return nil, false
	}
	n0 := tf.num[0]
	order := len(tf.num) - 1

	if order == 0 {
		ss := &StateSpace{
			a: Zeros(0, 0),
			b: Zeros(0, 1),
			c: Zeros(1, 0),
			d: NewMatrix(1, 1, []float64{n0 / d0}),
			n: 0, m: 1, r: 1,
		}
		return ss, true
	}

	a := Zeros(order, order)
	for j := 0; j < order; j++ {
		a.Set(0, j, -tf.den[j+1]/d0)
	}
	for i := 1; i < order; i++ {
		a.Set(i, i-1, 1)
	}

	b := Zeros(order, 1)
	b.Set(0, 0, 1)

	c := Zeros(1, order)
	for j := 0; j < order; j++ {
		c.Set(0, j, tf.num[j+1]/d0-tf.den[j+1]*n0/(d0*d0))
	}

	d := NewMatrix(1, 1, []float64{n0 / d0})

	return &StateSpace{a: a, b: b, c: c, d: d, n: order, m: 1, r: 1}, true
}

// Display renders tf as a two-line "numerator over denominator" string,
// terminated with a trailing newline. The divider is omitted entirely
// when the denominator is the constant polynomial 1.
func (tf *TransferFunction) Display() string {
	numLine := formatPolynomial(tf.num)
	if isUnity(tf.den) {
		return numLine + "\n"
	}
	denLine := formatPolynomial(tf.den)
	width := len(numLine)
	if len(denLine) > width {
		width = len(denLine)
	}
	var b strings.Builder
	writeCentered(&b, numLine, width)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", width))
	b.WriteByte('\n')
	writeCentered(&b, denLine, width)
	b.WriteByte('\n')
	return b.String()
}

func isUnity(coeffs []float64) bool {
	if coeffs[0] != 1 {
		return false
	}
	for _, v := range coeffs[1:] {
		if v != 0 {
			return false
		}
	}
	return true
}

// writeCentered left-pads s so it appears centered over a divider bar of
// the given width; no trailing padding is written since nothing follows
// the shorter line on its own row.
func writeCentered(b *strings.Builder, s string, width int) {
	left := (width - len(s)) / 2
	if left > 0 {
		b.WriteString(strings.Repeat(" ", left))
	}
	b.WriteString(s)
}

// formatPolynomial renders coefficients (ordered constant-first, i.e.
// coeffs[k] is the z^-k term) as a signed sum, skipping zero terms and
// eliding a coefficient of 1 on non-constant terms. Renders "0" if every
// term is zero.
func formatPolynomial(coeffs []float64) string {
	var b strings.Builder
	wroteAny := false
	for k, v := range coeffs {
		if v == 0 {
			continue
		}
		neg := v < 0
		mag := v
		if neg {
			mag = -mag
		}
		var term string
		if k == 0 {
			term = numfmt.Format(mag)
		} else if mag == 1 {
			term = zTerm(k)
		} else {
			term = numfmt.Format(mag) + " " + zTerm(k)
		}

		if !wroteAny {
			if neg {
				b.WriteString("-")
			}
			b.WriteString(term)
			wroteAny = true
			continue
		}
		if neg {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}
		b.WriteString(term)
	}
	if !wroteAny {
		return "0"
	}
	return b.String()
}

func zTerm(k int) string {
	return "z^-" + strconv.Itoa(k)
}
