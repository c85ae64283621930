// Package numfmt renders a float the way the engine's polynomial display
// needs it: three decimal places, with trailing zeros and a dangling
// decimal point trimmed off.
package numfmt

import (
	"github.com/dustin/go-humanize"
)

// Format renders v with up to three decimal places, trimming trailing
// zeros (and the decimal point itself, if every fractional digit was
// zero). Format(1.5) == "1.5", Format(2.0) == "2", Format(-0.75) == "-0.75".
func Format(v float64) string {
	return humanize.FtoaWithDigits(v, 3)
}
