package numfmt

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1.5, "1.5"},
		{2.0, "2"},
		{-0.75, "-0.75"},
		{0.0, "0"},
		{1.0 / 3.0, "0.333"},
		{-2.0, "-2"},
	}
	for _, c := range cases {
		if got := Format(c.in); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
