package f64_test

import (
	"math"
	"testing"

	"github.com/cda-tum/mmft-routing-block-channel-router/internal/f64"
)

func TestApproxEq(t *testing.T) {
	if !f64.ApproxEq(1.0, 1.0+1e-13, 1e-9) {
		t.Errorf("expected 1.0 and 1.0+1e-13 to compare approximately equal")
	}
	if f64.ApproxEq(1.0, 1.1, 1e-9) {
		t.Errorf("expected 1.0 and 1.1 to compare unequal")
	}
}

func TestMinMax(t *testing.T) {
	if got := f64.Min(3, 1, 2); got != 1 {
		t.Errorf("Min(3,1,2) = %f, expected 1", got)
	}
	if got := f64.Max(3, 1, 2); got != 3 {
		t.Errorf("Max(3,1,2) = %f, expected 3", got)
	}
	if got := f64.Max(-5); got != -5 {
		t.Errorf("Max(-5) = %f, expected -5", got)
	}
}

func TestHypot(t *testing.T) {
	if got := f64.Hypot(3, 4); got != 5 {
		t.Errorf("Hypot(3,4) = %f, expected 5", got)
	}
}

func TestCeilFloor(t *testing.T) {
	if got := f64.Ceil(1.2); got != 2 {
		t.Errorf("Ceil(1.2) = %f, expected 2", got)
	}
	if got := f64.Floor(1.8); got != 1 {
		t.Errorf("Floor(1.8) = %f, expected 1", got)
	}
}

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		in   float64
		prec int
		want string
	}{
		{1.5, 2, "1.5"},
		{1.0, 2, "1"},
		{0, 2, "0"},
		{math.Pi, 3, "3.142"},
	}

	for _, c := range cases {
		if got := f64.FormatFloat(c.in, c.prec); got != c.want {
			t.Errorf("FormatFloat(%v, %d) = %q, expected %q", c.in, c.prec, got, c.want)
		}
	}
}
