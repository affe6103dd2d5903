package vec_test

import (
	"math"
	"testing"

	"github.com/cda-tum/mmft-routing-block-channel-router/vec"
)

func checkVec(t *testing.T, actual, expected vec.Vec2) {
	t.Helper()
	if !actual.ApproxEq(expected, 1e-12) {
		t.Errorf("expected %s, got %s", expected, actual)
	}
}

func TestVecLength(t *testing.T) {
	checkLen := func(v vec.Vec2, expected float64) {
		t.Helper()
		if got := v.Length(); math.Abs(got-expected) > 1e-12 {
			t.Errorf("Length of %s, expected %f, got %f", v, expected, got)
		}
	}

	checkLen(vec.Vec2{X: 0, Y: 0}, 0)
	checkLen(vec.Vec2{X: 3, Y: 4}, 5)
	checkLen(vec.Vec2{X: 1, Y: 1}, math.Sqrt2)
}

func TestVecAddSub(t *testing.T) {
	a := vec.Vec2{X: 1, Y: 2}
	b := vec.Vec2{X: 3, Y: -1}

	checkVec(t, a.Add(b), vec.Vec2{X: 4, Y: 1})
	checkVec(t, a.Sub(b), vec.Vec2{X: -2, Y: 3})
}

func TestVecMul(t *testing.T) {
	a := vec.Vec2{X: 2, Y: -3}
	checkVec(t, a.Mul(2), vec.Vec2{X: 4, Y: -6})
}

func TestVecMinMax(t *testing.T) {
	a := vec.Vec2{X: 1, Y: 5}
	b := vec.Vec2{X: 3, Y: 2}

	checkVec(t, a.Min(b), vec.Vec2{X: 1, Y: 2})
	checkVec(t, a.Max(b), vec.Vec2{X: 3, Y: 5})
}

func TestVecApproxEq(t *testing.T) {
	a := vec.Vec2{X: 1, Y: 1}
	b := vec.Vec2{X: 1 + 1e-13, Y: 1}
	if !a.ApproxEq(b, 1e-9) {
		t.Errorf("expected %s and %s to compare approximately equal", a, b)
	}
	if a.ApproxEq(vec.Vec2{X: 2, Y: 1}, 1e-9) {
		t.Errorf("expected %s and (2,1) to compare unequal", a)
	}
}
