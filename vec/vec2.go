package vec

import (
	"fmt"

	"github.com/cda-tum/mmft-routing-block-channel-router/internal/f64"
)

// A 2D point or direction in board design units.
type Vec2 struct {
	X float64
	Y float64
}

// Returns the length of the vector v
func (v Vec2) Length() float64 {
	return f64.Hypot(v.X, v.Y)
}

// Vector addition a + b
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{
		X: a.X + b.X,
		Y: a.Y + b.Y,
	}
}

// Vector subtraction a - b
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{
		X: a.X - b.X,
		Y: a.Y - b.Y,
	}
}

// Multiplies both components of v by m
func (v Vec2) Mul(m float64) Vec2 {
	return Vec2{
		X: v.X * m,
		Y: v.Y * m,
	}
}

// Returns the component-wise minimum of a and b
func (a Vec2) Min(b Vec2) Vec2 {
	return Vec2{
		X: f64.Min(a.X, b.X),
		Y: f64.Min(a.Y, b.Y),
	}
}

// Returns the component-wise maximum of a and b
func (a Vec2) Max(b Vec2) Vec2 {
	return Vec2{
		X: f64.Max(a.X, b.X),
		Y: f64.Max(a.Y, b.Y),
	}
}

// Tests to see if a is approximately equal to b using a given tolerance
func (a Vec2) ApproxEq(b Vec2, eps float64) bool {
	if a == b {
		return true
	}

	return f64.ApproxEq(a.X, b.X, eps) && f64.ApproxEq(a.Y, b.Y, eps)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%s, %s)", f64.FormatFloat(v.X, 4), f64.FormatFloat(v.Y, 4))
}
