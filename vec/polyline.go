package vec

import "math"

// Polyline is a list of points `{x1, x2, ..., xn}`
// that represents a series of lines:
//
//	{ {x1, x2}, {x2, x3}, ..., {xn-1, xn} }
//
// A polyline with less than 2 points is treated as
// a degenerate case. In this module a Polyline is always a channel: an
// ordered walk of cell centres.
type Polyline []Vec2

// Returns the result of adding x to all points in pl
func (pl Polyline) Add(x Vec2) Polyline {
	newLine := make([]Vec2, len(pl))

	for i := range pl {
		newLine[i] = pl[i].Add(x)
	}

	return newLine
}

// Returns the total length of the polyline
//
// Uses the Euclidean Metric L = sqrt(x^2 + y^2)
func (pl Polyline) Length() float64 {
	if len(pl) <= 1 {
		return 0
	}

	var total float64
	for i := 0; i < len(pl)-1; i++ {
		total += pl[i+1].Sub(pl[i]).Length()
	}

	return total
}

// Fix returns a new Polyline with invalid or degenerate
// lines removed
//
// Specifically, Fix removes segments with length zero and
// points that have a `NaN` component
func (pl Polyline) Fix() Polyline {
	if len(pl) == 0 {
		return pl
	}
	newLine := make([]Vec2, 0, len(pl))

	prevPoint := pl[0]

	for i := range pl {
		p := pl[i]
		if i == 0 || p != prevPoint {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				continue
			}

			newLine = append(newLine, p)
			prevPoint = p
		}
	}

	return newLine
}
