// Package gridgeom holds the pure geometry kernel of the router: port/cell
// mapping, 8-way neighbour enumeration with bounds checking, and the unit
// step costs used by the A* engine. None of it touches reservation state;
// it only knows about grid shape.
package gridgeom

import "github.com/cda-tum/mmft-routing-block-channel-router/internal/f64"

// GridPos is a cell index pair into the dense routing grid.
type GridPos struct {
	IX, IY int
}

// Index returns the row-major index of p into a grid with the given
// column count (cellsY), matching the dense []Cell layout used by Board.
func (p GridPos) Index(cellsY int) int {
	return p.IX*cellsY + p.IY
}

// Step is a single candidate neighbour: the position reached and the
// cost of moving there (1 for axis-aligned, sqrt(2) for diagonal).
type Step struct {
	Pos  GridPos
	Cost float64
}

const diagonalCost = 1.4142135623730951 // sqrt(2)

func left(p GridPos) (Step, bool) {
	if p.IX-1 < 0 {
		return Step{}, false
	}
	return Step{GridPos{p.IX - 1, p.IY}, 1}, true
}

func right(p GridPos, cellsX int) (Step, bool) {
	if p.IX+1 >= cellsX {
		return Step{}, false
	}
	return Step{GridPos{p.IX + 1, p.IY}, 1}, true
}

func up(p GridPos) (Step, bool) {
	if p.IY-1 < 0 {
		return Step{}, false
	}
	return Step{GridPos{p.IX, p.IY - 1}, 1}, true
}

func down(p GridPos, cellsY int) (Step, bool) {
	if p.IY+1 >= cellsY {
		return Step{}, false
	}
	return Step{GridPos{p.IX, p.IY + 1}, 1}, true
}

func leftUp(p GridPos) (Step, bool) {
	if p.IX-1 < 0 || p.IY-1 < 0 {
		return Step{}, false
	}
	return Step{GridPos{p.IX - 1, p.IY - 1}, diagonalCost}, true
}

func leftDown(p GridPos, cellsY int) (Step, bool) {
	if p.IX-1 < 0 || p.IY+1 >= cellsY {
		return Step{}, false
	}
	return Step{GridPos{p.IX - 1, p.IY + 1}, diagonalCost}, true
}

func rightUp(p GridPos, cellsX int) (Step, bool) {
	if p.IX+1 >= cellsX || p.IY-1 < 0 {
		return Step{}, false
	}
	return Step{GridPos{p.IX + 1, p.IY - 1}, diagonalCost}, true
}

func rightDown(p GridPos, cellsX, cellsY int) (Step, bool) {
	if p.IX+1 >= cellsX || p.IY+1 >= cellsY {
		return Step{}, false
	}
	return Step{GridPos{p.IX + 1, p.IY + 1}, diagonalCost}, true
}

// Left, Right, Up, Down, LeftUp, LeftDown, RightUp, RightDown are exported
// so that the layout-specific successor functions in the router package can
// build the exact same per-direction candidate sets as the geometry kernel,
// without duplicating the bounds-check logic.
func Left(p GridPos) (Step, bool)                       { return left(p) }
func Right(p GridPos, cellsX int) (Step, bool)           { return right(p, cellsX) }
func Up(p GridPos) (Step, bool)                          { return up(p) }
func Down(p GridPos, cellsY int) (Step, bool)            { return down(p, cellsY) }
func LeftUp(p GridPos) (Step, bool)                      { return leftUp(p) }
func LeftDown(p GridPos, cellsY int) (Step, bool)        { return leftDown(p, cellsY) }
func RightUp(p GridPos, cellsX int) (Step, bool)         { return rightUp(p, cellsX) }
func RightDown(p GridPos, cellsX, cellsY int) (Step, bool) {
	return rightDown(p, cellsX, cellsY)
}

// Neighbours8 returns every in-bounds neighbour of p, in a fixed order
// (right, up, left, down, right-up, left-up, left-down, right-down).
func Neighbours8(p GridPos, cellsX, cellsY int) []Step {
	candidates := [8]struct {
		s  Step
		ok bool
	}{}
	candidates[0].s, candidates[0].ok = right(p, cellsX)
	candidates[1].s, candidates[1].ok = up(p)
	candidates[2].s, candidates[2].ok = left(p)
	candidates[3].s, candidates[3].ok = down(p, cellsY)
	candidates[4].s, candidates[4].ok = rightUp(p, cellsX)
	candidates[5].s, candidates[5].ok = leftUp(p)
	candidates[6].s, candidates[6].ok = leftDown(p, cellsY)
	candidates[7].s, candidates[7].ok = rightDown(p, cellsX, cellsY)

	out := make([]Step, 0, 8)
	for _, c := range candidates {
		if c.ok {
			out = append(out, c.s)
		}
	}
	return out
}

// PortsPerAxis implements the port-count contract:
//
//	ports_axis = floor((board_axis - 2*pitch_offset_axis) / pitch) + 1
func PortsPerAxis(boardAxis, pitchOffsetAxis, pitch float64) int {
	return int(f64.Floor((boardAxis-2*pitchOffsetAxis)/pitch)) + 1
}

// CellsPerPitch implements cells_per_pitch = floor(pitch / (channel_width + channel_spacing)).
func CellsPerPitch(pitch, channelWidth, channelSpacing float64) int {
	return int(f64.Floor(pitch / (channelWidth + channelSpacing)))
}

// PortCell maps a port index (px, py) to its home grid cell, given the
// number of routing cells per pitch period and the pre-margin (in cells)
// computed by the grid sizing step. Home cell sits at the integer-division
// midpoint of its pitch period, shifted by the margin.
func PortCell(px, py, cellsPerPitch, preMarginX, preMarginY int) GridPos {
	return GridPos{
		IX: cellsPerPitch/2 + cellsPerPitch*px + preMarginX,
		IY: cellsPerPitch/2 + cellsPerPitch*py + preMarginY,
	}
}

// EuclideanCellDistance is the straight-line distance between two cells,
// measured in cell units — used both as the A* heuristic and as the
// task-ordering distance key.
func EuclideanCellDistance(a, b GridPos) float64 {
	dx := a.IX - b.IX
	if dx < 0 {
		dx = -dx
	}
	dy := a.IY - b.IY
	if dy < 0 {
		dy = -dy
	}
	return f64.Hypot(float64(dx), float64(dy))
}
