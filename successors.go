package router

import (
	"github.com/cda-tum/mmft-routing-block-channel-router/internal/astar"
	"github.com/cda-tum/mmft-routing-block-channel-router/internal/gridgeom"
)

// searchNode is the direction-aware node identity fed to the A* engine: a
// cell plus the cell it was reached from (absent at a start node). This is
// what lets the successor function below restrict turns based on the
// incoming direction without creating phantom cycles (§4.2/§9).
type searchNode struct {
	Cell    gridgeom.GridPos
	Prev    gridgeom.GridPos
	HasPrev bool
}

// candidateSet returns the raw (unfiltered by reservation state) set of
// neighbour steps permitted by layout, given the incoming direction. It
// mirrors the original router's per-direction switch exactly: Rectilinear
// always offers the 3 non-opposite axis neighbours; Octilinear offers the
// 3 neighbours at 0 and +-45 degrees from the incoming direction (not the
// spec table's nominal +-90, see DESIGN.md for the reconciliation); Mixed
// offers 5 neighbours, axis plus both forward diagonals.
func candidateSet(layout Layout, n gridgeom.GridPos, hasPrev bool, prev gridgeom.GridPos, cellsX, cellsY int) []gridgeom.Step {
	switch layout {
	case Rectilinear:
		return rectilinearCandidates(n, hasPrev, prev, cellsX, cellsY)
	case Octilinear:
		return octilinearCandidates(n, hasPrev, prev, cellsX, cellsY)
	default:
		return mixedCandidates(n, hasPrev, prev, cellsX, cellsY)
	}
}

func appendOK(dst []gridgeom.Step, s gridgeom.Step, ok bool) []gridgeom.Step {
	if ok {
		return append(dst, s)
	}
	return dst
}

func rectilinearCandidates(n gridgeom.GridPos, hasPrev bool, prev gridgeom.GridPos, cellsX, cellsY int) []gridgeom.Step {
	out := make([]gridgeom.Step, 0, 4)

	if !hasPrev {
		out = appendOK(out, down(n, cellsY))
		out = appendOK(out, up(n))
		out = appendOK(out, left(n))
		out = appendOK(out, right(n, cellsX))
		return out
	}

	switch {
	case prev.IX < n.IX:
		out = appendOK(out, up(n))
		out = appendOK(out, down(n, cellsY))
		out = appendOK(out, right(n, cellsX))
	case prev.IX > n.IX:
		out = appendOK(out, up(n))
		out = appendOK(out, down(n, cellsY))
		out = appendOK(out, left(n))
	case prev.IY < n.IY:
		out = appendOK(out, down(n, cellsY))
		out = appendOK(out, left(n))
		out = appendOK(out, right(n, cellsX))
	case prev.IY > n.IY:
		out = appendOK(out, up(n))
		out = appendOK(out, left(n))
		out = appendOK(out, right(n, cellsX))
	default:
		panic("router: successor reached with previous == current")
	}

	return out
}

func octilinearCandidates(n gridgeom.GridPos, hasPrev bool, prev gridgeom.GridPos, cellsX, cellsY int) []gridgeom.Step {
	out := make([]gridgeom.Step, 0, 8)

	if !hasPrev {
		out = appendOK(out, down(n, cellsY))
		out = appendOK(out, leftDown(n, cellsY))
		out = appendOK(out, rightDown(n, cellsX, cellsY))
		out = appendOK(out, up(n))
		out = appendOK(out, leftUp(n))
		out = appendOK(out, rightUp(n, cellsX))
		out = appendOK(out, left(n))
		out = appendOK(out, right(n, cellsX))
		return out
	}

	switch {
	case prev.IX < n.IX:
		switch {
		case prev.IY < n.IY:
			out = appendOK(out, down(n, cellsY))
			out = appendOK(out, rightDown(n, cellsX, cellsY))
			out = appendOK(out, right(n, cellsX))
		case prev.IY > n.IY:
			out = appendOK(out, up(n))
			out = appendOK(out, rightUp(n, cellsX))
			out = appendOK(out, right(n, cellsX))
		default:
			out = appendOK(out, rightUp(n, cellsX))
			out = appendOK(out, rightDown(n, cellsX, cellsY))
			out = appendOK(out, right(n, cellsX))
		}
	case prev.IX > n.IX:
		switch {
		case prev.IY < n.IY:
			out = appendOK(out, down(n, cellsY))
			out = appendOK(out, leftDown(n, cellsY))
			out = appendOK(out, left(n))
		case prev.IY > n.IY:
			out = appendOK(out, up(n))
			out = appendOK(out, leftUp(n))
			out = appendOK(out, left(n))
		default:
			out = appendOK(out, leftUp(n))
			out = appendOK(out, leftDown(n, cellsY))
			out = appendOK(out, left(n))
		}
	case prev.IY < n.IY:
		out = appendOK(out, down(n, cellsY))
		out = appendOK(out, leftDown(n, cellsY))
		out = appendOK(out, rightDown(n, cellsX, cellsY))
	case prev.IY > n.IY:
		out = appendOK(out, up(n))
		out = appendOK(out, leftUp(n))
		out = appendOK(out, rightUp(n, cellsX))
	default:
		panic("router: successor reached with previous == current")
	}

	return out
}

// mixedCandidates implements the spec's authoritative Mixed table (axis
// aligned plus both forward diagonals, 5 candidates), not the stale,
// never-exercised closure in the original source (see DESIGN.md).
func mixedCandidates(n gridgeom.GridPos, hasPrev bool, prev gridgeom.GridPos, cellsX, cellsY int) []gridgeom.Step {
	out := make([]gridgeom.Step, 0, 8)

	if !hasPrev {
		out = appendOK(out, down(n, cellsY))
		out = appendOK(out, leftDown(n, cellsY))
		out = appendOK(out, rightDown(n, cellsX, cellsY))
		out = appendOK(out, up(n))
		out = appendOK(out, leftUp(n))
		out = appendOK(out, rightUp(n, cellsX))
		out = appendOK(out, left(n))
		out = appendOK(out, right(n, cellsX))
		return out
	}

	switch {
	case prev.IX < n.IX:
		switch {
		case prev.IY < n.IY:
			out = appendOK(out, down(n, cellsY))
			out = appendOK(out, rightDown(n, cellsX, cellsY))
			out = appendOK(out, right(n, cellsX))
			out = appendOK(out, rightUp(n, cellsX))
			out = appendOK(out, leftDown(n, cellsY))
		case prev.IY > n.IY:
			out = appendOK(out, up(n))
			out = appendOK(out, rightUp(n, cellsX))
			out = appendOK(out, right(n, cellsX))
			out = appendOK(out, rightDown(n, cellsX, cellsY))
			out = appendOK(out, leftUp(n))
		default:
			out = appendOK(out, rightUp(n, cellsX))
			out = appendOK(out, rightDown(n, cellsX, cellsY))
			out = appendOK(out, right(n, cellsX))
			out = appendOK(out, up(n))
			out = appendOK(out, down(n, cellsY))
		}
	case prev.IX > n.IX:
		switch {
		case prev.IY < n.IY:
			out = appendOK(out, down(n, cellsY))
			out = appendOK(out, leftDown(n, cellsY))
			out = appendOK(out, left(n))
			out = appendOK(out, leftUp(n))
			out = appendOK(out, rightDown(n, cellsX, cellsY))
		case prev.IY > n.IY:
			out = appendOK(out, up(n))
			out = appendOK(out, leftUp(n))
			out = appendOK(out, left(n))
			out = appendOK(out, rightUp(n, cellsX))
			out = appendOK(out, leftDown(n, cellsY))
		default:
			out = appendOK(out, leftUp(n))
			out = appendOK(out, leftDown(n, cellsY))
			out = appendOK(out, left(n))
			out = appendOK(out, up(n))
			out = appendOK(out, down(n, cellsY))
		}
	case prev.IY < n.IY:
		out = appendOK(out, down(n, cellsY))
		out = appendOK(out, leftDown(n, cellsY))
		out = appendOK(out, rightDown(n, cellsX, cellsY))
		out = appendOK(out, left(n))
		out = appendOK(out, right(n, cellsX))
	case prev.IY > n.IY:
		out = appendOK(out, up(n))
		out = appendOK(out, leftUp(n))
		out = appendOK(out, rightUp(n, cellsX))
		out = appendOK(out, left(n))
		out = appendOK(out, right(n, cellsX))
	default:
		panic("router: successor reached with previous == current")
	}

	return out
}

func left(p gridgeom.GridPos) (gridgeom.Step, bool)      { return gridgeom.Left(p) }
func right(p gridgeom.GridPos, x int) (gridgeom.Step, bool) { return gridgeom.Right(p, x) }
func up(p gridgeom.GridPos) (gridgeom.Step, bool)        { return gridgeom.Up(p) }
func down(p gridgeom.GridPos, y int) (gridgeom.Step, bool)  { return gridgeom.Down(p, y) }
func leftUp(p gridgeom.GridPos) (gridgeom.Step, bool)    { return gridgeom.LeftUp(p) }
func leftDown(p gridgeom.GridPos, y int) (gridgeom.Step, bool) { return gridgeom.LeftDown(p, y) }
func rightUp(p gridgeom.GridPos, x int) (gridgeom.Step, bool)  { return gridgeom.RightUp(p, x) }
func rightDown(p gridgeom.GridPos, x, y int) (gridgeom.Step, bool) {
	return gridgeom.RightDown(p, x, y)
}

// makeSuccessors builds the admissibility-checked successor function for
// one routing task, implementing the per-candidate rules of §4.6 plus the
// joint corner-cut exception of §4.7.
func makeSuccessors(board *Board, layout Layout, netID NetID) func(searchNode) []astar.Edge[searchNode] {
	return func(sn searchNode) []astar.Edge[searchNode] {
		raw := candidateSet(layout, sn.Cell, sn.HasPrev, sn.Prev, board.CellsX, board.CellsY)

		out := make([]astar.Edge[searchNode], 0, len(raw))
		for _, step := range raw {
			target := board.At(step.Pos.IX, step.Pos.IY)

			if conn, ok := target.Connection.Get(); ok && conn != netID {
				continue
			}
			if mc, ok := target.MultiConnection.Get(); ok && mc != netID {
				continue
			}
			if target.Blocked {
				continue
			}

			if sn.Cell.IX != step.Pos.IX && sn.Cell.IY != step.Pos.IY {
				if !diagonalCornersClear(board, sn.Cell, step.Pos, netID) {
					continue
				}
			}

			out = append(out, astar.Edge[searchNode]{
				Node: searchNode{Cell: step.Pos, Prev: sn.Cell, HasPrev: true},
				Cost: step.Cost,
			})
		}

		return out
	}
}

// diagonalCornersClear implements the corner-cut check of §4.6 rule 4 and
// the joint exception of §4.7: a corner cell is acceptable if it isn't
// reserved for a foreign net and is either unblocked or, if blocked, the
// current net's own joint cell (so a branch may approach the joint
// diagonally through a cell used by a sibling branch).
func diagonalCornersClear(board *Board, from, to gridgeom.GridPos, netID NetID) bool {
	cornerA := board.At(from.IX, to.IY)
	cornerB := board.At(to.IX, from.IY)

	for _, c := range [2]*Cell{cornerA, cornerB} {
		if conn, ok := c.Connection.Get(); ok && conn != netID {
			return false
		}
		if mc, ok := c.MultiConnection.Get(); c.Blocked && !(ok && mc == netID) {
			return false
		}
	}

	return true
}
