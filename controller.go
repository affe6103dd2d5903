package router

import (
	"github.com/cda-tum/mmft-routing-block-channel-router/internal/astar"
	"github.com/cda-tum/mmft-routing-block-channel-router/internal/gridgeom"
	"github.com/sirupsen/logrus"
)

// defaultExpansionCap bounds a single task's A* search, mirroring the
// teacher router's own search limit for the same reason: a pathological
// or fully-enclosed target must not hang a routing call.
const defaultExpansionCap = 8192

// runTasks executes every routing task in order, invoking A* with a
// layout-specific successor function and committing each returned path as
// a hard block (§4.7). It returns the number of tasks that succeeded.
func runTasks(board *Board, layout Layout, tasks []RoutingTask, log *logrus.Entry) int {
	succeeded := 0

	for _, task := range tasks {
		if !task.HasFrom {
			// Unplaceable joint: generated and counted, but can never
			// succeed (§4.4/§4.8 edge case).
			continue
		}

		path, ok := routeOne(board, layout, task)
		if !ok {
			log.WithFields(logrus.Fields{
				"net":    task.Net,
				"from":   task.From,
				"to":     task.To,
				"branch": task.IsStarBranch,
			}).Debug("routing task failed, no path found")
			continue
		}

		succeeded++
		channel := commitPath(board, path)
		board.Nets[task.Net] = append(board.Nets[task.Net], channel)
	}

	return succeeded
}

func routeOne(board *Board, layout Layout, task RoutingTask) ([]gridgeom.GridPos, bool) {
	target := task.To
	successors := makeSuccessors(board, layout, task.Net)

	heuristic := func(sn searchNode) float64 {
		return gridgeom.EuclideanCellDistance(sn.Cell, target)
	}
	isTarget := func(sn searchNode) bool {
		return sn.Cell == target
	}

	start := searchNode{Cell: task.From}

	path, ok := astar.Search(
		[]searchNode{start},
		heuristic,
		successors,
		isTarget,
		defaultExpansionCap,
	)
	if !ok {
		return nil, false
	}

	cells := make([]gridgeom.GridPos, len(path))
	for i, sn := range path {
		cells[i] = sn.Cell
	}
	return cells, true
}

// commitPath marks every cell of a successful path as blocked and returns
// its physical-coordinate polyline.
func commitPath(board *Board, path []gridgeom.GridPos) Channel {
	channel := make(Channel, len(path))
	for i, pos := range path {
		cell := board.At(pos.IX, pos.IY)
		cell.Blocked = true
		channel[i] = Point{X: cell.X, Y: cell.Y}
	}
	return channel
}
