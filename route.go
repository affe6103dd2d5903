package router

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Route runs the full routing pipeline for one input: grid construction,
// port reservation, joint placement, task generation and ordering, and
// sequential A* routing with path commit (§2).
//
// It returns (board, nil) on complete success, (board, *PartialResultError)
// when some but not all tasks succeeded, ErrNoConnectionsFound when none
// did, and ErrNoInputConnections when there were no tasks to run at all.
func Route(input RouteInput) (Board, error) {
	runID := uuid.New()
	log := logrus.WithField("run_id", runID.String())

	g := computeGridLayout(input)
	board := newBoard(g)

	reservePorts(board, g, input.Connections, log)
	joints := placeJoints(board, g, input.Connections, log)

	tasks := buildTasks(g, input.Connections, joints)
	orderTasks(tasks)

	if len(tasks) == 0 {
		log.Info("no routing tasks generated from input connections")
		return Board{}, ErrNoInputConnections
	}

	succeeded := runTasks(board, input.Layout, tasks, log)

	log.WithFields(logrus.Fields{
		"succeeded": succeeded,
		"total":     len(tasks),
	}).Info("routing pass complete")

	switch {
	case succeeded == 0:
		return *board, ErrNoConnectionsFound
	case succeeded == len(tasks):
		return *board, nil
	default:
		return *board, &PartialResultError{
			Board:      *board,
			Succeeded:  succeeded,
			TotalTasks: len(tasks),
		}
	}
}
