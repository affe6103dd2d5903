package router

import (
	"sort"

	"github.com/cda-tum/mmft-routing-block-channel-router/internal/gridgeom"
)

// buildTasks converts every input connection into its routing task(s), per
// §4.5:
//   - exactly one PortToPort task for a two-port net with no joint;
//   - two StarBranch tasks (joint -> each port) for a two-port net with an
//     explicit joint;
//   - one StarBranch task per port for a net with more than two ports.
func buildTasks(g gridLayout, connections []RouteInputConnection, joints map[NetID]gridgeom.GridPos) []RoutingTask {
	tasks := make([]RoutingTask, 0, len(connections))

	for _, conn := range connections {
		joint, hasJoint := joints[conn.ID]

		switch {
		case len(conn.Ports) == 2:
			if hasJoint {
				for _, p := range conn.Ports {
					tasks = append(tasks, RoutingTask{
						Net:          conn.ID,
						IsStarBranch: true,
						From:         joint,
						HasFrom:      true,
						To:           g.portCell(p),
						Branches:     len(conn.Ports),
					})
				}
			} else {
				tasks = append(tasks, RoutingTask{
					Net:          conn.ID,
					IsStarBranch: false,
					From:         g.portCell(conn.Ports[0]),
					HasFrom:      true,
					To:           g.portCell(conn.Ports[1]),
				})
			}
		case len(conn.Ports) > 2:
			for _, p := range conn.Ports {
				tasks = append(tasks, RoutingTask{
					Net:          conn.ID,
					IsStarBranch: true,
					From:         joint,
					HasFrom:      hasJoint,
					To:           g.portCell(p),
					Branches:     len(conn.Ports),
				})
			}
		}
	}

	return tasks
}

// orderTasks sorts tasks ascending by the §4.5 key: StarBranch before
// PortToPort; among StarBranch, more branches first; within a group,
// shortest Euclidean from/to distance first. Ties are resolved arbitrarily
// but deterministically by sort.SliceStable preserving input order.
func orderTasks(tasks []RoutingTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]

		if a.IsStarBranch != b.IsStarBranch {
			return a.IsStarBranch // StarBranch (true) sorts first
		}

		if a.IsStarBranch {
			if a.Branches != b.Branches {
				return a.Branches > b.Branches // more branches first
			}
			if !a.HasFrom || !b.HasFrom {
				return false // don't care, matches the original's "equal" treatment
			}
		}

		return taskDistance(a) < taskDistance(b)
	})
}

func taskDistance(t RoutingTask) float64 {
	if !t.HasFrom {
		return 0
	}
	return gridgeom.EuclideanCellDistance(t.From, t.To)
}
