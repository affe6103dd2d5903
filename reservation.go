package router

import (
	"github.com/cda-tum/mmft-routing-block-channel-router/internal/gridgeom"
	"github.com/cda-tum/mmft-routing-block-channel-router/option"
	"github.com/sirupsen/logrus"
)

// placeJoints implements §4.4: every net with more than two ports, or any
// net supplying an explicit branch port, gets a single joint cell marked
// MultiConnection. It returns the joint cell chosen per net (nets for
// which placement was skipped or failed are simply absent from the map).
func placeJoints(board *Board, g gridLayout, connections []RouteInputConnection, log *logrus.Entry) map[NetID]gridgeom.GridPos {
	joints := make(map[NetID]gridgeom.GridPos)

	for _, conn := range connections {
		var joint gridgeom.GridPos
		var hasJoint bool

		switch {
		case len(conn.Ports) > 2:
			if conn.BranchPort != nil {
				joint = g.portCell(*conn.BranchPort)
				hasJoint = true
			} else if j, ok := findJointCell(board, g, conn.Ports, log, conn.ID); ok {
				joint = j
				hasJoint = true
			}
		case conn.BranchPort != nil:
			// A two-port net with an explicit joint still becomes two
			// StarBranch tasks (§4.5); this is intentional, not an
			// optimisation for the >2-port case only.
			joint = g.portCell(*conn.BranchPort)
			hasJoint = true
		}

		if hasJoint {
			board.At(joint.IX, joint.IY).MultiConnection = option.Some(conn.ID)
			joints[conn.ID] = joint
		}
	}

	return joints
}

// findJointCell performs a breadth-first search outward from the integer
// centroid of ports' home cells, looking for the first cell whose own
// neighbourhood (itself plus its 8 neighbours) is entirely free of
// Connection, MultiConnection, and Blocked state.
func findJointCell(board *Board, g gridLayout, ports []Port, log *logrus.Entry, netID NetID) (gridgeom.GridPos, bool) {
	sumX, sumY := 0, 0
	for _, p := range ports {
		cell := g.portCell(p)
		sumX += cell.IX
		sumY += cell.IY
	}
	centroid := gridgeom.GridPos{IX: sumX / len(ports), IY: sumY / len(ports)}

	open := []gridgeom.GridPos{centroid}
	closed := make(map[gridgeom.GridPos]bool)

	for len(open) > 0 {
		candidate := open[0]
		open = open[1:]

		if closed[candidate] {
			continue
		}
		closed[candidate] = true

		ring := gridgeom.Neighbours8(candidate, board.CellsX, board.CellsY)

		unoccupied := true
		reason := ""
		check := func(p gridgeom.GridPos) bool {
			c := board.At(p.IX, p.IY)
			if _, ok := c.Connection.Get(); ok {
				reason = "crowded-by-ports"
				return false
			}
			if _, ok := c.MultiConnection.Get(); ok {
				reason = "crowded-by-prior-joints"
				return false
			}
			if c.Blocked {
				reason = "crowded-by-blocked-cell"
				return false
			}
			return true
		}

		if !check(candidate) {
			unoccupied = false
		}
		for _, n := range ring {
			if !check(n.Pos) {
				unoccupied = false
			}
		}

		if unoccupied {
			return candidate, true
		}

		log.WithFields(logrus.Fields{
			"net":       netID,
			"candidate": candidate,
			"reason":    reason,
		}).Debug("joint candidate rejected, stepping BFS ring outward")

		for _, n := range ring {
			open = append(open, n.Pos)
		}
	}

	log.WithField("net", netID).Warn("no joint cell could be placed; star branches for this net will fail")
	return gridgeom.GridPos{}, false
}
