// Package astar is a generic best-first search over any comparable node
// type, parameterised by a heuristic, a successor function, and a target
// predicate. Callers that need turn-restricted moves fold the incoming
// direction into the node type itself (a (cell, predecessor) pair), so the
// search stays agnostic of what a "node" actually represents.
package astar

import "github.com/cda-tum/mmft-routing-block-channel-router/internal/priorityqueue"

// Edge is one candidate successor produced by a caller's successor
// function: the node reached and the cost of the step.
type Edge[N any] struct {
	Node N
	Cost float64
}

type queued[N comparable] struct {
	node    N
	g       float64
	prev    N
	hasPrev bool
}

// Search finds the lowest g+h path from any of starts to a node accepted
// by isTarget, expanding nodes through successors and estimating remaining
// cost with heuristic. heuristic must be admissible and consistent for the
// result to be optimal.
//
// expansionCap bounds the number of node expansions; a value <= 0 means
// unbounded. When the cap is hit before a target is reached, Search returns
// (nil, false), mirroring the bounded search used by comparable graph
// routers to avoid pathological blow-up on disconnected or adversarial
// inputs.
func Search[N comparable](
	starts []N,
	heuristic func(N) float64,
	successors func(N) []Edge[N],
	isTarget func(N) bool,
	expansionCap int,
) ([]N, bool) {
	var open priorityqueue.PriorityQueue[queued[N]]
	closed := make(map[N]queued[N])

	for _, s := range starts {
		open.Push(queued[N]{node: s, g: 0}, heuristic(s))
	}

	expansions := 0

	for {
		top, ok := open.Pop()
		if !ok {
			return nil, false
		}
		candidate := *top

		if isTarget(candidate.node) {
			return buildPath(candidate, closed), true
		}

		if _, seen := closed[candidate.node]; seen {
			continue
		}

		if expansionCap > 0 && expansions >= expansionCap {
			return nil, false
		}
		expansions++

		for _, edge := range successors(candidate.node) {
			ng := candidate.g + edge.Cost
			open.Push(queued[N]{
				node:    edge.Node,
				g:       ng,
				prev:    candidate.node,
				hasPrev: true,
			}, ng+heuristic(edge.Node))
		}

		closed[candidate.node] = candidate
	}
}

func buildPath[N comparable](target queued[N], closed map[N]queued[N]) []N {
	path := []N{target.node}
	cur := target
	for cur.hasPrev {
		prevRecord, ok := closed[cur.prev]
		if !ok {
			panic("astar: predecessor missing from closed set during path reconstruction")
		}
		path = append([]N{prevRecord.node}, path...)
		cur = prevRecord
	}
	return path
}
