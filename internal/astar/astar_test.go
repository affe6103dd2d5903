package astar_test

import (
	"reflect"
	"testing"

	"github.com/cda-tum/mmft-routing-block-channel-router/internal/astar"
)

// A small weighted graph over letters, mirroring the toy fixtures used to
// validate the original graph search: A connects to B (cost 1) and C (cost
// 4); B connects to D (cost 1); C connects to D (cost 1). The shortest path
// A->D should go via B (total cost 2), not via C (total cost 5).
func letterGraph(t *testing.T) func(string) []astar.Edge[string] {
	t.Helper()
	edges := map[string][]astar.Edge[string]{
		"A": {{Node: "B", Cost: 1}, {Node: "C", Cost: 4}},
		"B": {{Node: "D", Cost: 1}},
		"C": {{Node: "D", Cost: 1}},
		"D": {},
	}
	return func(n string) []astar.Edge[string] {
		return edges[n]
	}
}

func TestSearchFindsShortestOfTwoRoutes(t *testing.T) {
	successors := letterGraph(t)
	zeroHeuristic := func(string) float64 { return 0 }
	isTarget := func(n string) bool { return n == "D" }

	path, ok := astar.Search([]string{"A"}, zeroHeuristic, successors, isTarget, 0)
	if !ok {
		t.Fatalf("expected a path to be found")
	}

	want := []string{"A", "B", "D"}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("Search() = %v, expected %v", path, want)
	}
}

func TestSearchUnreachableTarget(t *testing.T) {
	successors := letterGraph(t)
	zeroHeuristic := func(string) float64 { return 0 }
	isTarget := func(n string) bool { return n == "nowhere" }

	_, ok := astar.Search([]string{"A"}, zeroHeuristic, successors, isTarget, 0)
	if ok {
		t.Errorf("expected no path to an unreachable target")
	}
}

func TestSearchStartIsTarget(t *testing.T) {
	successors := letterGraph(t)
	zeroHeuristic := func(string) float64 { return 0 }
	isTarget := func(n string) bool { return n == "A" }

	path, ok := astar.Search([]string{"A"}, zeroHeuristic, successors, isTarget, 0)
	if !ok {
		t.Fatalf("expected the start node to satisfy isTarget immediately")
	}
	if want := []string{"A"}; !reflect.DeepEqual(path, want) {
		t.Errorf("Search() = %v, expected %v", path, want)
	}
}

// A line graph 0..N, used to check that a tight expansion cap correctly
// fails a search that would otherwise succeed.
func lineGraph(n int) func(int) []astar.Edge[int] {
	return func(node int) []astar.Edge[int] {
		if node >= n {
			return nil
		}
		return []astar.Edge[int]{{Node: node + 1, Cost: 1}}
	}
}

func TestSearchExpansionCap(t *testing.T) {
	successors := lineGraph(1000)
	zeroHeuristic := func(int) float64 { return 0 }
	isTarget := func(n int) bool { return n == 1000 }

	if _, ok := astar.Search([]int{0}, zeroHeuristic, successors, isTarget, 10); ok {
		t.Errorf("expected a 10-expansion cap to prevent reaching a target 1000 hops away")
	}

	if _, ok := astar.Search([]int{0}, zeroHeuristic, successors, isTarget, 0); !ok {
		t.Errorf("expected an unbounded search (cap<=0) to reach the target")
	}
}

func TestSearchMultipleStarts(t *testing.T) {
	successors := letterGraph(t)
	zeroHeuristic := func(string) float64 { return 0 }
	isTarget := func(n string) bool { return n == "D" }

	// Starting directly from C should take the C->D edge (cost 1) rather
	// than detouring through A and B.
	path, ok := astar.Search([]string{"C", "A"}, zeroHeuristic, successors, isTarget, 0)
	if !ok {
		t.Fatalf("expected a path to be found")
	}
	if want := []string{"C", "D"}; !reflect.DeepEqual(path, want) {
		t.Errorf("Search() = %v, expected %v", path, want)
	}
}
