// Package spatial indexes committed channel geometry so that downstream
// collaborators (chiefly CAD export) can ask "what passes near this point"
// without re-walking every net's polyline.
package spatial

import "github.com/tidwall/rtree"

// Index is a bounding-box spatial index over net channels, keyed by an
// opaque net identifier supplied by the caller.
type Index struct {
	tr rtree.RTree
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{}
}

// Insert adds one channel's bounding box to the index under netID. Callers
// insert one entry per branch of a multi-branch net.
func (idx *Index) Insert(netID int, points [][2]float64) {
	if len(points) == 0 {
		return
	}

	min := points[0]
	max := points[0]
	for _, p := range points[1:] {
		if p[0] < min[0] {
			min[0] = p[0]
		}
		if p[1] < min[1] {
			min[1] = p[1]
		}
		if p[0] > max[0] {
			max[0] = p[0]
		}
		if p[1] > max[1] {
			max[1] = p[1]
		}
	}

	idx.tr.Insert(min, max, netID)
}

// Near returns every distinct net ID whose channel bounding box passes
// within radius of (x, y). This is a bounding-box query, not an exact
// polyline distance — callers needing exactness should re-check the
// returned nets' actual geometry.
func (idx *Index) Near(x, y, radius float64) []int {
	min := [2]float64{x - radius, y - radius}
	max := [2]float64{x + radius, y + radius}

	seen := make(map[int]bool)
	var out []int

	idx.tr.Search(min, max, func(_, _ [2]float64, data interface{}) bool {
		netID := data.(int)
		if !seen[netID] {
			seen[netID] = true
			out = append(out, netID)
		}
		return true
	})

	return out
}
