package router

import "github.com/cda-tum/mmft-routing-block-channel-router/internal/spatial"

// NetsNear returns the IDs of every net with a committed channel whose
// bounding box intersects the square of half-width radius around the
// physical point (x, y). This is a bounding-box test, so a returned net's
// polyline may itself lie farther away. The spatial index is rebuilt from
// Board.Nets on every call.
func (b *Board) NetsNear(x, y, radius float64) []NetID {
	idx := spatial.NewIndex()

	for netID, branches := range b.Nets {
		for _, branch := range branches {
			pts := make([][2]float64, len(branch))
			for i, p := range branch {
				pts[i] = [2]float64{p.X, p.Y}
			}
			idx.Insert(netID, pts)
		}
	}

	return idx.Near(x, y, radius)
}
