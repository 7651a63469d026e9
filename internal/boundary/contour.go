package boundary

import "github.com/clusterlab/shiftlab/internal/model"

// ContourAt extracts the iso-probability contour of the field at the
// given level as an unordered point set.
//
// The extraction scans every horizontally and vertically adjacent pair
// of grid nodes and linearly interpolates the crossing point wherever
// the level passes between their probabilities. For the margin metric
// only pairwise distances matter, so no attempt is made to chain the
// crossings into ordered polylines.
//
// An empty slice means the level is never crossed in the field.
func ContourAt(field *model.Field, level float64) []model.Point {
	cols, rows := field.Dims()
	var pts []model.Point

	// Horizontal edges: node (c, r) to (c+1, r).
	for r := 0; r < rows; r++ {
		for c := 0; c < cols-1; c++ {
			a, b := field.At(c, r), field.At(c+1, r)
			if t, ok := crossing(a, b, level); ok {
				x := field.X(c) + t*(field.X(c+1)-field.X(c))
				pts = append(pts, model.Point{X1: x, X2: field.Y(r)})
			}
		}
	}

	// Vertical edges: node (c, r) to (c, r+1).
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols; c++ {
			a, b := field.At(c, r), field.At(c, r+1)
			if t, ok := crossing(a, b, level); ok {
				y := field.Y(r) + t*(field.Y(r+1)-field.Y(r))
				pts = append(pts, model.Point{X1: field.X(c), X2: y})
			}
		}
	}

	return pts
}

// crossing reports whether level lies between a and b, and if so the
// interpolation parameter of the crossing along the a-to-b edge.
// Edges whose endpoints both sit on the same side contribute nothing;
// a flat edge exactly at the level is skipped too, because its
// endpoints are picked up by the neighboring edges.
func crossing(a, b, level float64) (float64, bool) {
	if a == b {
		return 0, false
	}
	if (a < level && b < level) || (a > level && b > level) {
		return 0, false
	}
	return (level - a) / (b - a), true
}
