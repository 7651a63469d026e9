package model

// Field is a rectangular grid of class-1 probability samples over a
// bounding box. The grid axes are stored once per axis; probabilities
// are stored row-major, indexed as Probs[r*len(Xs)+c].
//
// Design decision: we keep a flat probability slice plus two axis
// slices instead of a slice-of-slices because it matches the order in
// which the classifier predicts the grid (a single flat point list) and
// because it satisfies gonum/plot's GridXYZ access pattern without
// copying.
type Field struct {
	// Xs holds the x1 coordinate of each grid column, ascending.
	Xs []float64

	// Ys holds the x2 coordinate of each grid row, ascending.
	Ys []float64

	// Probs holds the predicted class-1 probability for each grid
	// node, row-major: Probs[r*len(Xs)+c] corresponds to (Xs[c], Ys[r]).
	Probs []float64
}

// NewField builds a field with n evenly spaced samples per axis over
// [min, max] (inclusive), with probabilities left zeroed for the
// classifier to fill via GridPoints ordering.
func NewField(min, max Point, n int) *Field {
	f := &Field{
		Xs:    Linspace(min.X1, max.X1, n),
		Ys:    Linspace(min.X2, max.X2, n),
		Probs: make([]float64, n*n),
	}
	return f
}

// Dims returns the number of columns and rows in the grid.
func (f *Field) Dims() (c, r int) {
	return len(f.Xs), len(f.Ys)
}

// X returns the x1 coordinate of column c.
func (f *Field) X(c int) float64 { return f.Xs[c] }

// Y returns the x2 coordinate of row r.
func (f *Field) Y(r int) float64 { return f.Ys[r] }

// Z returns the probability at column c, row r.
// Together with Dims, X, and Y this implements plotter.GridXYZ.
func (f *Field) Z(c, r int) float64 { return f.Probs[r*len(f.Xs)+c] }

// At returns the probability at column c, row r.
func (f *Field) At(c, r int) float64 { return f.Z(c, r) }

// GridPoints returns every grid node as a Point, in the same row-major
// order as Probs, so that classifier predictions over the returned
// slice can be stored directly into Probs.
func (f *Field) GridPoints() []Point {
	pts := make([]Point, 0, len(f.Probs))
	for _, y := range f.Ys {
		for _, x := range f.Xs {
			pts = append(pts, Point{X1: x, X2: y})
		}
	}
	return pts
}

// Max returns the largest probability in the field.
func (f *Field) Max() float64 {
	max := f.Probs[0]
	for _, p := range f.Probs[1:] {
		if p > max {
			max = p
		}
	}
	return max
}

// Linspace returns n evenly spaced values from start to end inclusive.
// A single-element spacing returns just start, matching the degenerate
// sweep case where only one distance is requested.
func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	// Pin the endpoint so accumulated rounding never overshoots end.
	out[n-1] = end
	return out
}
