package model

// Point is a single 2-D observation.
type Point struct {
	// X1 is the first coordinate.
	X1 float64

	// X2 is the second coordinate.
	X2 float64
}

// Class labels used throughout the experiment. The generator assigns
// ClassA to the stationary cluster and ClassB to the shifted cluster.
const (
	// ClassA is the label of the first (unshifted) cluster.
	ClassA = 0

	// ClassB is the label of the second (shifted) cluster.
	ClassB = 1
)

// Dataset is an ordered sequence of labeled 2-D points.
//
// Invariant: len(Points) == len(Labels). The generator additionally
// guarantees that both classes are present with the same sample count,
// with all ClassA points preceding all ClassB points.
type Dataset struct {
	// Points holds the observations in generation order.
	Points []Point

	// Labels holds the class label for each point, index-aligned
	// with Points. Values are ClassA or ClassB.
	Labels []int
}

// Len returns the number of points in the dataset.
func (d *Dataset) Len() int {
	return len(d.Points)
}

// ClassCount returns the number of points carrying the given label.
func (d *Dataset) ClassCount(label int) int {
	var n int
	for _, l := range d.Labels {
		if l == label {
			n++
		}
	}
	return n
}

// Bounds returns the per-axis minimum and maximum over all points.
// The dataset must be non-empty; the generator enforces this.
func (d *Dataset) Bounds() (min, max Point) {
	min = d.Points[0]
	max = d.Points[0]
	for _, p := range d.Points[1:] {
		if p.X1 < min.X1 {
			min.X1 = p.X1
		}
		if p.X1 > max.X1 {
			max.X1 = p.X1
		}
		if p.X2 < min.X2 {
			min.X2 = p.X2
		}
		if p.X2 > max.X2 {
			max.X2 = p.X2
		}
	}
	return min, max
}
