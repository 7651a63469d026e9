package model

// ContourBand holds the extracted iso-probability contours for one
// confidence level: the class-1 contour at Level and the class-0
// contour at 1-Level. Bands are rendered as shading; only the band at
// the margin level feeds the margin metric.
type ContourBand struct {
	// Level is the class-1 confidence level of this band.
	Level float64

	// Class1 holds the points of the probability == Level contour.
	Class1 []Point

	// Class0 holds the points of the probability == 1-Level contour.
	Class0 []Point
}

// Record is the complete outcome of one experiment iteration at a
// single shift distance. Records are accumulated into a Result in
// strictly increasing distance order.
type Record struct {
	// Distance is the shift applied to the second cluster.
	Distance float64

	// Fit holds the fitted classifier parameters.
	Fit FitResult

	// Slope and Intercept describe the decision boundary in
	// slope-intercept form (x2 = Slope*x1 + Intercept).
	Slope     float64
	Intercept float64

	// LogLoss is the mean negative log-likelihood of the training
	// labels under the fitted model.
	LogLoss float64

	// MarginWidth is the minimum distance between the class-1 and
	// class-0 contours at the margin confidence level.
	MarginWidth float64

	// Dataset is the synthesized training data for this distance.
	Dataset *Dataset

	// Field is the probability grid sampled over the padded
	// bounding box of Dataset.
	Field *Field

	// Bands holds the contour point sets extracted for shading,
	// one per configured confidence level.
	Bands []ContourBand
}

// Result is the terminal output of an experiment sweep: one record per
// requested shift distance, ordered by increasing distance, plus the
// sweep parameters the records were produced with.
type Result struct {
	// Records holds one entry per shift distance, in request order.
	Records []*Record

	// Samples is the per-cluster sample count used for every record.
	Samples int

	// ClusterStd is the cluster standard deviation used throughout.
	ClusterStd float64

	// Seed is the RNG seed each dataset was generated from.
	Seed uint64
}

// Distances returns the shift distance of every record in order.
func (r *Result) Distances() []float64 {
	out := make([]float64, len(r.Records))
	for i, rec := range r.Records {
		out[i] = rec.Distance
	}
	return out
}
