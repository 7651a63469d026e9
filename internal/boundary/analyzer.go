package boundary

import (
	"math"

	"github.com/clusterlab/shiftlab/internal/model"
)

// lossEpsilon clamps predicted probabilities away from exactly 0 and 1
// before the logarithm. A ridge-penalized fit can still saturate a
// training point to within float rounding of 0 or 1, and an infinite
// loss would poison the whole trend series.
const lossEpsilon = 1e-15

// Line converts a fit into the slope-intercept form of its decision
// boundary: x2 = slope*x1 + intercept, with slope = -beta1/beta2 and
// intercept = -beta0/beta2. Returns ErrDegenerateBoundary when beta2
// is zero.
func Line(fit model.FitResult) (slope, intercept float64, err error) {
	if fit.Beta2 == 0 {
		return 0, 0, ErrDegenerateBoundary
	}
	return -fit.Beta1 / fit.Beta2, -fit.Beta0 / fit.Beta2, nil
}

// LogLoss returns the mean negative log-likelihood of the labels under
// the predicted class-1 probabilities.
func LogLoss(labels []int, probs []float64) (float64, error) {
	if len(labels) != len(probs) {
		return 0, ErrLengthMismatch
	}

	var sum float64
	for i, label := range labels {
		p := min(max(probs[i], lossEpsilon), 1-lossEpsilon)
		if label == model.ClassB {
			sum -= math.Log(p)
		} else {
			sum -= math.Log(1 - p)
		}
	}
	return sum / float64(len(labels)), nil
}

// MarginWidth measures the width of the uncertain band between the two
// high-confidence regions of the field: the minimum Euclidean distance
// between the class-1 contour at level and the class-0 contour at
// 1-level. Returns ErrNoContour when either contour is empty.
func MarginWidth(field *model.Field, level float64) (float64, error) {
	class1 := ContourAt(field, level)
	class0 := ContourAt(field, 1-level)
	return marginBetween(class1, class0)
}

// MarginBetween returns the minimum pairwise distance between two
// pre-extracted contour point sets. Exposed so the runner can reuse the
// contours it already extracted for shading.
func MarginBetween(class1, class0 []model.Point) (float64, error) {
	return marginBetween(class1, class0)
}

func marginBetween(class1, class0 []model.Point) (float64, error) {
	if len(class1) == 0 || len(class0) == 0 {
		return 0, ErrNoContour
	}

	best := math.Inf(1)
	for _, a := range class1 {
		for _, b := range class0 {
			dx := a.X1 - b.X1
			dy := a.X2 - b.X2
			if d := dx*dx + dy*dy; d < best {
				best = d
			}
		}
	}
	return math.Sqrt(best), nil
}
