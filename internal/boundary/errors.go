package boundary

import "errors"

// Analysis errors.
var (
	// ErrDegenerateBoundary is returned when beta2 == 0: the
	// decision boundary is vertical and has no slope-intercept form.
	// Callers get an explicit error instead of a silent division
	// producing infinity.
	ErrDegenerateBoundary = errors.New("degenerate boundary: beta2 is zero, boundary has no slope-intercept form")

	// ErrNoContour is returned when a requested iso-probability
	// contour is empty: the classifier never reaches that confidence
	// anywhere in the sampled field. The affected record must fail
	// rather than reuse a stale margin.
	ErrNoContour = errors.New("no contour: requested confidence level is not reached in the sampled field")

	// ErrLengthMismatch is returned when labels and predicted
	// probabilities do not pair up one to one.
	ErrLengthMismatch = errors.New("labels and probabilities have different lengths")
)
