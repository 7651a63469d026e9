package config

import "errors"

// Configuration validation errors.
//
// Design decision: package-level sentinel errors rather than error
// values created inside Validate(). Callers can branch with errors.Is
// while the messages stay human-readable, and no dynamic values are
// needed in these messages.
var (
	// ErrInvalidSampleCount is returned when the per-cluster sample
	// count is not positive. An empty cluster cannot be fitted.
	ErrInvalidSampleCount = errors.New("invalid sample count: must be positive")

	// ErrInvalidStepCount is returned when the number of sweep steps
	// is not positive.
	ErrInvalidStepCount = errors.New("invalid step count: must be positive")

	// ErrInvalidRange is returned when start > end with more than
	// one step. A single step is allowed regardless of order because
	// the sweep degenerates to one distance.
	ErrInvalidRange = errors.New("invalid sweep range: start must not exceed end when steps > 1")

	// ErrInvalidClusterStd is returned when the cluster standard
	// deviation is not positive; the covariance matrix would not be
	// positive definite.
	ErrInvalidClusterStd = errors.New("invalid cluster std: must be positive")

	// ErrInvalidGridSize is returned when the probability grid has
	// fewer than two samples per axis, which leaves no cell edges to
	// extract contours from.
	ErrInvalidGridSize = errors.New("invalid grid size: must be at least 2")

	// ErrInvalidMarginLevel is returned when the margin confidence
	// level does not lie strictly between 0.5 and 1.
	ErrInvalidMarginLevel = errors.New("invalid margin level: must be in (0.5, 1)")

	// ErrInvalidParallelism is returned when the parallelism is not
	// positive. Use 1 for a sequential sweep.
	ErrInvalidParallelism = errors.New("invalid parallelism: must be positive")

	// ErrNoOutputDir is returned when no output directory is given.
	ErrNoOutputDir = errors.New("no output directory specified")
)
