package config

// Default configuration values. The sweep defaults reproduce the
// canonical experiment: eight distances from 0.25 to 2.0 with one
// hundred samples per cluster at standard deviation 0.5.
const (
	// DefaultStart is the first shift distance of the sweep.
	DefaultStart = 0.25

	// DefaultEnd is the last shift distance of the sweep, inclusive.
	DefaultEnd = 2.0

	// DefaultSteps is the number of linearly spaced distances
	// between DefaultStart and DefaultEnd.
	DefaultSteps = 8

	// DefaultSamples is the number of points drawn per cluster.
	// 100 per class keeps fits stable while the scatter panels stay
	// readable.
	DefaultSamples = 100

	// DefaultClusterStd is the cluster standard deviation. Together
	// with the fixed 0.8 correlation it produces clearly ellipsoidal
	// clusters.
	DefaultClusterStd = 0.5

	// DefaultSeed is the RNG seed used for every dataset. A fixed
	// seed makes repeated runs bit-reproducible.
	DefaultSeed = 0

	// DefaultOutputDir is the directory the image artifacts are
	// written to, created if absent.
	DefaultOutputDir = "results"

	// DefaultGridSize is the number of probability samples per axis
	// of the field used for contour extraction.
	DefaultGridSize = 200

	// DefaultMarginLevel is the confidence level whose contour pair
	// feeds the margin-width metric.
	DefaultMarginLevel = 0.7

	// DefaultParallelism of 1 runs the sweep sequentially. Higher
	// values run iterations concurrently; records are still merged
	// in distance order.
	DefaultParallelism = 1

	// AppName is the application name used for XDG directory paths.
	AppName = "shiftlab"
)

// ShadingLevels are the confidence levels whose contour pairs are
// extracted for rendering. Only DefaultMarginLevel feeds the margin
// metric; the remaining levels exist purely for shading, mirroring the
// asymmetry of the original experiment rather than averaging it away.
var ShadingLevels = []float64{0.7, 0.8, 0.9}

// Config holds all parameters for one experiment sweep.
//
// Design decision: a single flat struct instead of nested sub-structs.
// The parameter count is small, and nesting would add indirection
// without benefit.
type Config struct {
	// Start is the first shift distance.
	Start float64

	// End is the last shift distance, inclusive. Start > End is only
	// valid when Steps == 1, where the sweep degenerates to a single
	// distance.
	End float64

	// Steps is the number of linearly spaced distances to evaluate.
	// Must be positive.
	Steps int

	// Samples is the number of points per cluster. Must be positive;
	// each dataset contains 2*Samples points.
	Samples int

	// ClusterStd is the standard deviation of both clusters. Must be
	// positive so the covariance matrix stays positive definite.
	ClusterStd float64

	// Seed seeds the generator before every dataset so output is
	// reproducible across calls and across runs.
	Seed uint64

	// OutputDir is where the artifacts are written. Created if
	// absent; existing artifacts are overwritten.
	OutputDir string

	// GridSize is the number of field samples per axis.
	GridSize int

	// MarginLevel is the confidence level used for the margin
	// metric. Must lie strictly between 0.5 and 1.
	MarginLevel float64

	// Parallelism is the number of concurrent experiment iterations.
	// 1 means sequential.
	Parallelism int

	// Markdown additionally writes a Markdown summary of the sweep.
	Markdown bool

	// Verbose enables debug-level logging.
	Verbose bool

	// ConfigFilePath is an explicit path to a sweep configuration
	// file. If empty, the standard search locations are tried.
	ConfigFilePath string
}

// NewConfig returns a Config populated with the default sweep.
//
// Design decision: a constructor instead of relying on zero values,
// because most defaults are non-zero and the constructor doubles as
// documentation of what they are.
func NewConfig() *Config {
	return &Config{
		Start:       DefaultStart,
		End:         DefaultEnd,
		Steps:       DefaultSteps,
		Samples:     DefaultSamples,
		ClusterStd:  DefaultClusterStd,
		Seed:        DefaultSeed,
		OutputDir:   DefaultOutputDir,
		GridSize:    DefaultGridSize,
		MarginLevel: DefaultMarginLevel,
		Parallelism: DefaultParallelism,
	}
}

// Validate checks all parameters and returns the first violation found.
// All returned errors are package sentinels usable with errors.Is.
func (c *Config) Validate() error {
	if c.Samples <= 0 {
		return ErrInvalidSampleCount
	}
	if c.Steps <= 0 {
		return ErrInvalidStepCount
	}
	if c.Start > c.End && c.Steps > 1 {
		return ErrInvalidRange
	}
	if c.ClusterStd <= 0 {
		return ErrInvalidClusterStd
	}
	if c.GridSize < 2 {
		return ErrInvalidGridSize
	}
	if c.MarginLevel <= 0.5 || c.MarginLevel >= 1 {
		return ErrInvalidMarginLevel
	}
	if c.Parallelism <= 0 {
		return ErrInvalidParallelism
	}
	if c.OutputDir == "" {
		return ErrNoOutputDir
	}
	return nil
}
