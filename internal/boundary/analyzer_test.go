package boundary

import (
	"errors"
	"math"
	"testing"

	"github.com/clusterlab/shiftlab/internal/model"
)

func TestLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		fit           model.FitResult
		wantSlope     float64
		wantIntercept float64
	}{
		{
			name:          "simple coefficients",
			fit:           model.FitResult{Beta0: 2, Beta1: 4, Beta2: -2},
			wantSlope:     2,
			wantIntercept: 1,
		},
		{
			name:          "unit beta2",
			fit:           model.FitResult{Beta0: -3, Beta1: 1.5, Beta2: 1},
			wantSlope:     -1.5,
			wantIntercept: 3,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			slope, intercept, err := Line(tt.fit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(slope-tt.wantSlope) > 1e-12 {
				t.Errorf("slope = %v, want %v", slope, tt.wantSlope)
			}
			if math.Abs(intercept-tt.wantIntercept) > 1e-12 {
				t.Errorf("intercept = %v, want %v", intercept, tt.wantIntercept)
			}
		})
	}
}

func TestLinePointsSatisfyDecisionFunction(t *testing.T) {
	t.Parallel()

	fit := model.FitResult{Beta0: 1.3, Beta1: -0.7, Beta2: 2.1}
	slope, intercept, err := Line(fit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Any point exactly on the returned line must sit on the zero
	// level-set of the decision function.
	for _, x1 := range []float64{-5, -1, 0, 0.5, 3, 10} {
		p := model.Point{X1: x1, X2: slope*x1 + intercept}
		if v := fit.Decision(p); math.Abs(v) > 1e-9 {
			t.Errorf("decision at x1=%v on line = %v, want 0", x1, v)
		}
	}
}

func TestLineDegenerateBoundary(t *testing.T) {
	t.Parallel()

	_, _, err := Line(model.FitResult{Beta0: 1, Beta1: 2, Beta2: 0})
	if !errors.Is(err, ErrDegenerateBoundary) {
		t.Errorf("err = %v, want ErrDegenerateBoundary", err)
	}
}

func TestLogLoss(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		labels []int
		probs  []float64
		want   float64
	}{
		{
			name:   "coin flip probabilities",
			labels: []int{0, 1},
			probs:  []float64{0.5, 0.5},
			want:   math.Ln2,
		},
		{
			name:   "confident and correct",
			labels: []int{1},
			probs:  []float64{0.9},
			want:   -math.Log(0.9),
		},
		{
			name:   "confident and wrong",
			labels: []int{0},
			probs:  []float64{0.9},
			want:   -math.Log(0.1),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := LogLoss(tt.labels, tt.probs)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("LogLoss = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogLossClampsSaturatedProbabilities(t *testing.T) {
	t.Parallel()

	// Exactly saturated predictions must yield a large finite loss,
	// never infinity.
	got, err := LogLoss([]int{1, 0}, []float64{0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Fatalf("LogLoss = %v, want finite", got)
	}
	if got < 10 {
		t.Errorf("LogLoss = %v, want large for maximally wrong predictions", got)
	}
}

func TestLogLossLengthMismatch(t *testing.T) {
	t.Parallel()

	_, err := LogLoss([]int{0, 1}, []float64{0.5})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
}

// rampField builds a field over [0,10]x[0,10] whose probability depends
// only on x1, rising linearly from 0 at x1=0 to 1 at x1=10. Contours
// are vertical lines at x1 = 10*level.
func rampField(n int) *model.Field {
	f := model.NewField(model.Point{X1: 0, X2: 0}, model.Point{X1: 10, X2: 10}, n)
	for r := range f.Ys {
		for c := range f.Xs {
			f.Probs[r*len(f.Xs)+c] = f.Xs[c] / 10
		}
	}
	return f
}

func TestContourAtRampField(t *testing.T) {
	t.Parallel()

	f := rampField(101)

	pts := ContourAt(f, 0.5)
	if len(pts) == 0 {
		t.Fatal("expected a contour at level 0.5")
	}
	for _, p := range pts {
		if math.Abs(p.X1-5) > 1e-9 {
			t.Fatalf("contour point %+v, want x1 = 5", p)
		}
	}
}

func TestContourAtMissingLevel(t *testing.T) {
	t.Parallel()

	f := rampField(51)
	// Probabilities are strictly below 1 in the interior but the max
	// grid node hits exactly 1; use a level above the field maximum.
	if pts := ContourAt(f, 1.5); len(pts) != 0 {
		t.Errorf("expected empty contour above field maximum, got %d points", len(pts))
	}
}

func TestMarginWidthRampField(t *testing.T) {
	t.Parallel()

	f := rampField(101)

	// Contours at 0.7 and 0.3 are vertical lines at x1=7 and x1=3.
	got, err := MarginWidth(f, 0.7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-4) > 1e-9 {
		t.Errorf("MarginWidth = %v, want 4", got)
	}
}

func TestMarginWidthNonNegative(t *testing.T) {
	t.Parallel()

	for _, level := range []float64{0.6, 0.7, 0.8, 0.9} {
		got, err := MarginWidth(rampField(101), level)
		if err != nil {
			t.Fatalf("level %v: unexpected error: %v", level, err)
		}
		if got < 0 {
			t.Errorf("level %v: MarginWidth = %v, want >= 0", level, got)
		}
	}
}

func TestMarginWidthNoContour(t *testing.T) {
	t.Parallel()

	// A field whose maximum stays below the requested level has no
	// class-1 contour.
	f := model.NewField(model.Point{X1: 0, X2: 0}, model.Point{X1: 1, X2: 1}, 21)
	for i := range f.Probs {
		f.Probs[i] = 0.4
	}

	_, err := MarginWidth(f, 0.7)
	if !errors.Is(err, ErrNoContour) {
		t.Errorf("err = %v, want ErrNoContour", err)
	}
}

func TestMarginBetween(t *testing.T) {
	t.Parallel()

	class1 := []model.Point{{X1: 0, X2: 0}, {X1: 0, X2: 5}}
	class0 := []model.Point{{X1: 3, X2: 4}, {X1: 10, X2: 10}}

	got, err := MarginBetween(class1, class0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Closest pair is (0,5) to (3,4): sqrt(9+1).
	if math.Abs(got-math.Sqrt(10)) > 1e-12 {
		t.Errorf("MarginBetween = %v, want sqrt(10)", got)
	}

	if _, err := MarginBetween(nil, class0); !errors.Is(err, ErrNoContour) {
		t.Errorf("empty class1: err = %v, want ErrNoContour", err)
	}
}
