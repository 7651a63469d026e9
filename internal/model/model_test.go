package model

import (
	"math"
	"testing"
)

func TestDatasetClassCount(t *testing.T) {
	t.Parallel()

	ds := &Dataset{
		Points: []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
		Labels: []int{ClassA, ClassA, ClassB, ClassB},
	}

	if got := ds.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}
	if got := ds.ClassCount(ClassA); got != 2 {
		t.Errorf("ClassCount(ClassA) = %d, want 2", got)
	}
	if got := ds.ClassCount(ClassB); got != 2 {
		t.Errorf("ClassCount(ClassB) = %d, want 2", got)
	}
}

func TestDatasetBounds(t *testing.T) {
	t.Parallel()

	ds := &Dataset{
		Points: []Point{{-1, 4}, {3, -2}, {0, 0}},
		Labels: []int{ClassA, ClassB, ClassA},
	}

	min, max := ds.Bounds()
	if min.X1 != -1 || min.X2 != -2 {
		t.Errorf("min = %+v, want {-1 -2}", min)
	}
	if max.X1 != 3 || max.X2 != 4 {
		t.Errorf("max = %+v, want {3 4}", max)
	}
}

func TestFitResultDecision(t *testing.T) {
	t.Parallel()

	fit := FitResult{Beta0: 1, Beta1: 2, Beta2: -3}
	got := fit.Decision(Point{X1: 2, X2: 1})
	if got != 2 {
		t.Errorf("Decision = %v, want 2", got)
	}
}

func TestLinspace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end float64
		n          int
		want       []float64
	}{
		{
			name:  "default sweep endpoints",
			start: 0.25, end: 2.0, n: 8,
			want: []float64{0.25, 0.5, 0.75, 1.0, 1.25, 1.5, 1.75, 2.0},
		},
		{
			name:  "single step",
			start: 1.5, end: 9.0, n: 1,
			want: []float64{1.5},
		},
		{
			name:  "two steps",
			start: 0, end: 1, n: 2,
			want: []float64{0, 1},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Linspace(tt.start, tt.end, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("got[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLinspaceStrictlyIncreasing(t *testing.T) {
	t.Parallel()

	got := Linspace(0.25, 2.0, 8)
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Errorf("values not strictly increasing at index %d: %v", i, got)
		}
	}
	if got[len(got)-1] != 2.0 {
		t.Errorf("endpoint = %v, want exactly 2.0", got[len(got)-1])
	}
}

func TestFieldGrid(t *testing.T) {
	t.Parallel()

	f := NewField(Point{0, 0}, Point{2, 4}, 3)

	c, r := f.Dims()
	if c != 3 || r != 3 {
		t.Fatalf("Dims = (%d, %d), want (3, 3)", c, r)
	}
	if f.X(1) != 1 {
		t.Errorf("X(1) = %v, want 1", f.X(1))
	}
	if f.Y(2) != 4 {
		t.Errorf("Y(2) = %v, want 4", f.Y(2))
	}

	pts := f.GridPoints()
	if len(pts) != 9 {
		t.Fatalf("GridPoints len = %d, want 9", len(pts))
	}
	// Row-major order: node (c=2, r=1) sits at index 1*3+2.
	if pts[5] != (Point{X1: 2, X2: 2}) {
		t.Errorf("pts[5] = %+v, want {2 2}", pts[5])
	}

	f.Probs[5] = 0.9
	if f.At(2, 1) != 0.9 {
		t.Errorf("At(2,1) = %v, want 0.9", f.At(2, 1))
	}
	if f.Max() != 0.9 {
		t.Errorf("Max = %v, want 0.9", f.Max())
	}
}
