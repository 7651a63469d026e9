package model

// FitResult holds the additive linear parameters of a fitted
// probabilistic binary classifier. The decision boundary is the zero
// level-set of Beta0 + Beta1*x1 + Beta2*x2.
//
// Invariant: Beta2 != 0 is required to express the boundary in
// slope-intercept form; callers must go through boundary.Line rather
// than dividing directly.
type FitResult struct {
	// Beta0 is the intercept term.
	Beta0 float64

	// Beta1 is the coefficient for the x1 axis.
	Beta1 float64

	// Beta2 is the coefficient for the x2 axis.
	Beta2 float64
}

// Decision evaluates the linear decision function at p.
// Positive values fall on the class-1 side of the boundary.
func (f FitResult) Decision(p Point) float64 {
	return f.Beta0 + f.Beta1*p.X1 + f.Beta2*p.X2
}
