package classifier

import "errors"

// Fit errors.
var (
	// ErrSingleClass is returned when the dataset does not contain
	// both classes. A one-class (or empty) dataset has no decision
	// boundary to fit.
	ErrSingleClass = errors.New("cannot fit classifier: dataset does not contain both classes")

	// ErrNotConverged is returned when the solver exhausts its
	// iteration budget. With the ridge penalty in place this only
	// happens on pathological inputs, but it must never be silent.
	ErrNotConverged = errors.New("classifier fit did not converge")
)
