// Package experiment orchestrates the shift-distance sweep.
//
// For each linearly spaced distance the runner synthesizes a dataset,
// fits the classifier, samples a probability field over the padded data
// bounds, derives boundary geometry and the margin width, and appends
// one record. A failure at any stage aborts the run with the offending
// distance attached: every failure is a deterministic function of the
// parameters, so retrying cannot help, and downstream trend plots
// assume exactly one record per requested distance.
//
// Iterations share no state besides the result slice, so the runner can
// execute them concurrently; records are written to their index slot so
// distance order is preserved regardless of completion order.
package experiment
