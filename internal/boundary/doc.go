// Package boundary derives interpretable geometry from a fitted
// classifier: the decision boundary in slope-intercept form, the
// training log-loss, and a contour-based margin-width statistic.
//
// The margin width is a proxy for the classifier's confidence gap that
// needs only probability outputs, not classifier internals: it is the
// minimum distance between the class-1 iso-probability contour at a
// confidence level and the class-0 contour at the complementary level.
// Contour extraction is kept behind the narrow ContourAt function so
// the margin algorithm is testable on hand-built fields.
package boundary
