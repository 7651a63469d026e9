// Package classifier fits the linear probabilistic binary classifier
// the experiments measure.
//
// The model is L2-regularized logistic regression solved by iteratively
// reweighted least squares on gonum matrices. It exposes exactly the
// contract the rest of the system depends on: additive linear
// parameters (beta0 + beta1*x1 + beta2*x2) and class-1 probability
// predictions, so the decision boundary is always the zero level-set of
// a linear function.
package classifier
