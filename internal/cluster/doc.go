// Package cluster synthesizes the labeled two-cluster datasets the
// experiments are run against.
//
// Both clusters are drawn from the same correlated bivariate normal
// distribution; the second cluster is then translated diagonally by the
// shift distance under study. Generation is driven by an explicit seed
// so identical parameters always produce bit-identical datasets.
package cluster
