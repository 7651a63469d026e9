// Package main provides the entry point for the shiftlab CLI.
//
// shiftlab studies how the separation between two synthetic 2-D
// clusters shapes a fitted linear classifier: its decision boundary,
// its confidence margin, and its training loss.
//
// Usage:
//
//	shiftlab run
//	shiftlab run --start 0.25 --end 2.0 --steps 8
//
// See --help for all available options.
package main

// main is the entry point for shiftlab.
func main() {
	Execute()
}
