// Package model defines the data types shared across the experiment
// pipeline: labeled 2-D datasets, fitted classifier parameters, sampled
// probability fields, and the per-distance experiment records consumed
// by the renderers.
//
// All types in this package are plain data holders. They are created
// once per experiment iteration and never mutated afterwards, except for
// the ordered accumulation of records into a Result.
package model
