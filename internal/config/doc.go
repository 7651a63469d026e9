// Package config holds the experiment sweep parameters, their defaults,
// and validation.
//
// Configuration is populated from CLI flags and an optional YAML file,
// then passed through the application by dependency injection rather
// than global state. Validation happens once, before any computation
// begins, so every parameter error is reported up front.
package config
