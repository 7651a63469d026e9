// Package log provides slog handler utilities for experiment logging.
//
// Experiment iterations log many float-valued attributes (distances,
// coefficients, losses). The RunHandler wrapper formats those compactly
// and stamps every record with run-scoped attributes, so a sweep's log
// output stays scannable at debug level.
package log
