// Package report formats a solver.Result as tab-aligned key/value lines
// on standard output: run status, timing, branch/reduction/bound
// counters, and an optional per-vertex solution line.
package report
