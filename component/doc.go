// Package component splits the residual graph into connected components
// and drives their independent solution via a caller-supplied solve
// callback. It has no dependency on package solver — the
// callback indirection is what lets solver own the recursive driver
// while component owns only the splitting/translation/merge mechanics,
// avoiding an import cycle between the two.
package component
