package vcio

import "errors"

// ErrParseFailed is returned when neither the edge-list nor the DIMACS
// parser can make sense of an input file.
var ErrParseFailed = errors.New("vcio: no parser accepted the input")

// ErrEmptyGraph is returned when a file parses cleanly but declares zero
// vertices.
var ErrEmptyGraph = errors.New("vcio: graph has no vertices")
