// File: parse.go
// Role: ParseFile — tries the edge-list parser first, falling back to
// DIMACS automatically on failure; both read from an in-memory copy of
// the file so a failed first attempt doesn't need the source to support
// seeking.
package vcio

import (
	"bytes"
	"fmt"
	"os"

	"github.com/katalvlaran/vcbr/vcgraph"
)

// ParseFile loads g from path, accepting either SNAP edge-list or DIMACS
// "p edge"/"e" format. Edge-list is tried first; if it fails, DIMACS is
// tried against the same bytes. If neither accepts the input,
// ErrParseFailed wraps both underlying errors.
func ParseFile(path string) (*vcgraph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vcio: %w", err)
	}

	g, edgeListErr := parseEdgeList(bytes.NewReader(data))
	if edgeListErr == nil {
		return g, nil
	}

	g, dimacsErr := parseDIMACS(bytes.NewReader(data))
	if dimacsErr == nil {
		return g, nil
	}

	return nil, fmt.Errorf("%w: edge-list: %v; dimacs: %v", ErrParseFailed, edgeListErr, dimacsErr)
}
