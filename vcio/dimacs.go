package vcio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/vcbr/vcgraph"
)

// parseDIMACS reads the DIMACS "p edge"/"e" graph format: "c" comment
// lines, one "p edge n m" header, then m "e u v" lines with 1-based
// vertex ids. The declared n/m are advisory — the actual vertex and edge
// set is whatever the "e" lines describe.
func parseDIMACS(r io.Reader) (*vcgraph.Graph, error) {
	m := newIDMapper()
	sc := bufio.NewScanner(r)
	sawHeader := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if len(fields) != 4 || fields[1] != "edge" {
				return nil, fmt.Errorf("vcio: dimacs: malformed header %q", line)
			}
			sawHeader = true
		case "e":
			if len(fields) != 3 {
				return nil, fmt.Errorf("vcio: dimacs: malformed edge line %q", line)
			}
			u, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("vcio: dimacs: %w", err)
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("vcio: dimacs: %w", err)
			}
			m.addEdge(u, v)
		default:
			return nil, fmt.Errorf("vcio: dimacs: unrecognized line %q", line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("vcio: dimacs: %w", err)
	}
	if !sawHeader {
		return nil, fmt.Errorf("vcio: dimacs: missing \"p edge\" header")
	}
	if len(m.internalToExternal) == 0 {
		return nil, ErrEmptyGraph
	}

	return m.build(), nil
}
