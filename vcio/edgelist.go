package vcio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/vcbr/vcgraph"
)

// parseEdgeList reads SNAP-style edge-list text: "#"-prefixed comments and
// blank lines are skipped; every other line must be exactly "u v" with
// 1-based vertex ids.
func parseEdgeList(r io.Reader) (*vcgraph.Graph, error) {
	m := newIDMapper()
	sc := bufio.NewScanner(r)
	seenEdge := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("vcio: edge-list: expected \"u v\", got %q", line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("vcio: edge-list: %w", err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("vcio: edge-list: %w", err)
		}
		m.addEdge(u, v)
		seenEdge = true
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("vcio: edge-list: %w", err)
	}
	if !seenEdge {
		return nil, ErrEmptyGraph
	}

	return m.build(), nil
}
