package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/vcbr/vcgraph"
)

// WriteSolution prints one "solution\t..." line: one character per
// original vertex id, for ids 1..max(VertexID). '1' marks a vertex fixed
// into the cover, '0' a vertex left out, 'x' a vertex this solver left
// undecided (never produced by a completed solve — Solve always returns
// a full assignment), '_' an id absent from the loaded graph, and '-' an
// id that belonged to a different connected component than the one
// being reported (not produced here: Decompose always merges every
// component's result before Solve returns).
func WriteSolution(w io.Writer, g *vcgraph.Graph, solution []vcgraph.Value) error {
	maxID := 0
	for _, ext := range g.VertexID {
		if ext > maxID {
			maxID = ext
		}
	}

	externalToInternal := make(map[int]int, g.N)
	for internal, ext := range g.VertexID {
		externalToInternal[ext] = internal
	}

	var sb strings.Builder
	sb.WriteString("solution\t")
	for id := 1; id <= maxID; id++ {
		internal, ok := externalToInternal[id]
		if !ok {
			sb.WriteByte('_')

			continue
		}
		sb.WriteByte(symbolFor(solution[internal]))
	}
	sb.WriteByte('\n')

	_, err := fmt.Fprint(w, sb.String())

	return err
}

func symbolFor(v vcgraph.Value) byte {
	switch v {
	case vcgraph.In:
		return '1'
	case vcgraph.Out:
		return '0'
	case vcgraph.Undecided:
		return 'x'
	default:
		return '-'
	}
}
