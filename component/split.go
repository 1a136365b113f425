package component

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/vcbr/vcgraph"
)

// Split partitions the currently-undecided vertices of st into connected
// components of the residual graph via BFS. A dense bitset is the right
// tool here — unlike intset.Set, a component
// scan visits every vertex exactly once per call and never needs
// incremental add/remove, so there is no amortized-clear benefit to give
// up by not using the timestamp design.
func Split(st *vcgraph.State) [][]int {
	n := st.G.N
	visited := bitset.New(uint(n))
	var comps [][]int
	for v := 0; v < n; v++ {
		if st.S[v] != vcgraph.Undecided || visited.Test(uint(v)) {
			continue
		}
		comps = append(comps, bfsComponent(st, v, visited))
	}

	return comps
}

func bfsComponent(st *vcgraph.State, start int, visited *bitset.BitSet) []int {
	visited.Set(uint(start))
	queue := []int{start}
	comp := []int{start}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, w32 := range st.G.Adj[u] {
			w := int(w32)
			if st.S[w] != vcgraph.Undecided || visited.Test(uint(w)) {
				continue
			}
			visited.Set(uint(w))
			queue = append(queue, w)
			comp = append(comp, w)
		}
	}

	return comp
}

// ShouldSplit reports whether component decomposition should run this
// round: more than one component always qualifies; a single
// component only qualifies once the residual has shrunk by at least
// shrinkFactor relative to originSize, and only for solvers spawned on an
// instance of at least minOriginSize vertices.
func ShouldSplit(comps [][]int, originSize, remaining, minOriginSize int, shrinkFactor float64) bool {
	if len(comps) > 1 {
		return true
	}
	if originSize < minOriginSize || remaining == 0 {
		return false
	}

	return float64(originSize) >= shrinkFactor*float64(remaining)
}
