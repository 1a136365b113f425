package branch

import (
	"sort"

	"github.com/katalvlaran/vcbr/vcgraph"
)

// Mirrors returns every mirror of v: an undecided
// vertex m at distance exactly 2 from v whose non-v neighborhood
// satisfies N(v)\N(m) being a clique. Any such m can be fixed alongside
// v in Child A without losing optimality.
func Mirrors(st *vcgraph.State, v int) []int {
	direct := map[int]bool{v: true}
	for _, w32 := range st.G.Adj[v] {
		direct[int(w32)] = true
	}

	distance2 := map[int]bool{}
	for _, w32 := range st.G.Adj[v] {
		w := int(w32)
		if st.S[w] != vcgraph.Undecided {
			continue
		}
		for _, x32 := range st.G.Adj[w] {
			if x := int(x32); st.S[x] == vcgraph.Undecided && !direct[x] {
				distance2[x] = true
			}
		}
	}

	cands := make([]int, 0, len(distance2))
	for m := range distance2 {
		cands = append(cands, m)
	}
	sort.Ints(cands)

	nv := st.UndecidedNeighbors(v)
	var out []int
	for _, m := range cands {
		if isCliqueDiff(st, nv, m) {
			out = append(out, m)
		}
	}

	return out
}

// isCliqueDiff reports whether N(v)\N(m) forms a clique.
func isCliqueDiff(st *vcgraph.State, nv []int32, m int) bool {
	nm := map[int]bool{}
	for _, x32 := range st.G.Adj[m] {
		nm[int(x32)] = true
	}

	var diff []int
	for _, x32 := range nv {
		if x := int(x32); !nm[x] {
			diff = append(diff, x)
		}
	}
	for i := 0; i < len(diff); i++ {
		for j := i + 1; j < len(diff); j++ {
			if !st.HasUndecidedEdge(diff[i], diff[j]) {
				return false
			}
		}
	}

	return true
}
