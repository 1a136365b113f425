package reduce

import "github.com/katalvlaran/vcbr/vcgraph"

// Funnel applies the funnel reduction: an undecided
// vertex v of undecided-degree ≥ 2 with a neighbor u such that N(v)\{u}
// is a clique. Exactly one of {v, u} ends up in the cover; the solver
// records that as an Alternative({v},{u}) and removes v, u from the
// reduced graph (their remaining neighbors A′=N(v)\{u}, B′=N(u)\{v} keep
// whatever edges they already had among themselves — the clique
// structure of A′ is preserved as-is, nothing new needs to be inferred).
func Funnel(st *vcgraph.State) bool {
	progressed := false
	for v := 0; v < st.G.N; v++ {
		if st.S[v] != vcgraph.Undecided || st.UndecidedDegree(v) < 2 {
			continue
		}
		nbrs := st.UndecidedNeighbors(v)
		for _, u32 := range nbrs {
			u := int(u32)
			if isCliqueExcept(st, nbrs, u) {
				applyAlternativePair(st, v, u)
				progressed = true

				break
			}
		}
	}

	return progressed
}

// isCliqueExcept reports whether nbrs \ {except} forms an undecided
// clique.
func isCliqueExcept(st *vcgraph.State, nbrs []int32, except int) bool {
	rest := make([]int, 0, len(nbrs))
	for _, x32 := range nbrs {
		if x := int(x32); x != except {
			rest = append(rest, x)
		}
	}
	for i := 0; i < len(rest); i++ {
		for j := i + 1; j < len(rest); j++ {
			if !st.HasUndecidedEdge(rest[i], rest[j]) {
				return false
			}
		}
	}

	return true
}

// applyAlternativePair builds and pushes Alternative({a},{b}) (j=1),
// used by both Funnel and the degenerate j=1 case; Desk builds the j=2
// case directly.
func applyAlternativePair(st *vcgraph.State, a, b int) {
	aPrime := exclude(st.UndecidedNeighbors(a), b)
	bPrime := exclude(st.UndecidedNeighbors(b), a)

	vs := append(append([]int{}, aPrime...), bPrime...)
	newAdj := make([][]int32, len(vs))
	for i, w := range vs {
		newAdj[i] = filterOut(st.G.Adj[w], a, b)
	}

	st.PushAlternative([]int{a}, []int{b}, aPrime, bPrime, vs, newAdj)
}

func exclude(nbrs []int32, except int) []int {
	out := make([]int, 0, len(nbrs))
	for _, x32 := range nbrs {
		if x := int(x32); x != except {
			out = append(out, x)
		}
	}

	return out
}

// filterOut returns a copy of adj with both a and b removed.
func filterOut(adj []int32, a, b int) []int32 {
	out := make([]int32, 0, len(adj))
	for _, x := range adj {
		if int(x) == a || int(x) == b {
			continue
		}
		out = append(out, x)
	}

	return out
}
