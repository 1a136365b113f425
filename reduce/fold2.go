package reduce

import "github.com/katalvlaran/vcbr/vcgraph"

// Fold2 applies the degree-2 fold reduction: for an
// undecided v with exactly two undecided neighbors u0, u1, either u0 and
// u1 already dominate v (u0-u1 is an edge, so v is fixed to 0 and u0, u1
// to 1), or v,
// u0, u1 are folded into a single contracted vertex (reusing u0's slot)
// whose adjacency is (N(u0) ∪ N(u1)) \ {v, u0, u1}.
func Fold2(st *vcgraph.State) bool {
	progressed := false

	for v := 0; v < st.G.N; v++ {
		if st.S[v] != vcgraph.Undecided || st.UndecidedDegree(v) != 2 {
			continue
		}
		nbrs := st.UndecidedNeighbors(v)
		u0, u1 := int(nbrs[0]), int(nbrs[1])

		if st.HasUndecidedEdge(u0, u1) {
			st.Fix(v, vcgraph.Out)
			st.Fix(u0, vcgraph.In)
			st.Fix(u1, vcgraph.In)
			progressed = true

			continue
		}

		foldTriple(st, v, u0, u1)
		progressed = true
	}

	return progressed
}

// foldTriple performs one deg-2 fold: u0 is reused as the contracted
// representative, v and u1 are removed, and every other undecided
// neighbor of u1 has u1 replaced by u0 in its adjacency list.
func foldTriple(st *vcgraph.State, v, u0, u1 int) {
	merged := intSliceUnion(st, u0, u1, v)

	// Neighbors of u1 (other than v, u0) must now point at u0 instead.
	rebound := []int{u0}
	newAdj := [][]int32{toInt32(merged)}
	for _, w32 := range st.G.Adj[u1] {
		w := int(w32)
		if w == v || w == u0 || st.S[w] != vcgraph.Undecided {
			continue
		}
		rebound = append(rebound, w)
		newAdj = append(newAdj, replaceNeighbor(st.G.Adj[w], u1, u0))
	}

	st.PushFold([]int{v}, []int{u1}, rebound, newAdj)
}

// intSliceUnion computes (N(u0) ∪ N(u1)) \ {v, u0, u1} restricted to
// undecided vertices.
func intSliceUnion(st *vcgraph.State, u0, u1, v int) []int {
	seen := map[int]bool{v: true, u0: true, u1: true}
	out := make([]int, 0, len(st.G.Adj[u0])+len(st.G.Adj[u1]))
	for _, w32 := range st.G.Adj[u0] {
		w := int(w32)
		if st.S[w] == vcgraph.Undecided && !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	for _, w32 := range st.G.Adj[u1] {
		w := int(w32)
		if st.S[w] == vcgraph.Undecided && !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}

	return out
}

// replaceNeighbor returns a copy of adj with oldN removed and newN added
// (if not already present).
func replaceNeighbor(adj []int32, oldN, newN int) []int32 {
	out := make([]int32, 0, len(adj))
	hasNew := false
	for _, x := range adj {
		switch int(x) {
		case oldN:
			continue
		case newN:
			hasNew = true
			out = append(out, x)
		default:
			out = append(out, x)
		}
	}
	if !hasNew {
		out = append(out, int32(newN))
	}

	return out
}

func toInt32(xs []int) []int32 {
	out := make([]int32, len(xs))
	for i, x := range xs {
		out[i] = int32(x)
	}

	return out
}
