package reduce

import "github.com/katalvlaran/vcbr/vcgraph"

// deskMaxNeighborhood bounds |N({v,w}) ∪ N({u1,u2})| for the desk
// reduction to fire — the concrete threshold chosen for this
// implementation; see DESIGN.md.
const deskMaxNeighborhood = 8

// Desk applies the desk reduction: a 4-cycle
// v–u1–w–u2–v where all four vertices have undecided degree 3 or 4 and
// the combined outside neighborhood is small, recorded as
// Alternative({v,w},{u1,u2}).
func Desk(st *vcgraph.State) bool {
	progressed := false
	for v := 0; v < st.G.N; v++ {
		if tryDeskAt(st, v) {
			progressed = true
		}
	}

	return progressed
}

func tryDeskAt(st *vcgraph.State, v int) bool {
	if st.S[v] != vcgraph.Undecided || !deskDegree(st, v) {
		return false
	}
	nbrs := st.UndecidedNeighbors(v)
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			u1, u2 := int(nbrs[i]), int(nbrs[j])
			if !deskDegree(st, u1) || !deskDegree(st, u2) {
				continue
			}
			w := findCommonOther(st, u1, u2, v)
			if w == -1 || !deskDegree(st, w) {
				continue
			}
			if neighborhoodUnionSize(st, v, w, u1, u2) > deskMaxNeighborhood {
				continue
			}
			applyAlternativeQuad(st, v, w, u1, u2)

			return true
		}
	}

	return false
}

func deskDegree(st *vcgraph.State, v int) bool {
	d := st.UndecidedDegree(v)

	return d == 3 || d == 4
}

// findCommonOther finds w != v undecided with undecided edges to both
// u1 and u2, completing the 4-cycle v–u1–w–u2–v.
func findCommonOther(st *vcgraph.State, u1, u2, v int) int {
	for _, x32 := range st.G.Adj[u1] {
		x := int(x32)
		if x == v || st.S[x] != vcgraph.Undecided {
			continue
		}
		if st.HasUndecidedEdge(x, u2) {
			return x
		}
	}

	return -1
}

func neighborhoodUnionSize(st *vcgraph.State, v, w, u1, u2 int) int {
	core := map[int]bool{v: true, w: true, u1: true, u2: true}
	seen := map[int]bool{}
	for _, c := range []int{v, w, u1, u2} {
		for _, x32 := range st.G.Adj[c] {
			x := int(x32)
			if st.S[x] == vcgraph.Undecided && !core[x] {
				seen[x] = true
			}
		}
	}

	return len(seen)
}

// applyAlternativeQuad builds and pushes Alternative({v,w},{u1,u2}).
func applyAlternativeQuad(st *vcgraph.State, v, w, u1, u2 int) {
	core := []int{v, w, u1, u2}
	aPrime := neighborsExcluding(st, []int{v, w}, core)
	bPrime := neighborsExcluding(st, []int{u1, u2}, core)

	vs := append(append([]int{}, aPrime...), bPrime...)
	newAdj := make([][]int32, len(vs))
	for i, x := range vs {
		newAdj[i] = filterOutMulti(st.G.Adj[x], core)
	}

	st.PushAlternative([]int{v, w}, []int{u1, u2}, aPrime, bPrime, vs, newAdj)
}

func neighborsExcluding(st *vcgraph.State, group []int, exclude []int) []int {
	ex := map[int]bool{}
	for _, e := range exclude {
		ex[e] = true
	}
	seen := map[int]bool{}
	var out []int
	for _, g := range group {
		for _, x32 := range st.G.Adj[g] {
			x := int(x32)
			if st.S[x] == vcgraph.Undecided && !ex[x] && !seen[x] {
				seen[x] = true
				out = append(out, x)
			}
		}
	}

	return out
}

func filterOutMulti(adj []int32, exclude []int) []int32 {
	ex := map[int]bool{}
	for _, e := range exclude {
		ex[e] = true
	}
	out := make([]int32, 0, len(adj))
	for _, x := range adj {
		if ex[int(x)] {
			continue
		}
		out = append(out, x)
	}

	return out
}
