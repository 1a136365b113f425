package branch

import "github.com/katalvlaran/vcbr/vcgraph"

// ChildA applies the "v in cover" branch: fixes v
// and every detected mirror to In, then pushes a packing constraint over
// v's (pre-fix) neighborhood — bound 2 if any mirror was found, else 1.
func ChildA(st *vcgraph.State, v int, mirrors []int) {
	nv := st.UndecidedNeighbors(v)
	members := make([]int, len(nv))
	for i, x := range nv {
		members[i] = int(x)
	}

	st.Fix(v, vcgraph.In)
	for _, m := range mirrors {
		if st.S[m] == vcgraph.Undecided {
			st.Fix(m, vcgraph.In)
		}
	}

	bound := 1
	if len(mirrors) > 0 {
		bound = 2
	}
	st.AddPacking(bound, members)
}

// ChildB applies the "v out of cover" branch: every
// undecided neighbor of v is forced into the cover. When no mirrors were
// found in Child A, each forced neighbor u additionally gets a packing
// constraint over N(u)\N[v] — bound 1, or 2 if a strong witness triangle
// v-u-w is found.
func ChildB(st *vcgraph.State, v int, hadMirrors bool) {
	nv := st.UndecidedNeighbors(v)
	strong := make(map[int]bool, len(nv))
	for _, u32 := range nv {
		strong[int(u32)] = strongWitness(st, v, int(u32))
	}
	st.Fix(v, vcgraph.Out)

	closed := make(map[int]bool, len(nv)+1)
	closed[v] = true
	for _, x := range nv {
		closed[int(x)] = true
	}

	for _, u32 := range nv {
		u := int(u32)
		if st.S[u] != vcgraph.Undecided {
			continue
		}
		members := excludeClosed(st.G.Adj[u], closed)
		st.Fix(u, vcgraph.In)
		if hadMirrors {
			continue
		}
		bound := 1
		if strong[u] {
			bound = 2
		}
		st.AddPacking(bound, members)
	}
}

// excludeClosed returns the elements of adj not present in closed.
func excludeClosed(adj []int32, closed map[int]bool) []int {
	out := make([]int, 0, len(adj))
	for _, x32 := range adj {
		if x := int(x32); !closed[x] {
			out = append(out, x)
		}
	}

	return out
}

// strongWitness reports whether some w in N(v)\{u} is adjacent to u,
// forming a v-u-w triangle — the "right adjacency pattern" that lets the
// derived packing constraint use bound 2 instead of 1.
func strongWitness(st *vcgraph.State, v, u int) bool {
	for _, w32 := range st.G.Adj[v] {
		w := int(w32)
		if w == u || st.S[w] != vcgraph.Undecided {
			continue
		}
		if st.HasUndecidedEdge(w, u) {
			return true
		}
	}

	return false
}
