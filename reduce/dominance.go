package reduce

import (
	"github.com/katalvlaran/vcbr/intset"
	"github.com/katalvlaran/vcbr/vcgraph"
)

// Dominance fixes v to the cover whenever N[v] ⊇ N[u] for some undecided
// neighbor u: v's closed neighborhood already
// covers every edge u's closed neighborhood would, so including v is
// never worse than including u.
func Dominance(st *vcgraph.State) bool {
	closed := intset.New(st.G.NSlots)
	progressed := false

	for v := 0; v < st.G.N; v++ {
		if st.S[v] != vcgraph.Undecided {
			continue
		}
		closed.Clear()
		closed.Add(v)
		for _, w32 := range st.G.Adj[v] {
			if w := int(w32); st.S[w] == vcgraph.Undecided {
				closed.Add(w)
			}
		}

		for _, u32 := range st.G.Adj[v] {
			u := int(u32)
			if st.S[u] != vcgraph.Undecided {
				continue
			}
			if dominated(st, u, closed) {
				st.Fix(v, vcgraph.In)
				progressed = true

				break
			}
		}
	}

	return progressed
}

// dominated reports whether N[u] (restricted to undecided vertices) is a
// subset of the already-built closed neighborhood set.
func dominated(st *vcgraph.State, u int, closed *intset.Set) bool {
	if !closed.Contains(u) {
		return false
	}
	for _, x32 := range st.G.Adj[u] {
		x := int(x32)
		if st.S[x] == vcgraph.Undecided && !closed.Contains(x) {
			return false
		}
	}

	return true
}
