package reduce

import "github.com/katalvlaran/vcbr/vcgraph"

// Deg1 applies the degree-1 (and degree-0) reduction to a fixed point:
// any undecided vertex with at most one undecided neighbor is placed
// outside the cover, and that neighbor (if any) is placed inside it.
// Progress is driven by a work queue seeded from vertices whose degree
// just dropped to 0 or 1, rather than a full rescan each pass.
func Deg1(st *vcgraph.State) bool {
	n := st.G.N
	queued := make([]bool, n)
	queue := make([]int, 0, 8)

	enqueue := func(v int) {
		if st.S[v] == vcgraph.Undecided && !queued[v] && st.UndecidedDegree(v) <= 1 {
			queued[v] = true
			queue = append(queue, v)
		}
	}
	for v := 0; v < n; v++ {
		enqueue(v)
	}

	progressed := false
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		queued[v] = false
		if st.S[v] != vcgraph.Undecided || st.UndecidedDegree(v) > 1 {
			continue
		}

		nbrs := st.UndecidedNeighbors(v)
		st.Fix(v, vcgraph.Out)
		progressed = true

		if len(nbrs) == 1 {
			u := int(nbrs[0])
			if st.S[u] == vcgraph.Undecided {
				st.Fix(u, vcgraph.In)
				for _, w32 := range st.G.Adj[u] {
					enqueue(int(w32))
				}
			}
		}
	}

	return progressed
}
