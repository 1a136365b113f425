// File: nt.go
// Role: Nemhauser–Trotter half-integral classification on top of a
// maintained matching, feeding both the LP reduction and the LP bound.
//
// ZeroCore/OneCore give the direct single-vertex rule ("l_v matched,
// r_v unmatched" and its mirror). ZeroClosure/OneClosure extend that by
// alternating-path reachability from the core set, which is exactly the
// Dulmage–Mendelsohn argument that any strongly connected component of
// the deficiency graph has this shape entirely — a vertex reachable
// from a zero-core vertex by an alternating path forms, together with
// the path, a single-source component of the same deficient shape, so
// reachability and SCC membership agree here without needing a full
// Tarjan pass.
package match

import "github.com/katalvlaran/vcbr/vcgraph"

// ZeroCore returns undecided vertices whose left-copy is matched but
// right-copy is not: the direct Nemhauser–Trotter zero rule.
func ZeroCore(st *vcgraph.State) []int {
	var out []int
	for v := 0; v < st.G.N; v++ {
		if st.S[v] == vcgraph.Undecided && st.Flow.Out[v] != -1 && st.Flow.In[v] == -1 {
			out = append(out, v)
		}
	}

	return out
}

// OneCore returns undecided vertices whose right-copy is matched but
// left-copy is not: the mirror rule.
func OneCore(st *vcgraph.State) []int {
	var out []int
	for v := 0; v < st.G.N; v++ {
		if st.S[v] == vcgraph.Undecided && st.Flow.In[v] != -1 && st.Flow.Out[v] == -1 {
			out = append(out, v)
		}
	}

	return out
}

// ZeroClosure extends core (as returned by ZeroCore) forward along
// alternating paths: from l_u follow any residual edge to r_w (forward,
// unmatched-or-not), then from r_w back along its match to l_x. Every
// vertex reached this way is fixable to 0 by the same argument as the
// core rule.
func ZeroClosure(st *vcgraph.State, core []int) []int {
	n := st.G.N
	seen := make([]bool, n)
	queue := make([]int, 0, len(core))
	for _, v := range core {
		if !seen[v] {
			seen[v] = true
			queue = append(queue, v)
		}
	}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, w32 := range st.G.Adj[u] {
			w := int(w32)
			if st.S[w] != vcgraph.Undecided {
				continue
			}
			// r_w reached; step back to its matched left vertex, if any.
			x := st.Flow.In[w]
			if x == -1 || seen[x] {
				continue
			}
			seen[x] = true
			queue = append(queue, x)
		}
	}

	return queue
}

// OneClosure is ZeroClosure's mirror: extends core backward along
// alternating paths using the matched-forward / residual-backward step.
func OneClosure(st *vcgraph.State, core []int) []int {
	n := st.G.N
	seen := make([]bool, n)
	queue := make([]int, 0, len(core))
	for _, v := range core {
		if !seen[v] {
			seen[v] = true
			queue = append(queue, v)
		}
	}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, w32 := range st.G.Adj[u] {
			w := int(w32)
			if st.S[w] != vcgraph.Undecided {
				continue
			}
			x := st.Flow.Out[w]
			if x == -1 || seen[x] {
				continue
			}
			seen[x] = true
			queue = append(queue, x)
		}
	}

	return queue
}
