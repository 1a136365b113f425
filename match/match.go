package match

import "github.com/katalvlaran/vcbr/vcgraph"

const infLevel = 1 << 30

// Maintain extends st.Flow to a maximum matching of the bipartite
// duplicate graph over the currently-undecided vertices.
//
// It is safe to call repeatedly: each call first confirms no matched
// pair references a decided vertex (those are already dropped eagerly
// by vcgraph.State.Fix / the modification push/pop path, so this is a
// cheap no-op scan in the common case), then augments until no
// augmenting path remains.
//
// Complexity: O(E*sqrt(V)) total across the augmentation rounds of one
// call.
func Maintain(st *vcgraph.State) {
	dropDecided(st)

	n := st.G.N
	level := make([]int, n)
	visited := make([]bool, n)
	for {
		if !bfsLevels(st, level) {
			return
		}
		progressed := false
		for i := range visited {
			visited[i] = false
		}
		for u := 0; u < n; u++ {
			if st.S[u] == vcgraph.Undecided && st.Flow.Out[u] == -1 {
				if dfsAugment(st, u, level, visited) {
					progressed = true
				}
			}
		}
		if !progressed {
			return
		}
	}
}

// dropDecided defensively clears any flow entry whose vertex is no
// longer undecided. Reductions always route assignment changes through
// vcgraph.State.Fix (which already does this eagerly), so in practice
// this loop finds nothing; it exists to keep Maintain correct even if a
// future caller mutates S by a path other than Fix.
func dropDecided(st *vcgraph.State) {
	for v := 0; v < st.G.N; v++ {
		if st.S[v] == vcgraph.Undecided {
			continue
		}
		if st.Flow.Out[v] != -1 {
			u := st.Flow.Out[v]
			st.Flow.Out[v] = -1
			st.Flow.In[u] = -1
		}
		if st.Flow.In[v] != -1 {
			u := st.Flow.In[v]
			st.Flow.In[v] = -1
			st.Flow.Out[u] = -1
		}
	}
}

// bfsLevels layers the residual graph from every unmatched L-vertex,
// reporting whether at least one unmatched R-vertex was reached.
func bfsLevels(st *vcgraph.State, level []int) bool {
	n := st.G.N
	for i := range level {
		level[i] = infLevel
	}
	queue := make([]int, 0, n)
	for u := 0; u < n; u++ {
		if st.S[u] == vcgraph.Undecided && st.Flow.Out[u] == -1 {
			level[u] = 0
			queue = append(queue, u)
		}
	}

	found := false
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, w32 := range st.G.Adj[u] {
			w := int(w32)
			if st.S[w] != vcgraph.Undecided {
				continue
			}
			matchedL := st.Flow.In[w] // l-partner of r_w, or -1 if r_w unmatched
			if matchedL == -1 {
				found = true

				continue
			}
			if level[matchedL] == infLevel {
				level[matchedL] = level[u] + 1
				queue = append(queue, matchedL)
			}
		}
	}

	return found
}

// dfsAugment searches the level graph for a vertex-disjoint augmenting
// path starting at the free L-vertex u, flipping matched edges along the
// way on success.
func dfsAugment(st *vcgraph.State, u int, level []int, visited []bool) bool {
	visited[u] = true
	for _, w32 := range st.G.Adj[u] {
		w := int(w32)
		if st.S[w] != vcgraph.Undecided {
			continue
		}
		matchedL := st.Flow.In[w]
		if matchedL == -1 {
			st.Flow.Out[u] = w
			st.Flow.In[w] = u

			return true
		}
		if !visited[matchedL] && level[matchedL] == level[u]+1 {
			if dfsAugment(st, matchedL, level, visited) {
				st.Flow.Out[u] = w
				st.Flow.In[w] = u

				return true
			}
		}
	}

	return false
}

// Size reports the current matching's cardinality (number of matched
// left-vertices among the undecided set).
func Size(st *vcgraph.State) int {
	n := 0
	for v := 0; v < st.G.N; v++ {
		if st.S[v] == vcgraph.Undecided && st.Flow.Out[v] != -1 {
			n++
		}
	}

	return n
}
