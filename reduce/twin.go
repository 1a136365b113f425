package reduce

import "github.com/katalvlaran/vcbr/vcgraph"

// Twin applies the twin reduction: degree-3 vertices
// v, w sharing the same undecided neighborhood S={a,b,c}. If S is
// independent, {v,w,S} is folded (cost gap between "cover {v,w}" and
// "cover S" is exactly 1); otherwise an edge inside S means some minimum
// cover contains all of S, so v and w are fixed out and S is fixed in.
func Twin(st *vcgraph.State) bool {
	groups := make(map[[3]int][]int)
	for v := 0; v < st.G.N; v++ {
		if st.S[v] != vcgraph.Undecided || st.UndecidedDegree(v) != 3 {
			continue
		}
		nb := st.UndecidedNeighbors(v)
		key := [3]int{int(nb[0]), int(nb[1]), int(nb[2])}
		key = sorted3(key)
		groups[key] = append(groups[key], v)
	}

	progressed := false
	for key, vs := range groups {
		if len(vs) < 2 {
			continue
		}
		v, w := vs[0], vs[1]
		if st.S[v] != vcgraph.Undecided || st.S[w] != vcgraph.Undecided {
			continue
		}
		S := [3]int{key[0], key[1], key[2]}
		independent := !st.HasUndecidedEdge(S[0], S[1]) &&
			!st.HasUndecidedEdge(S[0], S[2]) &&
			!st.HasUndecidedEdge(S[1], S[2])

		if independent {
			foldTwin(st, v, w, S)
		} else {
			st.Fix(v, vcgraph.Out)
			st.Fix(w, vcgraph.Out)
			for _, x := range S {
				if st.S[x] == vcgraph.Undecided {
					st.Fix(x, vcgraph.In)
				}
			}
		}
		progressed = true
	}

	return progressed
}

func sorted3(k [3]int) [3]int {
	a, b, c := k[0], k[1], k[2]
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}

	return [3]int{a, b, c}
}

// foldTwin folds v, w (opposite group) and donors S[1], S[2] (same
// group as representative S[0]) into representative S[0].
func foldTwin(st *vcgraph.State, v, w int, S [3]int) {
	a, b, c := S[0], S[1], S[2]
	exclude := map[int]bool{v: true, w: true, a: true, b: true, c: true}

	merged := make([]int, 0, len(st.G.Adj[a])+len(st.G.Adj[b])+len(st.G.Adj[c]))
	seen := map[int]bool{}
	collect := func(u int) {
		for _, x32 := range st.G.Adj[u] {
			x := int(x32)
			if st.S[x] == vcgraph.Undecided && !exclude[x] && !seen[x] {
				seen[x] = true
				merged = append(merged, x)
			}
		}
	}
	collect(a)
	collect(b)
	collect(c)

	rebound := []int{a}
	newAdj := [][]int32{toInt32(merged)}

	for _, donor := range []int{b, c} {
		for _, x32 := range st.G.Adj[donor] {
			x := int(x32)
			if exclude[x] || st.S[x] != vcgraph.Undecided {
				continue
			}
			already := false
			for _, r := range rebound {
				if r == x {
					already = true

					break
				}
			}
			if already {
				continue
			}
			rebound = append(rebound, x)
			adj := st.G.Adj[x]
			adj = replaceNeighbor(adj, b, a)
			adj = replaceNeighbor(adj, c, a)
			newAdj = append(newAdj, adj)
		}
	}

	// The opposite group {v,w} and the same group {b,c} both have size 2,
	// so reverse()'s current_value = Add + s[rebound[0]] needs Add=2 to
	// match the true cost of either outcome (cover {v,w} costs 2, cover
	// {a,b,c} costs 3) — PushFold's hardcoded Add=1 is only right for
	// deg-2 fold's size-1 groups.
	st.PushFoldWeighted(2, []int{v, w}, []int{b, c}, rebound, newAdj)
}
