package reduce

import (
	"sort"

	"github.com/katalvlaran/vcbr/intset"
	"github.com/katalvlaran/vcbr/vcgraph"
)

// Unconfined fixes v into the cover whenever it is unconfined: grow a
// confining set S from {v}; while some
// u ∈ N(S) has |N(u) \ N[S]| ≤ 1, either absorb the single witness into
// S or, on an empty difference, conclude v is unconfined. The diamond
// extension additionally looks for two outer-shell vertices sharing an
// identical two-vertex outer neighborhood with no edge between them.
func Unconfined(st *vcgraph.State) bool {
	progressed := false
	for v := 0; v < st.G.N; v++ {
		if st.S[v] != vcgraph.Undecided {
			continue
		}
		if isUnconfined(st, v) {
			members := make([]int, len(st.G.Adj[v]))
			for i, w := range st.G.Adj[v] {
				members[i] = int(w)
			}
			st.Fix(v, vcgraph.In)
			st.AddPacking(1, members)
			progressed = true
		}
	}

	return progressed
}

func isUnconfined(st *vcgraph.State, v int) bool {
	inS := intset.New(st.G.NSlots)
	inS.Add(v)
	nS := map[int]bool{}
	for _, w32 := range st.G.Adj[v] {
		if w := int(w32); st.S[w] == vcgraph.Undecided {
			nS[w] = true
		}
	}

	for {
		found := -1
		var diff []int
		cands := make([]int, 0, len(nS))
		for u := range nS {
			cands = append(cands, u)
		}
		sort.Ints(cands)
		for _, u := range cands {
			d := diffOutside(st, u, inS, nS)
			if len(d) <= 1 {
				found, diff = u, d

				break
			}
		}
		if found == -1 {
			return diamondUnconfined(st, inS, nS)
		}
		if len(diff) == 0 {
			return true
		}

		w := diff[0]
		inS.Add(w)
		delete(nS, found)
		for _, x32 := range st.G.Adj[w] {
			x := int(x32)
			if st.S[x] == vcgraph.Undecided && !inS.Contains(x) {
				nS[x] = true
			}
		}
	}
}

// diffOutside returns N(u) \ N[S] restricted to undecided vertices.
func diffOutside(st *vcgraph.State, u int, inS *intset.Set, nS map[int]bool) []int {
	var out []int
	for _, x32 := range st.G.Adj[u] {
		x := int(x32)
		if st.S[x] != vcgraph.Undecided || inS.Contains(x) || nS[x] {
			continue
		}
		out = append(out, x)
	}

	return out
}

// diamondUnconfined looks for two outer-shell vertices whose
// outer-neighbor pairs coincide with no edge between the two shell
// vertices themselves — the diamond extension of unconfined.
func diamondUnconfined(st *vcgraph.State, inS *intset.Set, nS map[int]bool) bool {
	type shellVertex struct {
		u    int
		pair [2]int
	}
	ids := make([]int, 0, len(nS))
	for u := range nS {
		ids = append(ids, u)
	}
	sort.Ints(ids)

	var cands []shellVertex
	for _, u := range ids {
		diff := diffOutside(st, u, inS, nS)
		if len(diff) == 2 {
			p, q := diff[0], diff[1]
			if p > q {
				p, q = q, p
			}
			cands = append(cands, shellVertex{u, [2]int{p, q}})
		}
	}
	for i := 0; i < len(cands); i++ {
		for j := i + 1; j < len(cands); j++ {
			if cands[i].pair == cands[j].pair && !st.HasUndecidedEdge(cands[i].u, cands[j].u) {
				return true
			}
		}
	}

	return false
}
