package reduce

import (
	"github.com/katalvlaran/vcbr/match"
	"github.com/katalvlaran/vcbr/vcgraph"
)

// LP applies the Nemhauser–Trotter reduction: maintain
// the bipartite matching, fix every vertex in the zero-closure to Out and
// every vertex in the one-closure to In. The two closures are disjoint
// by construction (a vertex cannot be reachable from both an unmatched
// L-vertex and an unmatched R-vertex without producing an augmenting
// path, which Maintain would already have consumed).
func LP(st *vcgraph.State) bool {
	match.Maintain(st)

	zero := match.ZeroClosure(st, match.ZeroCore(st))
	one := match.OneClosure(st, match.OneCore(st))

	if len(zero) == 0 && len(one) == 0 {
		return false
	}

	for _, v := range zero {
		if st.S[v] == vcgraph.Undecided {
			st.Fix(v, vcgraph.Out)
		}
	}
	for _, v := range one {
		if st.S[v] == vcgraph.Undecided {
			st.Fix(v, vcgraph.In)
		}
	}

	return true
}
