package reduce

import "github.com/katalvlaran/vcbr/vcgraph"

// Packing propagates every live packing constraint:
// tally s-values of each constraint's members. A count of In-fixed
// members exceeding the bound is infeasible — the caller must backtrack.
// A count equal to the bound forces every remaining undecided member to
// Out; for each external neighbor touched by exactly one such
// newly-forced member, a fresh bound-1 constraint over that neighbor's
// own neighborhood is derived and pushed, mirroring the constraint
// unconfined emits when it fixes a vertex in. This is the only reduction
// allowed to report infeasible.
func Packing(st *vcgraph.State) (progressed, infeasible bool) {
	for _, p := range st.Packings {
		in, undecided := st.CountIn(p.Members)
		if in > p.Bound {
			return progressed, true
		}
		if in != p.Bound || len(undecided) == 0 {
			continue
		}

		forced := make(map[int]bool, len(undecided))
		for _, v := range undecided {
			forced[v] = true
		}

		touch := map[int]int{}
		for v := range forced {
			for _, w32 := range st.UndecidedNeighbors(v) {
				w := int(w32)
				if !forced[w] {
					touch[w]++
				}
			}
		}

		for _, v := range undecided {
			st.Fix(v, vcgraph.Out)
		}

		for w, count := range touch {
			if count == 1 && st.S[w] == vcgraph.Undecided {
				members := make([]int, len(st.G.Adj[w]))
				for i, x := range st.G.Adj[w] {
					members[i] = int(x)
				}
				st.AddPacking(1, members)
			}
		}

		progressed = true
	}

	return progressed, false
}
