package component

import (
	"sort"

	"github.com/katalvlaran/vcbr/vcgraph"
)

// NoCeiling signals Decompose's last component may run unclamped.
const NoCeiling = -1

// SolveFunc runs a full branch-and-reduce solve on an independent
// sub-state and returns its optimum value plus a complete Out/In
// assignment for every one of its real vertices (folded/alternative
// vertices already resolved via that sub-state's own Reverse). ceiling,
// when not NoCeiling, lets the callback stop proving optimality once it
// knows the component's value will be at least ceiling — the caller is
// about to discard the combined result either way.
type SolveFunc func(sub *vcgraph.State, ceiling int) (value int, solution []vcgraph.Value)

// Result is what Decompose hands back to the driver: a combined optimum
// and a complete assignment over st.G's real vertices, ready for the
// driver to snapshot and Reverse exactly as it would a normal leaf.
type Result struct {
	Value    int
	Solution []vcgraph.Value
}

// Decompose builds one independent sub-state per component, solves each
// in ascending minimum-member-id order for reproducibility, and merges
// the results into a single assignment over st.G's real vertices.
//
// Modification objects are never migrated into sub-states: the residual
// adjacency st exposes already omits every folded/contracted vertex (the
// reduction suite keeps it that way — see reduce package), so a
// component's BFS-induced subgraph is self-contained without needing to
// know about Modifications at all. See DESIGN.md for why this is sound
// and simpler than migrating each Modification's vs[] indices.
func Decompose(st *vcgraph.State, comps [][]int, globalBest int, solve SolveFunc) Result {
	sortComponentsByMinID(comps)

	solution := make([]vcgraph.Value, st.G.N)
	copy(solution, st.S)

	total := st.CurrentValue
	for i, comp := range comps {
		sub, localToGlobal := buildSubState(st, comp)
		translatePacking(st, localToGlobal, sub)

		ceiling := NoCeiling
		if i == len(comps)-1 && globalBest > 0 {
			ceiling = globalBest - total
		}

		value, subSolution := solve(sub, ceiling)
		total += value
		for local, global := range localToGlobal {
			solution[global] = subSolution[local]
		}
	}

	return Result{Value: total, Solution: solution}
}

func sortComponentsByMinID(comps [][]int) {
	for _, c := range comps {
		sort.Ints(c)
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })
}

// buildSubState reindexes comp to local ids 0..len(comp)-1, copies only
// the within-component adjacency (cross-component edges can't exist —
// comp is already one connected component of the undecided residual
// graph), and allocates a fresh State over it.
func buildSubState(st *vcgraph.State, comp []int) (*vcgraph.State, []int) {
	localToGlobal := append([]int(nil), comp...)
	globalToLocal := make(map[int]int, len(comp))
	for i, g := range localToGlobal {
		globalToLocal[g] = i
	}

	adj := make([][]int32, len(comp))
	vertexID := make([]int, len(comp))
	for i, g := range localToGlobal {
		vertexID[i] = st.G.VertexID[g]
		src := st.G.Adj[g]
		dst := make([]int32, 0, len(src))
		for _, w32 := range src {
			if w := int(w32); st.S[w] == vcgraph.Undecided {
				dst = append(dst, int32(globalToLocal[w]))
			}
		}
		adj[i] = dst
	}

	g := vcgraph.NewGraph(len(comp), adj, vertexID)

	return vcgraph.NewState(g), localToGlobal
}

// translatePacking distributes each live packing constraint to the
// component containing its maximum-id still-undecided member, adjusting
// bound down by however many of its members are already fixed In
// elsewhere.
func translatePacking(st *vcgraph.State, localToGlobal []int, sub *vcgraph.State) {
	globalToLocal := make(map[int]int, len(localToGlobal))
	for i, g := range localToGlobal {
		globalToLocal[g] = i
	}

	for _, p := range st.Packings {
		alreadyIn, undecided := st.CountIn(p.Members)
		if len(undecided) == 0 {
			continue
		}

		maxID := undecided[0]
		for _, v := range undecided {
			if v > maxID {
				maxID = v
			}
		}
		if _, owned := globalToLocal[maxID]; !owned {
			continue
		}

		bound := p.Bound - alreadyIn
		if bound < 0 {
			bound = 0
		}

		var localMembers []int
		for _, v := range undecided {
			if local, ok := globalToLocal[v]; ok {
				localMembers = append(localMembers, local)
			}
		}
		if len(localMembers) > 0 {
			sub.AddPacking(bound, localMembers)
		}
	}
}
