package bound

import (
	"sort"

	"github.com/katalvlaran/vcbr/vcgraph"
)

// Type identifies which lower bound produced the winning value, recorded
// by the driver for per-node statistics.
type Type int

const (
	Trivial Type = iota
	Clique
	LP
	Cycle
)

func (t Type) String() string {
	switch t {
	case Trivial:
		return "trivial"
	case Clique:
		return "clique"
	case LP:
		return "lp"
	case Cycle:
		return "cycle"
	default:
		return "unknown"
	}
}

// Enabled selects which non-trivial bounds Compute considers. Trivial is
// always on — it is the floor every other bound must beat.
type Enabled struct {
	Clique bool
	LP     bool
	Cycle  bool
}

// Compute returns the maximum of the enabled bounds and which one won.
// Complexity: O(remaining^2) dominated by the clique-cover greedy pass.
func Compute(st *vcgraph.State, en Enabled) (value int, typ Type) {
	value, typ = TrivialBound(st), Trivial

	if en.Clique {
		if b := CliqueBound(st); b > value {
			value, typ = b, Clique
		}
	}
	if en.LP {
		if b := LPBound(st); b > value {
			value, typ = b, LP
		}
	}
	if en.Cycle {
		if b := CycleBound(st); b > value {
			value, typ = b, Cycle
		}
	}

	return value, typ
}

// TrivialBound is simply the current partial cover's size.
func TrivialBound(st *vcgraph.State) int {
	return st.CurrentValue
}

// CliqueBound greedily partitions the undecided vertices, sorted by
// non-decreasing undecided degree, into cliques: each vertex joins the
// first open clique all of whose members it is adjacent to, else opens a
// new one. Since every clique of size k needs at least k-1 cover
// vertices, bound = current_value + (remaining - #cliques).
func CliqueBound(st *vcgraph.State) int {
	order := make([]int, 0, st.RemainingVertices)
	for v := 0; v < st.G.N; v++ {
		if st.S[v] == vcgraph.Undecided {
			order = append(order, v)
		}
	}
	sort.Slice(order, func(i, j int) bool {
		return st.UndecidedDegree(order[i]) < st.UndecidedDegree(order[j])
	})

	var cliques [][]int
	for _, v := range order {
		placed := false
		for i, c := range cliques {
			if joinsClique(st, v, c) {
				cliques[i] = append(c, v)
				placed = true

				break
			}
		}
		if !placed {
			cliques = append(cliques, []int{v})
		}
	}

	return st.CurrentValue + (len(order) - len(cliques))
}

func joinsClique(st *vcgraph.State, v int, clique []int) bool {
	for _, u := range clique {
		if !st.HasUndecidedEdge(v, u) {
			return false
		}
	}

	return true
}

// LPBound exploits the half-integral LP relaxation directly: when the
// all-1/2 assignment is an optimal LP solution of the residual graph (as
// it is once every vertex with an integral LP value has been fixed by the
// Nemhauser–Trotter reduction), the relaxation's optimum is remaining/2,
// and since the true optimum is integral, current_value +
// ceil(remaining/2) is a lower bound. LPBound does not check that
// condition itself.
func LPBound(st *vcgraph.State) int {
	remaining := st.RemainingVertices

	return st.CurrentValue + (remaining+1)/2
}

// CycleBound walks the functional graph induced by the current matching
// (v -> out_flow[v]) and credits each cycle found with ceil(len/2), minus
// one if the cycle's vertices form a clique. An even, non-clique cycle is
// additionally checked for a chord splitting it into two odd sub-cycles
// (each needing strictly more than half its own length), which improves
// the flat ceil(len/2) credit — see cycleContribution.
func CycleBound(st *vcgraph.State) int {
	n := st.G.N
	visited := make([]bool, n)
	total := 0
	for v := 0; v < n; v++ {
		if st.S[v] != vcgraph.Undecided || visited[v] || st.Flow.Out[v] == -1 {
			continue
		}
		cyc := walkCycle(st, v, visited)
		if cyc == nil {
			continue
		}
		total += cycleContribution(st, cyc)
	}

	return st.CurrentValue + total
}

// cycleContribution is one cycle's credit toward CycleBound: ceil(len/2)
// minus one if it forms a clique (a clique's own cover is cheaper to
// account for via the clique bound's flat count), or, failing that, the
// best odd/odd split a single chord achieves on an even cycle.
func cycleContribution(st *vcgraph.State, cyc []int) int {
	flat := (len(cyc) + 1) / 2
	if isUndecidedClique(st, cyc) {
		return flat - 1
	}
	if len(cyc)%2 == 0 {
		if split := bestChordSplit(st, cyc); split > flat {
			return split
		}
	}

	return flat
}

// bestChordSplit looks for a chord (cyc[i], cyc[j]) that divides an even
// cycle into two sub-cycles sharing that chord edge, both of odd length,
// and returns the best ceil(l1/2)+ceil(l2/2) such a chord achieves, or 0
// if no chord splits the cycle into two odd pieces.
func bestChordSplit(st *vcgraph.State, cyc []int) int {
	L := len(cyc)
	best := 0
	for i := 0; i < L; i++ {
		for j := i + 2; j < L; j++ {
			if i == 0 && j == L-1 {
				continue // the cycle's own closing edge, not a chord
			}
			if !st.HasUndecidedEdge(cyc[i], cyc[j]) {
				continue
			}
			l1 := j - i + 1
			l2 := L - l1 + 2
			if l1%2 == 0 || l2%2 == 0 {
				continue
			}
			if c := (l1+1)/2 + (l2+1)/2; c > best {
				best = c
			}
		}
	}

	return best
}

// walkCycle follows v -> out_flow[v] until it either closes a cycle back
// onto a vertex already on the current path (returned) or runs off the
// end of a chain / into an already-processed node (nil). Every visited
// vertex along the way is marked so later starts don't re-walk it.
func walkCycle(st *vcgraph.State, start int, visited []bool) []int {
	var path []int
	pos := make(map[int]int)
	v := start
	for {
		if visited[v] {
			return nil
		}
		if idx, ok := pos[v]; ok {
			cyc := append([]int(nil), path[idx:]...)
			for _, x := range path {
				visited[x] = true
			}

			return cyc
		}
		pos[v] = len(path)
		path = append(path, v)

		next := st.Flow.Out[v]
		if next == -1 || st.S[next] != vcgraph.Undecided {
			for _, x := range path {
				visited[x] = true
			}

			return nil
		}
		v = next
	}
}

func isUndecidedClique(st *vcgraph.State, vs []int) bool {
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if !st.HasUndecidedEdge(vs[i], vs[j]) {
				return false
			}
		}
	}

	return true
}
