package branch

import (
	"math/rand"

	"github.com/katalvlaran/vcbr/vcgraph"
)

// Rule selects which branching heuristic Select uses: random,
// min-degree, or max-degree.
type Rule int

const (
	Random Rule = iota
	MinDegree
	MaxDegree
)

// Select picks the next vertex to branch on. For MaxDegree
// (the default) and MinDegree it is the undecided vertex at the extreme
// of undecided degree, tie-broken by the fewest edges among its
// neighborhood — fewer local triangles makes for a more productive
// branch. Random draws uniformly from rng, which must be non-nil when
// rule is Random.
func Select(st *vcgraph.State, rule Rule, rng *rand.Rand) int {
	if rule == Random {
		return selectRandom(st, rng)
	}

	best, bestDeg, bestTri := -1, -1, -1
	for v := 0; v < st.G.N; v++ {
		if st.S[v] != vcgraph.Undecided {
			continue
		}
		d := st.UndecidedDegree(v)
		switch {
		case best == -1 || better(rule, d, bestDeg):
			best, bestDeg, bestTri = v, d, -1
		case d == bestDeg:
			if bestTri == -1 {
				bestTri = triangleEdges(st, best)
			}
			if t := triangleEdges(st, v); t < bestTri {
				best, bestDeg, bestTri = v, d, t
			}
		}
	}

	return best
}

func better(rule Rule, d, best int) bool {
	if rule == MinDegree {
		return d < best
	}

	return d > best
}

func selectRandom(st *vcgraph.State, rng *rand.Rand) int {
	var candidates []int
	for v := 0; v < st.G.N; v++ {
		if st.S[v] == vcgraph.Undecided {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return -1
	}

	return candidates[rng.Intn(len(candidates))]
}

// triangleEdges counts edges among v's undecided neighborhood.
func triangleEdges(st *vcgraph.State, v int) int {
	nbrs := st.UndecidedNeighbors(v)
	count := 0
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			if st.HasUndecidedEdge(int(nbrs[i]), int(nbrs[j])) {
				count++
			}
		}
	}

	return count
}
