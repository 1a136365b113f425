package bound_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcbr/bound"
	"github.com/katalvlaran/vcbr/vcgraph"
)

func TestLPBoundFormula(t *testing.T) {
	adj := [][]int32{{1}, {0, 2}, {1}}
	g := vcgraph.NewGraph(3, adj, nil)
	st := vcgraph.NewState(g)
	st.Fix(0, vcgraph.Out)

	got := bound.LPBound(st)
	want := st.CurrentValue + (st.RemainingVertices+1)/2
	require.Equal(t, want, got)
}

func TestTrivialBoundIsCurrentValue(t *testing.T) {
	adj := [][]int32{{1}, {0}}
	g := vcgraph.NewGraph(2, adj, nil)
	st := vcgraph.NewState(g)
	st.Fix(0, vcgraph.In)
	require.Equal(t, st.CurrentValue, bound.TrivialBound(st))
}

func buildMatchedCycle(t *testing.T, n int, extraEdges [][2]int) *vcgraph.State {
	t.Helper()
	adj := make([][]int32, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		adj[i] = append(adj[i], int32(j))
		adj[j] = append(adj[j], int32(i))
	}
	for _, e := range extraEdges {
		adj[e[0]] = append(adj[e[0]], int32(e[1]))
		adj[e[1]] = append(adj[e[1]], int32(e[0]))
	}
	g := vcgraph.NewGraph(n, adj, nil)
	st := vcgraph.NewState(g)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		st.Flow.Out[i] = j
		st.Flow.In[j] = i
	}

	return st
}

func TestCycleBoundFlatOnChordlessEvenCycle(t *testing.T) {
	st := buildMatchedCycle(t, 4, nil)
	require.Equal(t, 2, bound.CycleBound(st))
}

func TestCycleBoundChordSplitsEvenCycleIntoTwoOdd(t *testing.T) {
	// 6-cycle 0-1-2-3-4-5-0 plus chord 0-2: splits into a 3-cycle
	// (0,1,2) and a 5-cycle (0,2,3,4,5), both odd, improving the flat
	// ceil(6/2)=3 credit to ceil(3/2)+ceil(5/2)=2+3=5.
	st := buildMatchedCycle(t, 6, [][2]int{{0, 2}})
	require.Equal(t, 5, bound.CycleBound(st))
}

func TestCycleBoundCliqueDiscount(t *testing.T) {
	// Triangle: odd cycle that is also a clique.
	st := buildMatchedCycle(t, 3, nil)
	require.Equal(t, 1, bound.CycleBound(st))
}

func TestComputePicksMaximum(t *testing.T) {
	adj := make([][]int32, 4)
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}}
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], int32(e[1]))
		adj[e[1]] = append(adj[e[1]], int32(e[0]))
	}
	g := vcgraph.NewGraph(4, adj, nil)
	st := vcgraph.NewState(g)

	value, typ := bound.Compute(st, bound.Enabled{Clique: true, LP: true, Cycle: false})
	require.GreaterOrEqual(t, value, bound.TrivialBound(st))
	require.NotEqual(t, bound.Trivial, typ)
}
