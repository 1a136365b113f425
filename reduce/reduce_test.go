package reduce_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcbr/reduce"
	"github.com/katalvlaran/vcbr/vcgraph"
)

func buildStar(t *testing.T) *vcgraph.State {
	t.Helper()
	adj := [][]int32{{1, 2, 3}, {0}, {0}, {0}}
	g := vcgraph.NewGraph(4, adj, nil)

	return vcgraph.NewState(g)
}

func TestDeg1RestoreRoundTrip(t *testing.T) {
	st := buildStar(t)
	snapBefore := append([]vcgraph.Value(nil), st.S...)
	valueBefore := st.CurrentValue
	remainingBefore := st.RemainingVertices

	mark := st.Checkpoint()
	progressed := reduce.Deg1(st)
	require.True(t, progressed)
	require.Equal(t, 0, st.RemainingVertices)

	st.RestoreTo(mark)
	if diff := cmp.Diff(snapBefore, st.S); diff != "" {
		t.Fatalf("state mismatch after restore (-want +got):\n%s", diff)
	}
	require.Equal(t, valueBefore, st.CurrentValue)
	require.Equal(t, remainingBefore, st.RemainingVertices)
}

func TestDeg1FixesLeavesOutAndCenterIn(t *testing.T) {
	st := buildStar(t)
	reduce.Deg1(st)
	require.Equal(t, vcgraph.In, st.S[0])
	for _, leaf := range []int{1, 2, 3} {
		require.Equal(t, vcgraph.Out, st.S[leaf])
	}
	require.Equal(t, 1, st.CurrentValue)
}

func TestFold2OnPath(t *testing.T) {
	// 0-1-2 path: vertex 1 has two undecided neighbors 0,2, not adjacent
	// to each other, so Fold2 must fold it rather than fix it to 0.
	adj := [][]int32{{1}, {0, 2}, {1}}
	g := vcgraph.NewGraph(3, adj, nil)
	st := vcgraph.NewState(g)

	mark := st.Checkpoint()
	progressed := reduce.Fold2(st)
	require.True(t, progressed)
	require.Equal(t, 1, st.RemainingVertices)
	require.Equal(t, 1, st.CurrentValue)

	st.RestoreTo(mark)
	require.Equal(t, 3, st.RemainingVertices)
	require.Equal(t, 0, st.CurrentValue)
	for v := 0; v < 3; v++ {
		require.Equal(t, vcgraph.Undecided, st.S[v])
	}
}

func buildGraph(n int, edges [][2]int) *vcgraph.State {
	adj := make([][]int32, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], int32(e[1]))
		adj[e[1]] = append(adj[e[1]], int32(e[0]))
	}
	g := vcgraph.NewGraph(n, adj, nil)

	return vcgraph.NewState(g)
}

func TestTwinIndependentNeighborhoodFoldsToCorrectCost(t *testing.T) {
	// K_{2,3} gadget: v=0, w=1 each degree 3, sharing the independent
	// neighbor set {a=2,b=3,c=4}, no other edges. True minimum cover is
	// 2 ({v,w}; covering {a,b,c} instead costs 3), so the fold's Add must
	// be 2 for CurrentValue to come out right.
	st := buildGraph(5, [][2]int{{0, 2}, {0, 3}, {0, 4}, {1, 2}, {1, 3}, {1, 4}})
	snapBefore := append([]vcgraph.Value(nil), st.S...)

	mark := st.Checkpoint()
	progressed := reduce.Twin(st)
	require.True(t, progressed)
	require.Equal(t, 1, st.RemainingVertices)
	require.Equal(t, vcgraph.Undecided, st.S[2])
	require.Equal(t, 2, st.CurrentValue)

	st.RestoreTo(mark)
	require.Equal(t, snapBefore, st.S)
	require.Equal(t, 0, st.CurrentValue)
	require.Equal(t, 5, st.RemainingVertices)
}

func TestDominanceFixesDominatingVertex(t *testing.T) {
	// A single edge: vertex 0, processed first, trivially dominates its
	// only neighbor (N[0] == N[1] == {0,1}), so 0 is fixed into the
	// cover and 1 is left undecided.
	st := buildGraph(2, [][2]int{{0, 1}})
	mark := st.Checkpoint()

	progressed := reduce.Dominance(st)
	require.True(t, progressed)
	require.Equal(t, vcgraph.In, st.S[0])
	require.Equal(t, vcgraph.Undecided, st.S[1])
	require.Equal(t, 1, st.CurrentValue)
	require.Equal(t, 1, st.RemainingVertices)

	st.RestoreTo(mark)
	require.Equal(t, 0, st.CurrentValue)
	require.Equal(t, 2, st.RemainingVertices)
	require.Equal(t, vcgraph.Undecided, st.S[0])
	require.Equal(t, vcgraph.Undecided, st.S[1])
}

func TestUnconfinedFixesPendantHub(t *testing.T) {
	// A single edge: S={0} grows, its only neighbor 1's outside
	// difference is empty, so 0 is unconfined and fixed in.
	st := buildGraph(2, [][2]int{{0, 1}})
	mark := st.Checkpoint()

	progressed := reduce.Unconfined(st)
	require.True(t, progressed)
	require.Equal(t, vcgraph.In, st.S[0])
	require.Equal(t, vcgraph.Undecided, st.S[1])
	require.Equal(t, 1, st.CurrentValue)
	require.Len(t, st.Packings, 1)

	st.RestoreTo(mark)
	require.Equal(t, 0, st.CurrentValue)
	require.Equal(t, 2, st.RemainingVertices)
}

func TestFunnelFoldsPairRestoreRoundTrip(t *testing.T) {
	// v=0 has neighbors u=1, a=2; N(v)\{u}={a} is trivially a clique
	// (one element), so Funnel records Alternative({0},{1}).
	st := buildGraph(3, [][2]int{{0, 1}, {0, 2}})
	snapBefore := append([]vcgraph.Value(nil), st.S...)

	mark := st.Checkpoint()
	progressed := reduce.Funnel(st)
	require.True(t, progressed)
	require.Equal(t, 1, st.RemainingVertices)
	require.Equal(t, 1, st.CurrentValue)

	st.RestoreTo(mark)
	require.Equal(t, snapBefore, st.S)
	require.Equal(t, 0, st.CurrentValue)
	require.Equal(t, 3, st.RemainingVertices)
}

func TestDeskFoldsQuadRestoreRoundTrip(t *testing.T) {
	// 4-cycle v(0)-u1(1)-w(2)-u2(3)-v with one pendant per core vertex
	// (4,5,6,7) bringing each to undecided degree 3, union size 4.
	st := buildGraph(8, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{0, 4}, {1, 6}, {2, 5}, {3, 7},
	})
	snapBefore := append([]vcgraph.Value(nil), st.S...)

	mark := st.Checkpoint()
	progressed := reduce.Desk(st)
	require.True(t, progressed)
	require.Equal(t, 4, st.RemainingVertices)
	require.Equal(t, 2, st.CurrentValue)

	st.RestoreTo(mark)
	require.Equal(t, snapBefore, st.S)
	require.Equal(t, 0, st.CurrentValue)
	require.Equal(t, 8, st.RemainingVertices)
}

func TestPackingForcesRemainingMembersOut(t *testing.T) {
	// Star: hub 0 with leaves 1,2,3. A bound-1 packing over {1,2,3} plus
	// leaf 1 already fixed in forces 2 and 3 out.
	st := buildGraph(4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	st.Fix(1, vcgraph.In)
	st.AddPacking(1, []int{1, 2, 3})

	progressed, infeasible := reduce.Packing(st)
	require.True(t, progressed)
	require.False(t, infeasible)
	require.Equal(t, vcgraph.Out, st.S[2])
	require.Equal(t, vcgraph.Out, st.S[3])
	require.Equal(t, vcgraph.Undecided, st.S[0])
}

func TestPackingReportsInfeasible(t *testing.T) {
	st := buildGraph(3, [][2]int{{0, 1}, {0, 2}})
	st.Fix(1, vcgraph.In)
	st.Fix(2, vcgraph.In)
	st.AddPacking(1, []int{1, 2})

	_, infeasible := reduce.Packing(st)
	require.True(t, infeasible)
}

func TestLPRestoreRoundTrip(t *testing.T) {
	st := buildGraph(4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	snapBefore := append([]vcgraph.Value(nil), st.S...)
	valueBefore := st.CurrentValue
	remainingBefore := st.RemainingVertices

	mark := st.Checkpoint()
	reduce.LP(st)
	st.RestoreTo(mark)

	require.Equal(t, snapBefore, st.S)
	require.Equal(t, valueBefore, st.CurrentValue)
	require.Equal(t, remainingBefore, st.RemainingVertices)
}
