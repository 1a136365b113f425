package vcgraph_test

import (
	"testing"

	"github.com/katalvlaran/vcbr/vcgraph"
	"github.com/stretchr/testify/require"
)

// buildPath builds 0-1-2-3-4 as an undirected path over 5 real vertices.
func buildPath(t *testing.T) *vcgraph.Graph {
	t.Helper()
	adj := make([][]int32, 5)
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], int32(e[1]))
		adj[e[1]] = append(adj[e[1]], int32(e[0]))
	}

	return vcgraph.NewGraph(5, adj, nil)
}

func TestFixRestoreRoundTrip(t *testing.T) {
	g := buildPath(t)
	st := vcgraph.NewState(g)
	mark := st.Checkpoint()

	st.Fix(1, vcgraph.Out)
	st.Fix(0, vcgraph.In)
	require.Equal(t, 1, st.CurrentValue)
	require.Equal(t, 3, st.RemainingVertices)

	st.RestoreTo(mark)
	require.Equal(t, 0, st.CurrentValue)
	require.Equal(t, 5, st.RemainingVertices)
	for v := 0; v < 5; v++ {
		require.Equal(t, vcgraph.Undecided, st.S[v])
	}
}

func TestFoldPushPopRoundTrip(t *testing.T) {
	g := buildPath(t)
	st := vcgraph.NewState(g)
	mark := st.Checkpoint()

	// Fold vertex 1 (neighbors 0,2, non-adjacent) using 0 as the
	// contracted representative: new adjacency of 0 becomes {2,3}\{1}.
	oldAdj0 := append([]int32(nil), g.Adj[0]...)
	newAdj0 := []int32{2}
	st.PushFold([]int{1}, []int{2}, []int{0}, [][]int32{newAdj0})

	require.Equal(t, vcgraph.Folded, st.S[1])
	require.Equal(t, vcgraph.Folded, st.S[2])
	require.Equal(t, []int32{2}, g.Adj[0])
	require.Equal(t, 1, st.CurrentValue)
	require.Equal(t, 3, st.RemainingVertices)

	st.RestoreTo(mark)
	require.Equal(t, vcgraph.Undecided, st.S[1])
	require.Equal(t, vcgraph.Undecided, st.S[2])
	require.Equal(t, oldAdj0, g.Adj[0])
	require.Equal(t, 0, st.CurrentValue)
	require.Equal(t, 5, st.RemainingVertices)
}

func TestFoldReverseRecoversSolution(t *testing.T) {
	g := buildPath(t)
	st := vcgraph.NewState(g)

	st.PushFold([]int{1}, []int{2}, []int{0}, [][]int32{{2}})
	// Pretend the reduced graph decided the contracted vertex (0) is out.
	st.S[0] = vcgraph.Out
	snap := st.Snapshot()
	st.Reverse(snap)

	require.Equal(t, vcgraph.In, snap[1])  // v (opposite group) -> In
	require.Equal(t, vcgraph.Out, snap[2]) // u1 (same group) -> Out
}
