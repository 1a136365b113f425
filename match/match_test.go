package match_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcbr/match"
	"github.com/katalvlaran/vcbr/vcgraph"
)

func buildPath(n int, edges [][2]int) *vcgraph.State {
	adj := make([][]int32, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], int32(e[1]))
		adj[e[1]] = append(adj[e[1]], int32(e[0]))
	}
	g := vcgraph.NewGraph(n, adj, nil)

	return vcgraph.NewState(g)
}

func TestMaintainOnPathGivesPerfectMatching(t *testing.T) {
	// 0-1-2-3: the duplicate graph has a perfect matching (l0-r1, l1-r0,
	// l2-r3, l3-r2), so all 4 left copies are matched.
	st := buildPath(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	match.Maintain(st)
	require.Equal(t, 4, match.Size(st))
}

func TestMaintainOnTriangleMatchesAllThreeCopies(t *testing.T) {
	// The duplicate graph of a triangle is a 6-cycle, which has a perfect
	// matching over the 3 left copies.
	st := buildPath(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	match.Maintain(st)
	require.Equal(t, 3, match.Size(st))
}

func TestMaintainSkipsDecidedVertices(t *testing.T) {
	st := buildPath(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	st.Fix(1, vcgraph.In)
	match.Maintain(st)
	for v := 0; v < 4; v++ {
		if st.S[v] != vcgraph.Undecided {
			require.Equal(t, -1, st.Flow.Out[v])
			require.Equal(t, -1, st.Flow.In[v])
		}
	}
	// 0, 2 and 3 remain undecided; 0 has no undecided neighbor left once
	// 1 is decided, so only the 2-3 edge remains, matched both ways as
	// l2-r3 and l3-r2.
	require.Equal(t, 2, match.Size(st))
}

func TestMaintainIsIdempotent(t *testing.T) {
	st := buildPath(6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}})
	match.Maintain(st)
	first := match.Size(st)
	match.Maintain(st)
	require.Equal(t, first, match.Size(st))
}
