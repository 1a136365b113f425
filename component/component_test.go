package component_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vcbr/component"
	"github.com/katalvlaran/vcbr/vcgraph"
)

func buildTwoTriangles() *vcgraph.State {
	// {0,1,2} forms a triangle, {3,4,5} forms a second, disjoint triangle.
	adj := make([][]int32, 6)
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}}
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], int32(e[1]))
		adj[e[1]] = append(adj[e[1]], int32(e[0]))
	}
	g := vcgraph.NewGraph(6, adj, nil)

	return vcgraph.NewState(g)
}

func TestSplitFindsTwoComponents(t *testing.T) {
	st := buildTwoTriangles()
	comps := component.Split(st)
	require.Len(t, comps, 2)
	require.ElementsMatch(t, []int{0, 1, 2}, comps[0])
	require.ElementsMatch(t, []int{3, 4, 5}, comps[1])
}

func TestSplitSkipsDecidedVertices(t *testing.T) {
	st := buildTwoTriangles()
	st.Fix(0, vcgraph.Out)
	st.Fix(1, vcgraph.In)
	st.Fix(2, vcgraph.Out)
	comps := component.Split(st)
	require.Len(t, comps, 1)
	require.ElementsMatch(t, []int{3, 4, 5}, comps[0])
}

func TestShouldSplitMultipleComponentsAlwaysTrue(t *testing.T) {
	comps := [][]int{{0, 1}, {2, 3}}
	require.True(t, component.ShouldSplit(comps, 100, 4, 50, 2.0))
}

func TestShouldSplitSingleComponentRespectsShrinkFactor(t *testing.T) {
	comps := [][]int{{0, 1, 2}}
	require.False(t, component.ShouldSplit(comps, 100, 60, 10, 2.0))
	require.True(t, component.ShouldSplit(comps, 100, 40, 10, 2.0))
}

func TestShouldSplitRespectsMinOriginSize(t *testing.T) {
	comps := [][]int{{0, 1, 2}}
	require.False(t, component.ShouldSplit(comps, 20, 5, 50, 2.0))
}

func TestDecomposeSolvesEachComponentAndMerges(t *testing.T) {
	st := buildTwoTriangles()
	comps := component.Split(st)

	solve := func(sub *vcgraph.State, ceiling int) (int, []vcgraph.Value) {
		// trivial vertex cover for a triangle: any 2 of its 3 vertices.
		sol := make([]vcgraph.Value, sub.G.N)
		for v := 0; v < sub.G.N-1; v++ {
			sol[v] = vcgraph.In
		}
		sol[sub.G.N-1] = vcgraph.Out

		return sub.G.N - 1, sol
	}

	result := component.Decompose(st, comps, 0, solve)
	require.Equal(t, 4, result.Value)
	count := 0
	for _, v := range result.Solution {
		if v == vcgraph.In {
			count++
		}
	}
	require.Equal(t, 4, count)
}
