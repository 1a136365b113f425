package vcio

import (
	"sort"

	"github.com/katalvlaran/vcbr/vcgraph"
)

// idMapper assigns dense 0-based internal ids to external vertex labels
// in order of first appearance, and collects the edge set between them.
type idMapper struct {
	externalToInternal map[int]int
	internalToExternal []int
	edges              map[[2]int32]struct{}
}

func newIDMapper() *idMapper {
	return &idMapper{
		externalToInternal: make(map[int]int),
		edges:              make(map[[2]int32]struct{}),
	}
}

// internalID returns the dense internal id for external, allocating a
// fresh one on first sight.
func (m *idMapper) internalID(external int) int {
	if id, ok := m.externalToInternal[external]; ok {
		return id
	}
	id := len(m.internalToExternal)
	m.externalToInternal[external] = id
	m.internalToExternal = append(m.internalToExternal, external)

	return id
}

// addEdge records an undirected edge between two external labels,
// silently dropping self-loops and silently deduplicating (u,v)/(v,u).
func (m *idMapper) addEdge(uExt, vExt int) {
	u, v := m.internalID(uExt), m.internalID(vExt)
	if u == v {
		return
	}
	if u > v {
		u, v = v, u
	}
	m.edges[[2]int32{int32(u), int32(v)}] = struct{}{}
}

// build materializes a vcgraph.Graph from the accumulated ids and edges,
// with each adjacency list sorted ascending for deterministic traversal
// order downstream.
func (m *idMapper) build() *vcgraph.Graph {
	n := len(m.internalToExternal)
	adj := make([][]int32, n+2)
	for pair := range m.edges {
		u, v := pair[0], pair[1]
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}
	for v := 0; v < n; v++ {
		sort.Slice(adj[v], func(i, j int) bool { return adj[v][i] < adj[v][j] })
	}

	return vcgraph.NewGraph(n, adj, append([]int(nil), m.internalToExternal...))
}
