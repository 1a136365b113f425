// File: fixtures.go
// Role: RandomGraph — an Erdős–Rényi-style sampler producing vcgraph
// graphs for property-based tests from a seeded *rand.Rand with a
// stable trial order.
package vcgraph

import "math/rand"

// RandomGraph samples an undirected simple graph over n vertices,
// including each of the C(n,2) possible edges independently with
// probability p. Trial order is i ascending, then j>i ascending, so two
// calls with the same seed and parameters always produce the same graph.
func RandomGraph(n int, p float64, rng *rand.Rand) *Graph {
	adj := make([][]int32, n+2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() >= p {
				continue
			}
			adj[i] = append(adj[i], int32(j))
			adj[j] = append(adj[j], int32(i))
		}
	}

	return NewGraph(n, adj, nil)
}
