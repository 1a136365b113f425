// Package match implements the bipartite matching used by the LP
// (Nemhauser–Trotter) reduction, the LP lower bound, and the cycle-cover
// lower bound.
//
// The bipartite graph is implicit: left-copies L = {l_v : v undecided}
// and right-copies R = {r_v : v undecided}, with an edge (l_u, r_v) iff
// u and v are adjacent in the residual graph. Maintain runs Hopcroft–Karp
// style layered augmentation directly against vcgraph.State.Flow, in the
// same level-graph-then-blocking-DFS shape as flow.Dinic,
// but against an implicit duplicate graph instead of Dinic's explicit
// capacity map, and incrementally (it extends whatever matching is
// already recorded in Flow rather than recomputing from empty).
package match
