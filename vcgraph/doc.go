// Package vcgraph defines the mutable graph and solution-vector state
// shared by the branch-and-reduce vertex cover solver: the adjacency
// representation, the {-1,0,1,2} assignment vector, the reversible
// modification stack (Fold / Alternative), and the packing-constraint
// list.
//
// Everything here is single-owner, single-threaded state: a Graph and
// its State are built once per solver instance (root or component
// sub-solver) and mutated in place by the reduce, bound, match and
// solver packages. There is no internal locking — callers own the
// recursion discipline belongs to the caller.
package vcgraph
