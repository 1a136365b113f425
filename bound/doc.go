// Package bound computes lower bounds on the final cover value used to
// prune branch-and-reduce search: trivial, clique-cover,
// LP-relaxation, and matching-cycle-cover. Compute picks the maximum of
// whichever bounds are enabled and reports which one won, for the
// driver's per-node statistics.
package bound
