// Package reduce implements the polynomial-time reduction suite: deg1,
// dominance, fold2, LP, unconfined (with the diamond extension), twin,
// funnel, desk, and packing.
//
// Every reduction is parameter-free, mutates the residual graph carried
// by a *vcgraph.State in place, records every change on the state's
// restore/modification stacks, and reports whether it made progress.
// Only Packing can report infeasibility;
// every other reduction either succeeds or no-ops.
package reduce
