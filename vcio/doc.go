// Package vcio loads an undirected simple graph from a text file into a
// vcgraph.Graph. Two input formats are accepted: a SNAP-style edge list
// and DIMACS "p edge"/"e" format; ParseFile tries edge-list first and
// falls back to DIMACS automatically if that fails.
//
// Both formats use 1-based external vertex ids. The loader assigns dense
// 0-based internal ids in order of first appearance and records the
// mapping back to the original labels in Graph.VertexID, so downstream
// reporting can recover the ids the caller used.
package vcio
