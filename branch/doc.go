// Package branch selects the next vertex to branch on and derives the
// packing constraints each of its two children pushes: max-degree
// selection with a triangle-count tie-break by default, plus
// mirror detection so Child A can fix more than one vertex at once.
package branch
