// File: types.go
// Role: Graph, Value and State type definitions plus sentinel errors.
// Determinism: adjacency order is caller-controlled (vcio sorts on load);
//   reductions preserve whatever order they find except where noted.
// Concurrency: none — a Graph/State pair is owned by exactly one solver
//   goroutine for its entire lifetime.
package vcgraph

import "errors"

// Sentinel errors for vcgraph operations.
var (
	// ErrSelfLoop indicates an edge from a vertex to itself was rejected
	// while building the adjacency (the model disallows self-loops).
	ErrSelfLoop = errors.New("vcgraph: self-loop not allowed")

	// ErrVertexRange indicates a vertex index outside [0, N) was used.
	ErrVertexRange = errors.New("vcgraph: vertex index out of range")

	// ErrInvariant indicates an internal bookkeeping invariant was
	// violated (e.g. a packing constraint disagreeing with the
	// assignment vector). Surfaces as status Exception at the top level.
	ErrInvariant = errors.New("vcgraph: invariant violation")
)

// Value is the per-vertex entry of the assignment vector s.
type Value int8

const (
	// Undecided marks a vertex still part of the residual graph.
	Undecided Value = -1
	// Out marks a vertex placed outside the cover (in the independent set).
	Out Value = 0
	// In marks a vertex placed inside the cover.
	In Value = 1
	// Folded marks a vertex removed by a fold/alternative; its eventual
	// value is recovered later by Modification.Reverse.
	Folded Value = 2
)

// Graph holds the residual adjacency. Vertex indices run 0..NSlots-1:
// [0, N) are real graph vertices, and [N, NSlots) are "constant" sentinel
// slots (Const0, Const1) that NewState fixes Out and In. No adjacency is
// rebound to them; component decomposition drops edges to decided
// vertices instead.
type Graph struct {
	// Adj is the adjacency list per vertex slot. Folds/alternatives
	// rebind Adj[v] to a new slice; the previous slice is preserved by
	// the owning Modification for restore.
	Adj [][]int32

	// N is the number of real vertices (0..N-1).
	N int
	// NSlots is len(Adj): N plus the two constant sentinel slots.
	NSlots int
	// Const0, Const1 are the sentinel slot indices standing for a
	// permanently-decided 0 or 1 vertex; NewState fixes them Out and In,
	// and no adjacency list refers to them.
	Const0, Const1 int

	// VertexID maps an internal real-vertex index to its external label
	// (fixed at load time; used only for reporting). len(VertexID) == N.
	VertexID []int
}

// NewGraph allocates a Graph over n real vertices plus the two constant
// sentinel slots. adj, if non-nil, is taken by reference (caller must not
// alias it elsewhere); otherwise empty adjacency lists are allocated.
// Complexity: O(n).
func NewGraph(n int, adj [][]int32, vertexID []int) *Graph {
	nSlots := n + 2
	a := adj
	if a == nil {
		a = make([][]int32, nSlots)
	} else if len(a) < nSlots {
		grown := make([][]int32, nSlots)
		copy(grown, a)
		a = grown
	}

	vid := vertexID
	if vid == nil {
		vid = make([]int, n)
		for i := range vid {
			vid[i] = i
		}
	}

	return &Graph{
		Adj:      a,
		N:        n,
		NSlots:   nSlots,
		Const0:   n,
		Const1:   n + 1,
		VertexID: vid,
	}
}

// FlowState holds the current bipartite matching between left-copies
// (indices 0..N-1) and right-copies (indices N..2N-1) of each vertex.
// -1 means unmatched.
type FlowState struct {
	In  []int // In[u] = left-endpoint matched to the right-copy of u
	Out []int // Out[v] = right-endpoint matched to the left-copy of v
}

// NewFlowState allocates an all-unmatched FlowState for n vertices.
func NewFlowState(n int) *FlowState {
	fs := &FlowState{In: make([]int, n), Out: make([]int, n)}
	for i := range fs.In {
		fs.In[i] = -1
		fs.Out[i] = -1
	}

	return fs
}

// Packing is an ordered packing constraint: among Members, the number of
// vertices fixed In must never exceed Bound. Bound/Members here is a
// (bound, v1..vk) tuple split into two fields for clarity.
type Packing struct {
	Bound   int
	Members []int
}

// State bundles a Graph with the assignment vector, accounting counters,
// the reversible restore/modification stacks, the flow state, and the
// live packing constraints.
type State struct {
	G *Graph
	S []Value

	CurrentValue      int
	RemainingVertices int

	// RestoreStack records, in LIFO order, either a vertex index whose
	// assignment was directly changed (Fix), or the sentinel -1 meaning
	// "pop and reverse one Modification instead".
	RestoreStack []int
	Mods         []*Modification

	Flow *FlowState

	Packings []*Packing
}

// NewState allocates a State over g, with every real vertex undecided and
// sentinel slots permanently fixed (Const0 = Out, Const1 = In).
func NewState(g *Graph) *State {
	s := make([]Value, g.NSlots)
	for v := 0; v < g.N; v++ {
		s[v] = Undecided
	}
	s[g.Const0] = Out
	s[g.Const1] = In

	return &State{
		G:                 g,
		S:                 s,
		RemainingVertices: g.N,
		Flow:              NewFlowState(g.NSlots),
		Packings:          nil,
	}
}

// Checkpoint returns the current length of the restore stack; pass it to
// RestoreTo to undo everything recorded since.
func (st *State) Checkpoint() int { return len(st.RestoreStack) }
