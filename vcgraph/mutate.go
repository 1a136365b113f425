// File: mutate.go
// Role: The only place that changes st.S, st.CurrentValue and
//       st.RemainingVertices outside of Modification push/pop. Every
//       mutation here deposits exactly one entry on RestoreStack so the
//       LIFO undo discipline stays complete.
package vcgraph

// Fix assigns val (Out or In) to an undecided vertex v, records the
// change on the restore stack, and updates the running counters.
// Complexity: O(1), including dropping the flow matches touching v.
func (st *State) Fix(v int, val Value) {
	st.RestoreStack = append(st.RestoreStack, v)
	st.S[v] = val
	st.RemainingVertices--
	if val == In {
		st.CurrentValue++
	}
	st.dropFlow(v)
}

// dropFlow removes any matching edge incident to v from the flow state.
// Called whenever v leaves the residual graph (Fix, or a fold/alternative
// removing v), maintaining the invariant that flow never
// references a decided vertex. out_flow[v]==u and in_flow[u]==v are two
// halves of the same matched pair (l_v <-> r_u); both must clear together.
func (st *State) dropFlow(v int) {
	fs := st.Flow
	if fs.Out[v] != -1 {
		u := fs.Out[v]
		fs.Out[v] = -1
		fs.In[u] = -1
	}
	if fs.In[v] != -1 {
		u := fs.In[v]
		fs.In[v] = -1
		fs.Out[u] = -1
	}
}

// RestoreTo unwinds RestoreStack (and, transitively, Mods) until it has
// length mark, reversing every Fix and Modification recorded since the
// matching Checkpoint(). Complexity: O(size of the undone work).
func (st *State) RestoreTo(mark int) {
	for len(st.RestoreStack) > mark {
		n := len(st.RestoreStack)
		v := st.RestoreStack[n-1]
		st.RestoreStack = st.RestoreStack[:n-1]
		if v == -1 {
			st.popModification()
			continue
		}
		if st.S[v] == In {
			st.CurrentValue--
		}
		st.S[v] = Undecided
		st.RemainingVertices++
	}
}
