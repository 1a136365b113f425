// File: driver.go
// Role: rec — the top-level recursive branch-and-reduce routine. A
// driver instance owns the mutable search state (current best, its
// solution snapshot, timeout flag) for one Solve call; each component
// sub-solve gets its own driver, and all of them share the parent's
// *Stats so counters merge without a separate reconciliation pass.
package solver

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/vcbr/bound"
	"github.com/katalvlaran/vcbr/branch"
	"github.com/katalvlaran/vcbr/component"
	"github.com/katalvlaran/vcbr/vcgraph"
)

// side identifies which branch a recursive call descended through, so
// an LB-cut can be attributed to the left-cut counter only when it
// immediately follows Child A.
type side int

const (
	sideRoot side = iota
	sideA
	sideB
)

// checkpoint bundles the restore-stack mark with the packing-list length
// — AddPacking appends to st.Packings outside the RestoreStack/Mods
// discipline, so it needs its own explicit save/restore alongside them
// between the two children of a branch.
type checkpoint struct {
	restore  int
	packings int
}

type driver struct {
	cfg        *Config
	stats      *Stats
	deadline   time.Time
	hasDeadline bool
	cancel     <-chan struct{}
	originSize int
	rng        *rand.Rand
	logger     zerolog.Logger

	best     int
	solution []vcgraph.Value
	timedOut bool
	rootLB   int
}

func (d *driver) checkpointState(st *vcgraph.State) checkpoint {
	return checkpoint{restore: st.Checkpoint(), packings: len(st.Packings)}
}

func (d *driver) restoreTo(st *vcgraph.State, cp checkpoint) {
	st.RestoreTo(cp.restore)
	st.Packings = st.Packings[:cp.packings]
}

func (d *driver) deadlineExceeded() bool {
	if d.hasDeadline && time.Now().After(d.deadline) {
		return true
	}
	if d.cancel != nil {
		select {
		case <-d.cancel:
			return true
		default:
		}
	}

	return false
}

// rec implements the driver body: timeout check, reduce, bound-prune,
// leaf-accept, decompose-or-branch.
func (d *driver) rec(st *vcgraph.State, depth int, s side) {
	if d.timedOut {
		return
	}
	if d.deadlineExceeded() {
		d.timedOut = true

		return
	}

	cp := d.checkpointState(st)

	if st.RemainingVertices <= d.cfg.SizeThreshold {
		if d.reduceToFixedPoint(st, depth == 0) {
			d.restoreTo(st, cp)

			return
		}
	}

	boundStart := time.Now()
	lb, lbType := bound.Compute(st, bound.Enabled{
		Clique: d.cfg.CliqueBound,
		LP:     d.cfg.LPBound,
		Cycle:  d.cfg.CycleBound,
	})
	d.stats.recordBound(lbType.String(), time.Since(boundStart))
	if depth == 0 {
		d.rootLB = lb
	}
	if lb >= d.best {
		if s == sideA {
			d.stats.NumLeftCuts++
		}
		d.restoreTo(st, cp)

		return
	}

	if st.RemainingVertices == 0 {
		if st.CurrentValue < d.best {
			d.best = st.CurrentValue
			snap := st.Snapshot()
			st.Reverse(snap)
			d.solution = snap[:st.G.N]
		}
		d.restoreTo(st, cp)

		return
	}

	if d.cfg.MaxDepth > 0 && depth >= d.cfg.MaxDepth {
		d.restoreTo(st, cp)

		return
	}

	comps := component.Split(st)
	if component.ShouldSplit(comps, d.originSize, st.RemainingVertices, d.cfg.MinOriginSize, d.cfg.ShrinkFactor) {
		result := component.Decompose(st, comps, d.best, d.solveComponent)
		if result.Value < d.best {
			d.best = result.Value
			st.Reverse(result.Solution)
			d.solution = result.Solution
		}
		d.restoreTo(st, cp)

		return
	}

	d.stats.NumBranches++
	v := branch.Select(st, d.cfg.BranchRule, d.rng)
	mirrors := branch.Mirrors(st, v)

	cpA := d.checkpointState(st)
	branch.ChildA(st, v, mirrors)
	d.rec(st, depth+1, sideA)
	d.restoreTo(st, cpA)

	if !d.timedOut {
		cpB := d.checkpointState(st)
		branch.ChildB(st, v, len(mirrors) > 0)
		d.rec(st, depth+1, sideB)
		d.restoreTo(st, cpB)
	}

	d.restoreTo(st, cp)
}

// solveComponent is the component.SolveFunc callback: it spawns an
// independent driver over sub, sharing this driver's Stats/logger/rng/
// deadline, seeded with ceiling as its starting incumbent so it can stop
// once it proves the component cannot beat the budget the parent has
// left.
func (d *driver) solveComponent(sub *vcgraph.State, ceiling int) (int, []vcgraph.Value) {
	best := ceiling
	if ceiling == component.NoCeiling {
		best = sub.G.N + 1
	}

	sd := &driver{
		cfg:         d.cfg,
		stats:       d.stats,
		deadline:    d.deadline,
		hasDeadline: d.hasDeadline,
		cancel:      d.cancel,
		originSize:  sub.G.N,
		rng:         d.rng,
		logger:      d.logger.With().Str("component_run", uuid.NewString()).Logger(),
		best:        best,
	}
	sd.rec(sub, 0, sideRoot)
	if sd.timedOut {
		d.timedOut = true
	}

	solution := sd.solution
	if solution == nil {
		solution = make([]vcgraph.Value, sub.G.N)
		copy(solution, sub.S[:sub.G.N])
	}

	return sd.best, solution
}
