// File: reduce.go
// Role: the fixed reduction schedule — one pass through the named
// order, restarted whenever any reduction in the pass made progress,
// until a pass makes none.
package solver

import (
	"time"

	"github.com/katalvlaran/vcbr/reduce"
	"github.com/katalvlaran/vcbr/vcgraph"
)

// reduceToFixedPoint runs reducePass repeatedly until it stops making
// progress, reporting infeasible as soon as the packing reduction finds
// a violated constraint: packing is the only reduction allowed to signal
// infeasibility.
func (d *driver) reduceToFixedPoint(st *vcgraph.State, atRoot bool) (infeasible bool) {
	for {
		progressed, infeasible := d.reducePass(st, atRoot)
		if infeasible {
			return true
		}
		if !progressed {
			return false
		}
	}
}

// reducePass runs exactly one pass in the fixed order: deg1, fold2,
// twin, desk, dominance, unconfined, LP, packing, funnel.
func (d *driver) reducePass(st *vcgraph.State, atRoot bool) (progressed, infeasible bool) {
	cfg := d.cfg
	gatedOK := cfg.Mode == ModeAll || atRoot

	if d.runReduction("deg1", cfg.Deg1, reduce.Deg1, st) {
		progressed = true
	}
	if d.runReduction("fold2", cfg.Fold2, reduce.Fold2, st) {
		progressed = true
	}
	if d.runReduction("twin", cfg.Twin, reduce.Twin, st) {
		progressed = true
	}
	if d.runReduction("desk", cfg.Desk, reduce.Desk, st) {
		progressed = true
	}
	if d.runReduction("dominance", cfg.Dominance, reduce.Dominance, st) {
		progressed = true
	}

	if cfg.Unconfined && gatedOK && inDensityBand(st, cfg) && degreeVariance(st) <= cfg.DegreeVariance {
		if d.runReduction("unconfined", true, reduce.Unconfined, st) {
			progressed = true
		}
	}

	if cfg.LPReduction && gatedOK && oddCycleRatio(st) >= cfg.OddCycleRatio {
		if d.runReduction("lp", true, reduce.LP, st) {
			progressed = true
		}
	}

	if cfg.Packing {
		before := st.RemainingVertices
		start := time.Now()
		ok, infeas := reduce.Packing(st)
		d.stats.recordReduction("packing", ok, before-st.RemainingVertices, time.Since(start))
		if infeas {
			return progressed, true
		}
		if ok {
			progressed = true
		}
	}

	if d.runReduction("funnel", cfg.Funnel, reduce.Funnel, st) {
		progressed = true
	}

	return progressed, false
}

// runReduction times and records one enabled reduction call; a disabled
// reduction is a no-op that touches no statistics.
func (d *driver) runReduction(name string, enabled bool, fn func(*vcgraph.State) bool, st *vcgraph.State) bool {
	if !enabled {
		return false
	}
	before := st.RemainingVertices
	start := time.Now()
	ok := fn(st)
	d.stats.recordReduction(name, ok, before-st.RemainingVertices, time.Since(start))

	return ok
}
