// File: gates.go
// Role: the selective-reduction gates — density band, undecided-degree
// coefficient of variation, odd-cycle ratio — that decide whether the
// more expensive reductions are worth attempting on the current residual
// graph. See DESIGN.md for why these particular estimators.
package solver

import (
	"math"

	"github.com/katalvlaran/vcbr/vcgraph"
)

// density estimates the residual graph's edge density among undecided
// vertices: |E| / C(remaining, 2).
func density(st *vcgraph.State) float64 {
	n := st.RemainingVertices
	if n < 2 {
		return 0
	}
	degSum := 0
	for v := 0; v < st.G.N; v++ {
		if st.S[v] == vcgraph.Undecided {
			degSum += st.UndecidedDegree(v)
		}
	}
	maxEdges := n * (n - 1) / 2

	return float64(degSum/2) / float64(maxEdges)
}

// degreeVariance is the coefficient of variation (stddev / mean) of
// undecided degree across undecided vertices.
func degreeVariance(st *vcgraph.State) float64 {
	n := st.RemainingVertices
	if n == 0 {
		return 0
	}
	var sum, sumSq float64
	for v := 0; v < st.G.N; v++ {
		if st.S[v] != vcgraph.Undecided {
			continue
		}
		d := float64(st.UndecidedDegree(v))
		sum += d
		sumSq += d * d
	}
	mean := sum / float64(n)
	if mean == 0 {
		return 0
	}
	variance := sumSq/float64(n) - mean*mean
	if variance < 0 {
		variance = 0
	}

	return math.Sqrt(variance) / mean
}

// oddCycleRatio approximates the "odd-cycle ratio" LP gate as the
// fraction of undecided vertices with odd undecided degree — a cheap
// proxy for how far the residual graph is from bipartite (LP fixes the
// most vertices on graphs with an odd-cycle structure).
func oddCycleRatio(st *vcgraph.State) float64 {
	n := st.RemainingVertices
	if n == 0 {
		return 0
	}
	odd := 0
	for v := 0; v < st.G.N; v++ {
		if st.S[v] == vcgraph.Undecided && st.UndecidedDegree(v)%2 == 1 {
			odd++
		}
	}

	return float64(odd) / float64(n)
}

func inDensityBand(st *vcgraph.State, cfg *Config) bool {
	d := density(st)

	return d >= cfg.DensityMin && d <= cfg.DensityMax
}
