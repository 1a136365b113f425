// File: report.go
// Role: Write — emits one tab-aligned "key\tvalue" line per statistic,
// in a fixed order, followed by a fixed reduction-name order so the
// output is diffable across runs.
package report

import (
	"fmt"
	"io"

	"github.com/katalvlaran/vcbr/solver"
)

// reductionOrder is the fixed schedule order reductions run in; printing
// in this order (rather than map iteration order) keeps output stable.
var reductionOrder = []string{
	"deg1", "fold2", "twin", "desk", "dominance", "unconfined", "lp", "packing", "funnel",
}

// boundOrder is the fixed order lower-bound counters are printed in.
var boundOrder = []string{"trivial", "clique", "lp", "cycle"}

// Write prints stats to w as tab-aligned key/value pairs.
func Write(w io.Writer, stats *solver.Stats) error {
	lines := [][2]string{
		{"status", stats.Status.String()},
		{"value", fmt.Sprintf("%d", stats.Value)},
		{"runtime", fmt.Sprintf("%.6f", stats.Runtime.Seconds())},
		{"num_branches", fmt.Sprintf("%d", stats.NumBranches)},
		{"num_leftcuts", fmt.Sprintf("%d", stats.NumLeftCuts)},
		{"root_lb", fmt.Sprintf("%d", stats.RootLB)},
	}
	for _, name := range reductionOrder {
		r := stats.Reductions[name]
		if r == nil {
			continue
		}
		lines = append(lines,
			[2]string{name + "Count", fmt.Sprintf("%d", r.Count)},
			[2]string{name + "Calls", fmt.Sprintf("%d", r.Calls)},
			[2]string{name + "AllCalls", fmt.Sprintf("%d", r.AllCalls)},
			[2]string{name + "Time", fmt.Sprintf("%.3f", float64(r.Time.Microseconds())/1000)},
		)
	}
	for _, name := range boundOrder {
		b := stats.Bounds[name]
		count := 0
		if b != nil {
			count = b.Count
		}
		lines = append(lines, [2]string{name + "LBCount", fmt.Sprintf("%d", count)})
	}
	for _, name := range []string{"clique", "cycle"} {
		b := stats.Bounds[name]
		var ms float64
		if b != nil {
			ms = float64(b.Time.Microseconds()) / 1000
		}
		lines = append(lines, [2]string{name + "LBTime", fmt.Sprintf("%.3f", ms)})
	}

	for _, kv := range lines {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", kv[0], kv[1]); err != nil {
			return err
		}
	}

	return nil
}
