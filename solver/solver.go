// File: solver.go
// Role: Solver — the top-level entry point. Resolves Config, allocates a
// fresh State, runs the driver, and reports a Result.
package solver

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/vcbr/branch"
	"github.com/katalvlaran/vcbr/vcgraph"
)

// Solver is a reusable, stateless configuration: one Solver can Solve
// many graphs, each call starting from a fresh State.
type Solver struct {
	cfg Config
	id  uuid.UUID
}

// New resolves opts into a Config and tags the Solver with a run id
// used to correlate its log lines across a solve.
func New(opts ...Option) (*Solver, error) {
	cfg, err := resolveConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Solver{cfg: cfg, id: uuid.New()}, nil
}

// Result is the outcome of one Solve call.
type Result struct {
	Status   Status
	Value    int
	Solution []vcgraph.Value // indexed by internal vertex id, length g.N
	Stats    *Stats
}

// Solve computes an exact minimum vertex cover of g.
func (s *Solver) Solve(g *vcgraph.Graph) (*Result, error) {
	st := vcgraph.NewState(g)
	stats := NewStats()

	var deadline time.Time
	hasDeadline := s.cfg.Timeout > 0
	if hasDeadline {
		deadline = time.Now().Add(s.cfg.Timeout)
	}

	var rng *rand.Rand
	if s.cfg.BranchRule == branch.Random {
		rng = rand.New(rand.NewSource(s.cfg.Seed))
	}

	d := &driver{
		cfg:         &s.cfg,
		stats:       stats,
		deadline:    deadline,
		hasDeadline: hasDeadline,
		cancel:      s.cfg.Cancel,
		originSize:  g.N,
		rng:         rng,
		logger:      s.cfg.Logger.With().Str("run_id", s.id.String()).Logger(),
		best:        g.N + 1,
	}

	d.logger.Debug().Int("n", g.N).Msg("solve start")
	start := time.Now()
	d.rec(st, 0, sideRoot)
	stats.Runtime = time.Since(start)

	status := Normal
	if d.timedOut {
		status = Timeout
	}
	stats.Status = status
	stats.Value = d.best
	stats.RootLB = d.rootLB

	solution := d.solution
	if solution == nil {
		solution = make([]vcgraph.Value, g.N)
	}
	d.logger.Debug().Int("value", d.best).Str("status", status.String()).Msg("solve done")

	return &Result{Status: status, Value: d.best, Solution: solution, Stats: stats}, nil
}
