// File: config.go
// Role: Config / Option — the functional-options resolution layer
// in the functional-options style of core.GraphOption /
// builder.BuilderOption.
package solver

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/vcbr/branch"
)

// ErrCycleBoundRequiresLP is returned by New when CycleBound is enabled
// without LPReduction: the cycle bound walks the matching's out_flow
// graph, so it has nothing to walk unless LP reduction maintains it.
var ErrCycleBoundRequiresLP = errors.New("solver: cycle bound requires LP reduction to be enabled")

// ReductionMode selects when selectively-gated reductions run.
type ReductionMode int

const (
	// ModeAll runs gated reductions at every recursion depth.
	ModeAll ReductionMode = iota
	// ModeOnlyRoot restricts gated reductions to the root call.
	ModeOnlyRoot
)

// Config resolves every reduction/bound enable toggle and gating
// threshold, plus the ambient fields (logger, deadline, branching seed)
// this module adds.
type Config struct {
	Deg1, Dominance, Fold2, LPReduction, Unconfined bool
	Twin, Funnel, Desk, Packing                     bool

	CliqueBound, LPBound, CycleBound bool

	Mode ReductionMode

	BranchRule branch.Rule
	Seed       int64

	Timeout time.Duration

	// Cancel, when non-nil, is polled alongside the timeout at every
	// recursive entry: a close unwinds the search exactly like a timeout
	// does (status Timeout, best-known value reported). This is how an
	// external signal (e.g. SIGINT) reaches the driver.
	Cancel <-chan struct{}

	// Selective-reduction thresholds: density band, undecided degree
	// coefficient of variation, and the odd-cycle ratio gating LP.
	DensityMin, DensityMax float64
	DegreeVariance         float64
	OddCycleRatio          float64

	// SizeThreshold is the residual-size ceiling below which reduce() is
	// attempted at all.
	SizeThreshold int

	// ShrinkFactor / MinOriginSize gate component decomposition on a
	// single surviving component.
	ShrinkFactor  float64
	MinOriginSize int

	// MaxDepth bounds recursion depth; 0 means unbounded. See DESIGN.md
	// for why this knob exists beyond the timeout.
	MaxDepth int

	Logger zerolog.Logger
}

// Option mutates a Config before New resolves it.
type Option func(*Config)

// DefaultConfig is the baseline configuration: every reduction and
// bound enabled, max-degree branching, mode all.
func DefaultConfig() Config {
	return Config{
		Deg1: true, Dominance: true, Fold2: true, LPReduction: true, Unconfined: true,
		Twin: true, Funnel: true, Desk: true, Packing: true,
		CliqueBound: true, LPBound: true, CycleBound: true,
		Mode:           ModeAll,
		BranchRule:     branch.MaxDegree,
		DensityMin:     0.0,
		DensityMax:     1.0,
		DegreeVariance: 0.75,
		OddCycleRatio:  0.1,
		SizeThreshold:  1 << 30,
		ShrinkFactor:   2.0,
		MinOriginSize:  100,
		Logger:         zerolog.Nop(),
	}
}

// resolveConfig resolves opts over DefaultConfig and validates
// cross-field rules; the exported constructor is Solver's New.
func resolveConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.CycleBound && !cfg.LPReduction {
		return Config{}, ErrCycleBoundRequiresLP
	}

	return cfg, nil
}

func WithTimeout(d time.Duration) Option     { return func(c *Config) { c.Timeout = d } }
func WithCancel(ch <-chan struct{}) Option   { return func(c *Config) { c.Cancel = ch } }
func WithBranchRule(r branch.Rule) Option    { return func(c *Config) { c.BranchRule = r } }
func WithSeed(seed int64) Option             { return func(c *Config) { c.Seed = seed } }
func WithMode(m ReductionMode) Option        { return func(c *Config) { c.Mode = m } }
func WithLogger(l zerolog.Logger) Option     { return func(c *Config) { c.Logger = l } }
func WithMaxDepth(depth int) Option          { return func(c *Config) { c.MaxDepth = depth } }
func WithSizeThreshold(n int) Option         { return func(c *Config) { c.SizeThreshold = n } }

// WithReductions toggles every reduction enable at once (the CLI layer
// resolves individual --no-X flags down to this).
func WithReductions(deg1, dominance, fold2, lp, unconfined, twin, funnel, desk, packing bool) Option {
	return func(c *Config) {
		c.Deg1, c.Dominance, c.Fold2, c.LPReduction, c.Unconfined = deg1, dominance, fold2, lp, unconfined
		c.Twin, c.Funnel, c.Desk, c.Packing = twin, funnel, desk, packing
	}
}

// WithBounds toggles the three non-trivial lower bounds at once.
func WithBounds(clique, lp, cycle bool) Option {
	return func(c *Config) { c.CliqueBound, c.LPBound, c.CycleBound = clique, lp, cycle }
}

// WithThresholds sets the selective-reduction gating band.
func WithThresholds(densityMin, densityMax, degreeVariance, oddCycleRatio float64) Option {
	return func(c *Config) {
		c.DensityMin, c.DensityMax = densityMin, densityMax
		c.DegreeVariance = degreeVariance
		c.OddCycleRatio = oddCycleRatio
	}
}

// WithShrink sets the component-decomposition single-component trigger.
func WithShrink(factor float64, minOriginSize int) Option {
	return func(c *Config) { c.ShrinkFactor = factor; c.MinOriginSize = minOriginSize }
}
