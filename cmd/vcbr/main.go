// Command vcbr computes an exact minimum vertex cover of a graph loaded
// from a SNAP edge-list or DIMACS file, using the branch-and-reduce
// solver in package solver. Flags configure which reductions and bounds
// run, the branching rule, and a wall-clock timeout; SIGINT/SIGTERM
// trigger the same graceful-unwind path as the timeout.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/vcbr/branch"
	"github.com/katalvlaran/vcbr/report"
	"github.com/katalvlaran/vcbr/solver"
	"github.com/katalvlaran/vcbr/vcio"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("vcbr", pflag.ContinueOnError)

	noDeg1 := flags.Bool("no-deg1", false, "disable the degree-1 reduction")
	noDominance := flags.Bool("no-dominance", false, "disable the dominance reduction")
	noFold2 := flags.Bool("no-fold2", false, "disable the degree-2 fold reduction")
	noLP := flags.Bool("no-lp", false, "disable the LP (Nemhauser-Trotter) reduction")
	noUnconfined := flags.Bool("no-unconfined", false, "disable the unconfined reduction")
	noTwin := flags.Bool("no-twin", false, "disable the twin reduction")
	noFunnel := flags.Bool("no-funnel", false, "disable the funnel reduction")
	noDesk := flags.Bool("no-desk", false, "disable the desk reduction")
	noPacking := flags.Bool("no-packing", false, "disable packing-constraint propagation")

	noCliqueBound := flags.Bool("no-clique-bound", false, "disable the clique-cover lower bound")
	noLPBound := flags.Bool("no-lp-bound", false, "disable the LP lower bound")
	noCycleBound := flags.Bool("no-cycle-bound", false, "disable the cycle-cover lower bound")

	mode := flags.String("mode", "all", `gated-reduction scheduling: "all" or "only_root"`)
	branchRule := flags.Int("branch", 2, "branching rule: 0=random, 1=min-degree, 2=max-degree")
	seed := flags.Int64("seed", 1, "seed for random branch selection")
	timeout := flags.Duration("timeout", 0, "wall-clock budget (0 = unbounded)")
	sizeThreshold := flags.Int("size-threshold", 1<<30, "residual size above which reduce() is skipped")
	densityMin := flags.Float64("density-min", 0.0, "lower edge-density bound gating unconfined")
	densityMax := flags.Float64("density-max", 1.0, "upper edge-density bound gating unconfined")
	degreeVariance := flags.Float64("dv-dd", 0.75, "undecided-degree coefficient-of-variation ceiling gating unconfined")
	oddCycleRatio := flags.Float64("oc-lp", 0.1, "odd-cycle-ratio floor gating the LP reduction")
	printSolution := flags.Bool("solution", false, "also print the per-vertex solution line")
	verbose := flags.Bool("verbose", false, "emit solve start/finish debug logging to stderr")

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)

		return 1
	}
	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: vcbr [flags] <graph-file>")

		return 1
	}

	g, err := vcio.ParseFile(flags.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 1
	}

	reductionMode := solver.ModeAll
	if *mode == "only_root" {
		reductionMode = solver.ModeOnlyRoot
	}

	logger := zerolog.Nop()
	if *verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	cancel := make(chan struct{})
	go func() {
		<-sigCh
		close(cancel)
	}()

	opts := []solver.Option{
		solver.WithReductions(!*noDeg1, !*noDominance, !*noFold2, !*noLP, !*noUnconfined, !*noTwin, !*noFunnel, !*noDesk, !*noPacking),
		solver.WithBounds(!*noCliqueBound, !*noLPBound, !*noCycleBound),
		solver.WithMode(reductionMode),
		solver.WithBranchRule(branch.Rule(*branchRule)),
		solver.WithSeed(*seed),
		solver.WithSizeThreshold(*sizeThreshold),
		solver.WithThresholds(*densityMin, *densityMax, *degreeVariance, *oddCycleRatio),
		solver.WithLogger(logger),
		solver.WithCancel(cancel),
	}
	if *timeout > 0 {
		opts = append(opts, solver.WithTimeout(*timeout))
	}

	s, err := solver.New(opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 1
	}

	res, err := s.Solve(g)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 1
	}

	if err := report.Write(os.Stdout, res.Stats); err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 1
	}
	if *printSolution {
		if err := report.WriteSolution(os.Stdout, g, res.Solution); err != nil {
			fmt.Fprintln(os.Stderr, err)

			return 1
		}
	}

	return res.Stats.Status.ExitCode()
}
