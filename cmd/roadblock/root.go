// Command roadblock is the place-and-route engine's CLI harness: it reads
// a synthesized gate-level netlist, places it on a grid, routes every net,
// and dumps the per-layer route matrices. Argument parsing and file I/O
// live here, outside the engine packages themselves, per the
// specification's "CLI parsing is out of scope for the engine" framing —
// this command is the thin shell that wires the engine packages together.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/roadblock/geom"
	"github.com/katalvlaran/roadblock/internal/rlog"
	"github.com/katalvlaran/roadblock/internal/rng"
	"github.com/katalvlaran/roadblock/netlist"
	"github.com/katalvlaran/roadblock/placement"
	"github.com/katalvlaran/roadblock/placer"
	"github.com/katalvlaran/roadblock/router"
)

// runConfig holds every flag the root command accepts, gathered in one
// struct so newRootCmd's RunE closure has a single thing to read from.
type runConfig struct {
	seed         int64
	placeRetry   int
	anneal       bool
	maxSteps     int
	initTemp     float64
	minTemp      float64
	layers       int
	outerRetries int
	outDir       string
	verbose      bool
}

func newRootCmd() *cobra.Command {
	cfg := &runConfig{}

	cmd := &cobra.Command{
		Use:   "roadblock <tech-lib> <design-source> <module> <grid-side>",
		Short: "Place and route a synthesized gate-level netlist on a square grid",
		Long: "roadblock ingests a yosys-style JSON netlist, places its gates on a\n" +
			"grid-side x grid-side grid, routes every net across a layered maze,\n" +
			"and writes one routes-layer<k> file per layer to --out.",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, cfg)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.Int64Var(&cfg.seed, "seed", 0, "deterministic RNG seed (0 derives a fixed default seed)")
	flags.IntVar(&cfg.placeRetry, "place-retry", 1000, "per-gate random-placement retry budget")
	flags.BoolVar(&cfg.anneal, "anneal", false, "use simulated annealing instead of random-descent placement")
	flags.IntVar(&cfg.maxSteps, "max-steps", 2000, "placer step budget")
	flags.Float64Var(&cfg.initTemp, "init-temp", 5.0, "simulated annealing initial temperature")
	flags.Float64Var(&cfg.minTemp, "min-temp", 0.05, "simulated annealing temperature floor")
	flags.IntVar(&cfg.layers, "layers", 4, "router layer count")
	flags.IntVar(&cfg.outerRetries, "outer-iterations", 5000, "router rip-up-and-reroute outer iteration cap")
	flags.StringVar(&cfg.outDir, "out", ".", "directory to write routes-layer<k> files into")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "enable debug-level logging")

	return cmd
}

// run wires netlist.Ingest -> placement.New -> a Placer -> router.Route,
// emitting progress through an rlog.Logger and finishing with a per-layer
// dump. tech-lib is accepted and otherwise unused: the external synthesis
// tool that produced the netlist JSON is the thing that consults it, not
// this engine (see the ingestion interface notes).
func run(args []string, cfg *runConfig) error {
	_, designSource, module, gridSideArg := args[0], args[1], args[2], args[3]

	level := zap.InfoLevel
	if cfg.verbose {
		level = zap.DebugLevel
	}
	log, err := rlog.New(rlog.WithLevel(level), rlog.WithDevelopment())
	if err != nil {
		return fmt.Errorf("roadblock: building logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	gridSide, err := parseGridSide(gridSideArg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(designSource)
	if err != nil {
		return fmt.Errorf("roadblock: reading design source: %w", err)
	}

	nl, err := netlist.Ingest(data, module)
	if err != nil {
		log.Error("netlist ingestion failed", zap.Error(err))
		return fmt.Errorf("roadblock: ingesting %q: %w", module, err)
	}
	stats := nl.Stats()
	log.Info("netlist ingested",
		zap.String("module", module),
		zap.Int("gates", stats.Gates),
		zap.Int("ports", stats.Ports),
		zap.Int("nets", stats.Nets),
	)

	dim := geom.Point2{X: gridSide, Y: gridSide}
	grid, err := placement.New(nl, dim,
		placement.WithSeed(cfg.seed),
		placement.WithPlaceRetryCount(cfg.placeRetry),
		placement.WithLogger(log),
	)
	if err != nil {
		log.Error("initial placement failed", zap.Error(err))
		return fmt.Errorf("roadblock: constructing grid: %w", err)
	}

	if err := runPlacer(log, grid, cfg); err != nil {
		return err
	}

	session, err := router.Route(grid, cfg.layers, cfg.outerRetries, router.WithLogger(log))
	if err != nil {
		log.Error("routing failed", zap.Error(err))
		return fmt.Errorf("roadblock: routing: %w", err)
	}

	if err := session.Grid.DumpLayers(cfg.outDir); err != nil {
		log.Error("dumping routes failed", zap.Error(err))
		return fmt.Errorf("roadblock: dumping routes: %w", err)
	}
	log.Info("routes dumped", zap.String("dir", cfg.outDir), zap.Int("layers", session.Grid.MaxLayers()))

	return nil
}

// runPlacer drives either RandomDescent or SimulatedAnnealing to
// completion. Both variants log their own per-step accept/reject detail
// at Debug and their own finishing milestone at Info (see placer's
// random_descent.go / simulated_annealing.go); this loop only propagates
// step errors.
//
// The annealing run gets its own PRNG stream derived from the top-level
// seed (internal/rng.Derive), rather than reusing cfg.seed verbatim —
// the same raw seed already drives the grid's own placement/mutation
// stream (placement.WithSeed), and handing it to a second, independent
// generator would defeat the point of per-consumer stream derivation.
func runPlacer(log *rlog.Logger, grid *placement.GatesGrid, cfg *runConfig) error {
	var p placer.Placer
	if cfg.anneal {
		root := rng.FromSeed(cfg.seed)
		annealSeed := rng.Derive(root, 1).Int63()
		p = placer.NewSimulatedAnnealing(grid, cfg.maxSteps, cfg.initTemp, cfg.minTemp, annealSeed, placer.WithLogger(log))
	} else {
		p = placer.NewRandomDescent(grid, cfg.maxSteps, placer.WithLogger(log))
	}

	for {
		done, err := p.Step()
		if err != nil {
			log.Error("placer step failed", zap.Error(err))
			return fmt.Errorf("roadblock: placing: %w", err)
		}
		if done {
			break
		}
	}
	return nil
}

func parseGridSide(arg string) (int, error) {
	var side int
	if _, err := fmt.Sscanf(arg, "%d", &side); err != nil || side < 3 {
		return 0, fmt.Errorf("roadblock: grid-side must be an integer >= 3, got %q", arg)
	}
	return side, nil
}

// Execute runs the root command, returning its exit code.
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}
