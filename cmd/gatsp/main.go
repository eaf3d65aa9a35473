// Command gatsp searches for a short closed tour through a set of cities
// with a genetic algorithm.
//
// Usage:
//
//	gatsp [flags] <count>   search over <count> random cities
//	gatsp [flags] <prefix>  load <prefix>_xy.csv and <prefix>_name.csv
//
// Exit codes: 0 on success, 1 when input or configuration cannot be used
// or the search fails, 2 on bad usage, 130 when interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvlath-ga/cities"
	"github.com/katalvlaran/lvlath-ga/config"
	"github.com/katalvlaran/lvlath-ga/genetic"
	"github.com/katalvlaran/lvlath-ga/render"
	"github.com/katalvlaran/lvlath-ga/report"
	"github.com/katalvlaran/lvlath-ga/tsp"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// errUsage marks command lines that do not parse.
var errUsage = errors.New("usage")

// cli holds the parsed command line.
type cli struct {
	configPath string
	render     bool
	baseline   bool
	polish     bool
	verbose    bool
	routes     bool
	side       float64
	target     string

	run config.Run
}

// parseArgs applies flags over the config file, which applies over the
// defaults. Only flags that were set override the file.
func parseArgs(args []string, stderr io.Writer) (cli, error) {
	var (
		c  cli
		fs = flag.NewFlagSet("gatsp", flag.ContinueOnError)

		seed       = fs.Int64("seed", 0, "RNG seed (0 selects the fixed default)")
		gens       = fs.Int("generations", genetic.DefaultGenerations, "generation budget")
		pop        = fs.Int("population", genetic.DefaultPopulationSize, "tours per generation")
		rate       = fs.Float64("mutation-rate", genetic.DefaultMutationRate, "per-position mutation probability")
		selection  = fs.String("selection", genetic.SelectRankPair, "selection: rank-pair | tournament")
		tournament = fs.Int("tournament-size", genetic.DefaultTournamentSize, "contestants per tournament")
		crossover  = fs.String("crossover", genetic.CrossOnePoint, "crossover: one-point | segment")
		mutation   = fs.String("mutation", genetic.MutateSwap, "mutation: swap | per-position")
	)
	fs.SetOutput(stderr)
	fs.StringVar(&c.configPath, "config", "", "YAML or TOML run file")
	fs.BoolVar(&c.render, "render", false, "draw checkpoints in the terminal")
	fs.BoolVar(&c.baseline, "baseline", false, "compare with the exact optimum (small inputs only)")
	fs.BoolVar(&c.polish, "polish", false, "improve the result with 2-opt")
	fs.BoolVar(&c.verbose, "verbose", false, "debug logging")
	fs.BoolVar(&c.routes, "log-routes", false, "log the best route at every checkpoint")
	fs.Float64Var(&c.side, "side", cities.DefaultSide, "square side for random cities")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: gatsp [flags] <count>|<prefix>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cli{}, fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return cli{}, fmt.Errorf("%w: want one city source, got %d", errUsage, fs.NArg())
	}
	c.target = fs.Arg(0)

	c.run = config.Default()
	if c.configPath != "" {
		r, err := config.Load(c.configPath)
		if err != nil {
			return cli{}, err
		}
		c.run = r
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			c.run.Seed = *seed
		case "generations":
			c.run.Generations = *gens
		case "population":
			c.run.PopulationSize = *pop
		case "mutation-rate":
			c.run.MutationRate = *rate
		case "selection":
			c.run.Selection = *selection
		case "tournament-size":
			c.run.TournamentSize = *tournament
		case "crossover":
			c.run.Crossover = *crossover
		case "mutation":
			c.run.Mutation = *mutation
		}
	})

	return c, nil
}

// newLogger writes console-encoded entries to w.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)

	return zap.New(core)
}

// loadTable builds random cities for an integer target, drawing from rng,
// and loads the prefix files otherwise.
func loadTable(target string, side float64, rng *rand.Rand) (*cities.Table, error) {
	if n, err := strconv.Atoi(target); err == nil {
		return cities.Random(n, rng, side)
	}

	return cities.LoadFiles(target)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c, err := parseArgs(args, stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage):
		return exitUsage
	case err != nil:
		fmt.Fprintln(stderr, "gatsp:", err)
		return exitFailure
	}

	log := newLogger(stderr, c.verbose)
	defer log.Sync() //nolint:errcheck

	opts, err := c.run.Options()
	if err != nil {
		log.Error("invalid run parameters", zap.Error(err))
		return exitFailure
	}

	// One stream per run: random cities are drawn first, the engine
	// continues from the same source.
	opts.Rand = genetic.NewRand(c.run.Seed)
	table, err := loadTable(c.target, c.side, opts.Rand)
	if err != nil {
		log.Error("cannot load cities", zap.String("source", c.target), zap.Error(err))
		return exitFailure
	}
	log.Info("cities loaded",
		zap.Int("count", table.Len()),
		zap.String("source", c.target),
		zap.Int("population", opts.PopulationSize),
		zap.Int("generations", opts.Generations),
		zap.String("selection", opts.Selector.Name()),
		zap.String("crossover", opts.Crossover.Name()),
		zap.String("mutation", opts.Mutator.Name()),
	)

	reporters := report.Multi{report.NewLogger(log, table, c.routes)}
	var (
		screen tcell.Screen
		live   *render.Live
	)
	if c.render {
		screen, err = tcell.NewScreen()
		if err == nil {
			err = screen.Init()
		}
		if err != nil {
			log.Error("cannot open terminal", zap.Error(err))
			return exitFailure
		}
		defer screen.Fini()
		live = render.NewLive(render.NewTerminal(screen), table)
		reporters = append(reporters, live)
	}
	opts.Reporter = reporters

	engine, err := genetic.NewEngine(table, opts)
	if err != nil {
		log.Error("cannot start search", zap.Error(err))
		return exitFailure
	}

	res, runErr := engine.Run(ctx)
	if live != nil {
		if err := live.Close(); err != nil {
			log.Warn("rendering failed", zap.Error(err))
		}
		log.Debug("render frames dropped", zap.Int64("dropped", live.Dropped()))
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("search failed", zap.Error(runErr))
		return exitFailure
	}

	if c.render {
		waitForKey(screen, table, res)
	}
	if err := report.WriteSummary(stdout, res); err != nil {
		log.Error("cannot write summary", zap.Error(err))
		return exitFailure
	}
	if c.polish {
		polish(stdout, log, table, res)
	}
	if c.baseline {
		baseline(stdout, log, table, res)
	}

	if runErr != nil {
		log.Warn("search interrupted", zap.Int("generation", res.Generations))
		return exitInterrupted
	}

	return exitOK
}

// polish runs 2-opt on the result and prints the improved route.
func polish(w io.Writer, log *zap.Logger, table *cities.Table, res genetic.Result) {
	p, err := tsp.TwoOpt(table.Distances(), res.Order)
	if err != nil {
		log.Warn("2-opt failed", zap.Error(err))
		return
	}
	route, err := table.Route(p.Order)
	if err != nil {
		log.Warn("2-opt failed", zap.Error(err))
		return
	}
	_ = report.WriteSummary(w, genetic.Result{Route: route, Length: p.Length, Generations: res.Generations, Crossings: res.Crossings})
}

// baseline prints the optimality gap when the exact solver can handle n,
// and the 1-tree bound otherwise.
func baseline(w io.Writer, log *zap.Logger, table *cities.Table, res genetic.Result) {
	opt, err := tsp.Exact(table.Distances())
	if errors.Is(err, tsp.ErrTooLarge) {
		log.Debug("exact baseline skipped", zap.Int("cities", table.Len()), zap.Int("max", tsp.MaxExact))
		lb, err := tsp.LowerBound(table.Distances())
		if err != nil {
			log.Warn("lower bound failed", zap.Error(err))
			return
		}
		_ = report.WriteBound(w, res.Length, lb)
		return
	}
	if err != nil {
		log.Warn("baseline failed", zap.Error(err))
		return
	}
	_ = report.WriteGap(w, res.Length, opt.Length)
}

// waitForKey shows the final tour until a key is pressed.
func waitForKey(s tcell.Screen, table *cities.Table, res genetic.Result) {
	caption := fmt.Sprintf("final length %.2f  (press any key)", res.Length)
	if err := render.NewTerminal(s).Render(table, res.Order, caption); err != nil {
		return
	}
	for {
		if _, ok := s.PollEvent().(*tcell.EventKey); ok {
			return
		}
	}
}
