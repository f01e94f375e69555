package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Options collected from the command line. Negative ints and false bools leave the config untouched.
type Options struct {
	configPath  string
	inputPath   string
	generations int
	printEvery  int
	parallel    bool
	strict      bool
	color       bool
	verbose     bool
}

func initOptions() *Options {
	o := &Options{
		configPath:  "config.json",
		inputPath:   "-",
		generations: -1,
		printEvery:  -1,
	}
	flaggy.SetName("go-life")
	flaggy.SetDescription("Mixed Conway/Fredkin cellular automaton")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&o.configPath, "c", "config", "Path to a JSON or YAML config file")
	flaggy.String(&o.inputPath, "i", "input", "Case file to run, '-' for stdin")
	flaggy.Int(&o.generations, "g", "generations", "Generations to evolve each case")
	flaggy.Int(&o.printEvery, "p", "print-every", "Print every N generations")
	flaggy.Bool(&o.parallel, "P", "parallel", "Evaluate rows in parallel")
	flaggy.Bool(&o.strict, "s", "strict", "Reject characters the renderer cannot produce")
	flaggy.Bool(&o.color, "C", "color", "Colorize live cells")
	flaggy.Bool(&o.verbose, "v", "verbose", "Enable debug logging")
	flaggy.Parse()
	return o
}

// apply overlays the flags that were set on config
func (o *Options) apply(config utils.Config) utils.Config {
	if o.generations >= 0 {
		config.Generations = o.generations
	}
	if o.printEvery >= 0 {
		config.PrintEvery = o.printEvery
	}
	config.UseParallel = config.UseParallel || o.parallel
	config.Strict = config.Strict || o.strict
	config.Color = config.Color || o.color
	return config
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func main() {
	opts := initOptions()

	logger, err := newLogger(opts.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(opts, logger); err != nil {
		logger.Error("Run failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(opts *Options, logger *zap.Logger) error {
	config, err := loadConfig(opts.configPath, logger)
	if err != nil {
		return err
	}
	config = opts.apply(config)
	if err = config.Validate(); err != nil {
		return err
	}

	cases, err := readCases(opts.inputPath, config.Strict)
	if err != nil {
		return err
	}

	// Handle Ctrl+C gracefully: the current case stops at the next generation boundary
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}
	renderer := model.NewTerminalRenderer(os.Stdout, config.Color)

	logger.Info("Running cases",
		zap.Int("cases", len(cases)),
		zap.Bool("parallel", config.UseParallel),
		zap.Bool("strict", config.Strict))

	for i, c := range cases {
		stats, err := runCase(ctx, c, config, renderer, pool, logger)
		if err != nil {
			return err
		}
		logger.Info("Case finished",
			zap.Int("case", i+1),
			zap.String("kind", c.Grid.GetKind().String()),
			zap.Int("generations", stats.TotalGenerations),
			zap.Int("population", stats.Population),
			zap.Int("peak_population", stats.PeakPopulation),
			zap.Float64("avg_population", stats.AveragePopulation),
			zap.Float64("gen_per_sec", stats.GenerationsPerSecond),
			zap.Duration("runtime", time.Since(stats.StartTime)))
		if ctx.Err() != nil {
			break
		}
	}
	return nil
}
