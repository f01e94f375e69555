package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// loadConfig reads the config file, falling back to defaults when it does not exist
func loadConfig(path string, logger *zap.Logger) (utils.Config, error) {
	if path == "" {
		return utils.DefaultConfig(), nil
	}
	config, err := utils.LoadConfig(path)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			logger.Info("Using default configuration", zap.String("missing", path))
			return utils.DefaultConfig(), nil
		}
		return config, err
	}
	return config, nil
}

// readCases opens the input (stdin for "-") and parses every case in it
func readCases(path string, strict bool) ([]model.Case, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "[readCases] failed to open input: %+v", path)
		}
		defer f.Close()
		r = f
	}
	return model.ReadCases(r, strict)
}

// schedule returns the generation count and print interval for a case
func schedule(c model.Case, config utils.Config) (int, int) {
	if c.HasSchedule {
		return c.Generations, c.PrintEvery
	}
	return config.Generations, config.PrintEvery
}

// runCase steps one case through its schedule, printing every printEvery generations
func runCase(
	ctx context.Context,
	c model.Case,
	config utils.Config,
	renderer *model.TerminalRenderer,
	pool *model.GridPool,
	logger *zap.Logger,
) (*utils.Stats, error) {
	var (
		grid                   = c.Grid
		generations, printEach = schedule(c, config)
		stats                  = utils.NewStats()
		stagnantCount          = 0
	)

	if err := renderer.Header(grid); err != nil {
		return stats, err
	}

	for generation := 0; ; generation++ {
		if generation%printEach == 0 {
			if err := renderer.Display(grid, generation); err != nil {
				return stats, err
			}
		}
		if generation >= generations {
			break
		}
		if err := ctx.Err(); err != nil {
			logger.Info("Stopping case early", zap.Int("generation", generation), zap.Error(err))
			break
		}

		if config.StopOnStagnation {
			if grid.IsStagnant() {
				stagnantCount++
			} else {
				stagnantCount = 0
			}
			grid.UpdateHistory()
			if stagnantCount >= config.StagnationThreshold {
				logger.Info("Stagnation detected", zap.Int("generation", generation))
				if generation%printEach != 0 {
					if err := renderer.Display(grid, generation); err != nil {
						return stats, err
					}
				}
				break
			}
		}

		start := time.Now()
		next, err := grid.NextGeneration(config.UseParallel, pool)
		if err != nil {
			return stats, errors.Wrapf(err, "[runCase] generation %d", generation+1)
		}
		model.GridToPool(grid, pool)
		grid = next

		population := grid.CountLivingCells()
		stats.Update(generation+1, population, time.Since(start))
		logger.Debug("Generation evolved",
			zap.Int("generation", generation+1),
			zap.Int("population", population))
	}

	return stats, nil
}
