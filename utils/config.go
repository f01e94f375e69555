package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for a simulation run
type Config struct {
	Generations         int  `json:"generations" yaml:"generations"`
	PrintEvery          int  `json:"print_every" yaml:"print_every"`
	UseParallel         bool `json:"use_parallel" yaml:"use_parallel"`
	UseMemoryPool       bool `json:"use_memory_pool" yaml:"use_memory_pool"`
	Strict              bool `json:"strict" yaml:"strict"`
	Color               bool `json:"color" yaml:"color"`
	StopOnStagnation    bool `json:"stop_on_stagnation" yaml:"stop_on_stagnation"`
	StagnationThreshold int  `json:"stagnation_threshold" yaml:"stagnation_threshold"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Generations:         10,
		PrintEvery:          1,
		UseParallel:         false,
		UseMemoryPool:       true,
		Strict:              false,
		Color:               false,
		StopOnStagnation:    false,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}
	return config, nil
}

// Validate rejects schedules the driver cannot run
func (c Config) Validate() error {
	if c.Generations < 0 {
		return errors.Errorf("generations must not be negative, got %d", c.Generations)
	}
	if c.PrintEvery <= 0 {
		return errors.Errorf("print_every must be positive, got %d", c.PrintEvery)
	}
	if c.StopOnStagnation && c.StagnationThreshold <= 0 {
		return errors.Errorf("stagnation_threshold must be positive, got %d", c.StagnationThreshold)
	}
	return nil
}
