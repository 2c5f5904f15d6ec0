package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

var (
	errConfigRead    = errors.New("cannot read config file")
	errConfigInvalid = errors.New("invalid config file")
)

// defaultIterations keeps a full default run under a second on current
// hardware while staying well above timer resolution per scenario.
const defaultIterations = 1_000_000

// Config holds the benchmark configuration.
//
// It can be loaded from a HuJSON file (JSON with comments and trailing
// commas permitted) and overridden per-field by CLI flags.
type Config struct {
	// Iterations is the number of operations per scenario.
	Iterations int `json:"iterations"`

	// Scenarios lists the scenarios to run. Empty means all.
	Scenarios []string `json:"scenarios"`

	// Out is an optional path for the JSON report.
	Out string `json:"out,omitempty"`
}

// DefaultConfig returns the default configuration: all scenarios at
// defaultIterations, no report file.
func DefaultConfig() Config {
	return Config{Iterations: defaultIterations}
}

// LoadConfig reads a HuJSON config file. Fields absent from the file
// keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", errConfigRead, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", errConfigInvalid, err)
	}

	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errConfigInvalid, err)
	}

	return cfg, nil
}

// Validate checks iteration count and scenario names.
func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be > 0, got %d", errConfigInvalid, c.Iterations)
	}

	for _, name := range c.Scenarios {
		if lookupScenario(name) == nil {
			return fmt.Errorf("%w: unknown scenario %q (use --list)", errConfigInvalid, name)
		}
	}

	return nil
}
