//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/ezrec/autoclip"
)

// Config holds the defaults for the clip command, and the global options.
// Explicitly set flags always take priority.
type Config struct {
	Radius       float64 `json:"radius"`
	MinNeighbors int     `json:"min_neighbors"`
	Background   string  `json:"background"`
	Workers      int     `json:"workers"`
	Verbosity    int     `json:"verbosity"`

	Progress autoclip.Progressor `json:"-"` // Clip progress display, if any
}

const (
	defaultRadius       = 1.5
	defaultMinNeighbors = 1
)

// DefaultConfig is used when no config file is given
func DefaultConfig() (cfg Config) {
	cfg = Config{
		Radius:       defaultRadius,
		MinNeighbors: defaultMinNeighbors,
	}
	return
}

// LoadConfig reads a JSON config file. Fields not set in the file keep
// their default values.
func LoadConfig(path string) (cfg Config, err error) {
	cfg = DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("config: read %s: %w", path, err)
		return
	}

	err = json.Unmarshal(data, &cfg)
	if err != nil {
		err = fmt.Errorf("config: parse %s: %w", path, err)
		return
	}

	if cfg.Radius < 0 || cfg.MinNeighbors < 0 || cfg.Workers < 0 {
		err = fmt.Errorf("config: %s: radius, min_neighbors and workers must not be negative", path)
		return
	}

	return
}

// Resolve applies the global flags that were explicitly given
func (cfg *Config) Resolve(flags *pflag.FlagSet) {
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}

	if flags.Changed("verbose") {
		cfg.Verbosity, _ = flags.GetCount("verbose")
	}
}
