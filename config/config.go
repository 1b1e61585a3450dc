// Package config loads the optional blockbridge.yml configuration file.
// Every value has a working default; the file only overrides tunables,
// and CLI flags override the file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/akshaynair/blockbridge/core/parse"
	"github.com/akshaynair/blockbridge/core/snapshot"
)

// Config is the engine's tunable surface.
type Config struct {
	Parser struct {
		// MaxDepth bounds block tree recursion.
		MaxDepth int `yaml:"max_depth"`
		// SkipEmpty drops leaf blocks with no content and no attributes.
		SkipEmpty bool `yaml:"skip_empty"`
		// BlockTypes is an optional allow-list of block names.
		BlockTypes []string `yaml:"block_types"`
	} `yaml:"parser"`

	Snapshot struct {
		// MaxElements caps how many visible elements are considered.
		MaxElements int `yaml:"max_elements"`
		// RowTolerancePx is the vertical row-bucketing tolerance.
		RowTolerancePx float64 `yaml:"row_tolerance_px"`
	} `yaml:"snapshot"`

	Export struct {
		// Builders is the default target list for exports.
		Builders []string `yaml:"builders"`
		// OutputDir is where result files land.
		OutputDir string `yaml:"output_dir"`
	} `yaml:"export"`
}

// Default returns the built-in configuration.
func Default() Config {
	var cfg Config
	cfg.Parser.MaxDepth = parse.DefaultMaxDepth
	cfg.Snapshot.MaxElements = snapshot.DefaultMaxElements
	cfg.Snapshot.RowTolerancePx = snapshot.DefaultRowTolerance
	cfg.Export.Builders = []string{"gutenberg"}
	return cfg
}

// Load reads a YAML config file over the defaults. A missing path (or an
// empty path argument) yields the defaults without error; a present but
// malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseOptions converts the parser section into parse.Options.
func (c Config) ParseOptions() parse.Options {
	return parse.Options{
		MaxDepth:   c.Parser.MaxDepth,
		BlockTypes: c.Parser.BlockTypes,
		SkipEmpty:  c.Parser.SkipEmpty,
	}
}

// SnapshotOptions converts the snapshot section into snapshot.Options.
func (c Config) SnapshotOptions() snapshot.Options {
	return snapshot.Options{
		MaxElements:  c.Snapshot.MaxElements,
		RowTolerance: c.Snapshot.RowTolerancePx,
	}
}
