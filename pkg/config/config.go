// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/user/pixelfx/pkg/engine"
	"github.com/user/pixelfx/pkg/filters"
	"github.com/user/pixelfx/pkg/orchestrator"
	"github.com/user/pixelfx/pkg/ports"
)

var (
	// ErrUnknownPreset is returned for preset names that do not exist.
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrUnknownFormat is returned for output formats that cannot be written.
	ErrUnknownFormat = errors.New("unknown output format")
)

// Config represents the full configuration for pixelfx.
type Config struct {
	// Filter chain. Preset is used when Filters is empty.
	Filters []string       `yaml:"filters"`
	Preset  string         `yaml:"preset"`
	Params  filters.Params `yaml:"params"`

	// Randomness. Seed 0 picks a time-based seed.
	Seed        int64 `yaml:"seed"`
	RollChannel bool  `yaml:"roll_channel"`

	// Output
	Format       string `yaml:"format"` // png, jpeg or bmp; empty infers from the output path
	Quality      int    `yaml:"quality"`
	MaxDimension int    `yaml:"max_dimension"`
	SideBySide   bool   `yaml:"side_by_side"`
	Gap          int    `yaml:"gap"`

	// Batch
	Workers int `yaml:"workers"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`

	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Params:      filters.DefaultParams(),
		RollChannel: true,
		Quality:     90,
		Gap:         10,
		Workers:     4,
		DebugDir:    "./debug",
		LogLevel:    "info",
	}
}

// LoadFromFile loads configuration from a YAML file.
// Keys missing from the file keep their default values.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Chain resolves the filter chain from Filters, falling back to Preset.
func (c Config) Chain() ([]engine.Filter, error) {
	if len(c.Filters) > 0 {
		return engine.ParseFilters(c.Filters)
	}
	if c.Preset == "" {
		return nil, nil
	}
	chain, ok := engine.Preset(c.Preset)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, c.Preset)
	}
	return chain, nil
}

// OutputFormat resolves Format, or the extension of outputPath when Format
// is empty. PNG is the fallback for unknown extensions.
func (c Config) OutputFormat(outputPath string) (ports.ImageFormat, error) {
	name := strings.ToLower(c.Format)
	if name == "" {
		name = strings.TrimPrefix(strings.ToLower(filepath.Ext(outputPath)), ".")
		if f, ok := ports.ParseImageFormat(name); ok && f != ports.FormatWebP {
			return f, nil
		}
		return ports.FormatPNG, nil
	}
	f, ok := ports.ParseImageFormat(name)
	if !ok || f == ports.FormatWebP {
		return ports.FormatPNG, fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	return f, nil
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
// Parameters are clamped into their documented ranges.
func (c Config) ToOrchestratorConfig(outputPath string) (orchestrator.Config, error) {
	chain, err := c.Chain()
	if err != nil {
		return orchestrator.Config{}, err
	}
	format, err := c.OutputFormat(outputPath)
	if err != nil {
		return orchestrator.Config{}, err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return orchestrator.Config{
		Filters:      chain,
		Params:       c.Params.Clamped(),
		Seed:         seed,
		RollChannel:  c.RollChannel,
		Format:       format,
		Quality:      clampQuality(c.Quality),
		MaxDimension: c.MaxDimension,
		SideBySide:   c.SideBySide,
		Gap:          c.Gap,
		Workers:      c.Workers,
	}, nil
}

func clampQuality(q int) int {
	if q < 1 {
		return 1
	}
	if q > 100 {
		return 100
	}
	return q
}
