// Package config loads the runner's YAML configuration: where inputs
// live and, per day, which answers are expected. The config only shapes
// the runner surface; it never changes what a solution computes.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the whole runner configuration.
type Config struct {
	// InputDir is where day inputs are looked up by default.
	InputDir string `yaml:"input_dir"`

	// Days holds per-day overrides and expected answers, keyed by day
	// number.
	Days map[int]Day `yaml:"days"`
}

// Day is the configuration for a single day.
type Day struct {
	// Input overrides the default input path for this day.
	Input string `yaml:"input"`

	// Part1 and Part2 are the expected answers, used by check. An
	// empty string means "not known yet".
	Part1 string `yaml:"part1"`
	Part2 string `yaml:"part2"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{InputDir: "inputs"}
}

// Load reads a YAML config from path. An empty path or a missing file
// yields the defaults; a file that exists but does not parse is an
// error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.InputDir == "" {
		cfg.InputDir = Default().InputDir
	}
	return cfg, nil
}

// InputPath returns the input file for day n: the per-day override if
// one is configured, otherwise dayNN.txt under the input directory.
func (c *Config) InputPath(n int) string {
	if d, ok := c.Days[n]; ok && d.Input != "" {
		return d.Input
	}
	return filepath.Join(c.InputDir, fmt.Sprintf("day%02d.txt", n))
}

// Expected returns the configured answer for a day's part, if any.
func (c *Config) Expected(n, part int) (string, bool) {
	d, ok := c.Days[n]
	if !ok {
		return "", false
	}
	want := d.Part1
	if part == 2 {
		want = d.Part2
	}
	return want, want != ""
}
