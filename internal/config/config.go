// Package config loads the YAML configuration of the velvetgraph CLI.
//
// Every field has a default; a missing file path means "defaults only".
// Command line flags are applied on top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/velvet/internal/logging"
)

// ErrInvalid is returned for configurations that fail validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root of the YAML document.
type Config struct {
	Log    Log    `yaml:"log"`
	Parse  Parse  `yaml:"parse"`
	Runner Runner `yaml:"runner"`
}

// Log configures internal/logging.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Parse configures LastGraph and Sequences parsing.
type Parse struct {
	SkipReadTracking   bool  `yaml:"skip_read_tracking"`
	InterestingReadIDs []int `yaml:"interesting_read_ids,omitempty"`
	InterestingNodeIDs []int `yaml:"interesting_node_ids,omitempty"`
	// PrefilterContext enables the grep-style prefilter when > 0.
	PrefilterContext int `yaml:"prefilter_context"`
}

// Runner configures the velvet binaries.
type Runner struct {
	Velveth  string `yaml:"velveth"`
	Velvetg  string `yaml:"velvetg"`
	Kmer     int    `yaml:"kmer"`
	TempRoot string `yaml:"temp_root"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:    Log{Level: "info", Format: "text"},
		Runner: Runner{Velveth: "velveth", Velvetg: "velvetg", Kmer: 31},
	}
}

// Load reads path over Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses a YAML document over Default and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if !logging.ValidLevel(c.Log.Level) {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if c.Parse.PrefilterContext < 0 {
		return fmt.Errorf("%w: parse.prefilter_context %d", ErrInvalid, c.Parse.PrefilterContext)
	}
	if c.Parse.PrefilterContext > 0 && len(c.Parse.InterestingReadIDs) == 0 && len(c.Parse.InterestingNodeIDs) == 0 {
		return fmt.Errorf("%w: parse.prefilter_context needs interesting read or node ids", ErrInvalid)
	}
	for _, id := range c.Parse.InterestingNodeIDs {
		if id <= 0 {
			return fmt.Errorf("%w: parse.interesting_node_ids contains %d", ErrInvalid, id)
		}
	}
	if c.Runner.Kmer <= 0 || c.Runner.Kmer%2 == 0 {
		return fmt.Errorf("%w: runner.kmer %d must be positive and odd", ErrInvalid, c.Runner.Kmer)
	}
	if c.Runner.Velveth == "" || c.Runner.Velvetg == "" {
		return fmt.Errorf("%w: runner binaries must be named", ErrInvalid)
	}
	return nil
}

// Marshal renders c as YAML, e.g. to write a starter file.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
