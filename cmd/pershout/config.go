package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the command-line flags so recurring runs can live in a
// YAML file. Flags set explicitly on the command line override file values.
type Config struct {
	Input      string `yaml:"input"`
	Delimiter  string `yaml:"delimiter"`
	SkipHeader int    `yaml:"skip_header"`

	K           int     `yaml:"k"`
	Metric      string  `yaml:"metric"`
	MinkowskiP  float64 `yaml:"minkowski_p"`
	Parallelism int     `yaml:"parallelism"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	Output struct {
		Path        string `yaml:"path"`
		Format      string `yaml:"format"`
		Compression string `yaml:"compression"`
	} `yaml:"output"`
}

// DefaultConfig returns the configuration used when neither file nor flags
// say otherwise. The defaults mirror the scoring pipeline's own defaults.
func DefaultConfig() Config {
	cfg := Config{
		Delimiter:  ",",
		SkipHeader: 1,
		K:          20,
		Metric:     "euclidean",
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Output.Format = "csv"
	cfg.Output.Compression = "none"
	return cfg
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
