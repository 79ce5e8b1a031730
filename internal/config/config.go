// Package config provides configuration management for the exporter.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"pttrag/internal/chunker"
)

// Configuration validation errors.
var (
	ErrMissingInput        = errors.New("exporter.input is required")
	ErrMissingOutputPath   = errors.New("exporter.output.path is required")
	ErrInvalidOutputFormat = errors.New("exporter.output.format must be 'jsonl'")
	ErrMissingSource       = errors.New("exporter.source is required")
	ErrInvalidMaxChars     = errors.New("exporter.chunking.max_chars must be at least 1")
	ErrInvalidOverlap      = errors.New("exporter.chunking.overlap must be non-negative")
	ErrOverlapTooLarge     = errors.New("exporter.chunking.overlap must be smaller than max_chars")
	ErrInvalidLogLevel     = errors.New("exporter.logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat    = errors.New("exporter.logging.format must be 'text' or 'json'")
	ErrInvalidSampleSize   = errors.New("exporter.report.sample_titles must be non-negative")
)

// Config represents the complete exporter configuration.
type Config struct {
	Exporter ExporterConfig `yaml:"exporter"`
}

// ExporterConfig contains the settings for one export run.
type ExporterConfig struct {
	// Input is the path of the JSON document holding the article collection.
	Input string `yaml:"input"`
	// Source tags every emitted record with its origin platform.
	Source string `yaml:"source"`
	// ExcludeMarkers drop an article when its title contains any of them
	// as a plain substring.
	ExcludeMarkers []string `yaml:"exclude_markers"`
	Output         OutputConfig   `yaml:"output"`
	Chunking       ChunkingConfig `yaml:"chunking"`
	Logging        LoggingConfig  `yaml:"logging"`
	Report         ReportConfig   `yaml:"report"`
}

// OutputConfig defines where and how records are written.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

// ChunkingConfig defines the chunk window parameters.
type ChunkingConfig struct {
	MaxChars int `yaml:"max_chars"`
	Overlap  int `yaml:"overlap"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ReportConfig defines the optional markdown run report.
type ReportConfig struct {
	// Path receives the rendered report; empty disables the file.
	Path string `yaml:"path"`
	// SampleTitles caps how many skipped titles the report lists.
	SampleTitles int `yaml:"sample_titles"`
}

// DefaultConfig returns the configuration matching the historical fixed
// constants of the export job.
func DefaultConfig() *Config {
	return &Config{
		Exporter: ExporterConfig{
			Input:          "CFantasy-2-4000.json",
			Source:         "PTT",
			ExcludeMarkers: []string{"[原創]"},
			Output: OutputConfig{
				Path:   "CFantasy-2-4000_cleaned.jsonl",
				Format: "jsonl",
			},
			Chunking: ChunkingConfig{
				MaxChars: chunker.DefaultMaxChars,
				Overlap:  chunker.DefaultOverlap,
			},
			Logging: LoggingConfig{
				Level:  "info",
				Format: "text",
			},
			Report: ReportConfig{
				SampleTitles: 5,
			},
		},
	}
}

// LoadConfig loads configuration from a YAML file layered over the
// defaults, then applies environment overrides. A .env file in the working
// directory is honored; real environment variables take precedence.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Load returns the default configuration with environment overrides
// applied, for runs without a config file.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides layers PTTRAG_* environment variables over the config.
func (c *Config) applyEnvOverrides() {
	_ = godotenv.Load()

	if v := os.Getenv("PTTRAG_INPUT"); v != "" {
		c.Exporter.Input = v
	}

	if v := os.Getenv("PTTRAG_OUTPUT"); v != "" {
		c.Exporter.Output.Path = v
	}

	if v := os.Getenv("PTTRAG_SOURCE"); v != "" {
		c.Exporter.Source = v
	}

	if v := os.Getenv("PTTRAG_LOG_LEVEL"); v != "" {
		c.Exporter.Logging.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	exp := &c.Exporter

	if exp.Input == "" {
		return ErrMissingInput
	}

	if exp.Output.Path == "" {
		return ErrMissingOutputPath
	}

	if exp.Output.Format != "jsonl" {
		return ErrInvalidOutputFormat
	}

	if exp.Source == "" {
		return ErrMissingSource
	}

	if exp.Chunking.MaxChars < 1 {
		return ErrInvalidMaxChars
	}

	if exp.Chunking.Overlap < 0 {
		return ErrInvalidOverlap
	}

	// Unbounded overlap would walk the window backwards forever.
	if exp.Chunking.Overlap >= exp.Chunking.MaxChars {
		return ErrOverlapTooLarge
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[exp.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if exp.Logging.Format != "text" && exp.Logging.Format != "json" {
		return ErrInvalidLogFormat
	}

	if exp.Report.SampleTitles < 0 {
		return ErrInvalidSampleSize
	}

	return nil
}

// ChunkerOptions returns the configured chunk window parameters.
func (c *Config) ChunkerOptions() chunker.Options {
	return chunker.Options{
		MaxChars: c.Exporter.Chunking.MaxChars,
		Overlap:  c.Exporter.Chunking.Overlap,
	}
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s, Output: %s, Source: %s, MaxChars: %d, Overlap: %d}",
		c.Exporter.Input,
		c.Exporter.Output.Path,
		c.Exporter.Source,
		c.Exporter.Chunking.MaxChars,
		c.Exporter.Chunking.Overlap,
	)
}
