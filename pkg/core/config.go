// Package core provides core types and configuration for cfscan
package core

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for cfscan
type Config struct {
	// Input configuration
	InputFile string `yaml:"input_file" json:"input_file"`
	BatchSize int    `yaml:"batch_size" json:"batch_size"` // Max domains to probe (0 = all)

	// HTTP configuration
	Timeout        time.Duration `yaml:"timeout" json:"timeout"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" json:"connect_timeout"`
	UserAgent      string        `yaml:"user_agent" json:"user_agent"`
	ProxyURL       string        `yaml:"proxy_url" json:"proxy_url"`

	// Performance
	Workers int `yaml:"workers" json:"workers"`

	// Output configuration
	OutputFile string       `yaml:"output_file" json:"output_file"`
	Format     OutputFormat `yaml:"format" json:"format"`
	Quiet      bool         `yaml:"quiet" json:"quiet"`
	Verbose    bool         `yaml:"verbose" json:"verbose"`
	ShowAll    bool         `yaml:"show_all" json:"show_all"`
	NoColor    bool         `yaml:"no_color" json:"no_color"`
	NoProgress bool         `yaml:"no_progress" json:"no_progress"`
}

// OutputFormat represents the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatCSV  OutputFormat = "csv"
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      10000,
		Timeout:        5 * time.Second,
		ConnectTimeout: 3 * time.Second,
		Workers:        100,
		OutputFile:     "cf_domains.json",
		Format:         FormatJSON,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return ErrNoInput
	}

	if c.Workers < 1 {
		c.Workers = 1
	}

	if c.Workers > 1000 {
		return ErrTooManyWorkers
	}

	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// MergeWithCLI merges CLI flags with config (CLI takes precedence)
func (c *Config) MergeWithCLI(cli *Config) {
	// Only merge non-zero/non-default CLI values
	if cli.InputFile != "" {
		c.InputFile = cli.InputFile
	}
	if cli.BatchSize != 0 && cli.BatchSize != 10000 {
		c.BatchSize = cli.BatchSize
	}
	if cli.Timeout != 0 && cli.Timeout != 5*time.Second {
		c.Timeout = cli.Timeout
	}
	if cli.ConnectTimeout != 0 && cli.ConnectTimeout != 3*time.Second {
		c.ConnectTimeout = cli.ConnectTimeout
	}
	if cli.UserAgent != "" {
		c.UserAgent = cli.UserAgent
	}
	if cli.ProxyURL != "" {
		c.ProxyURL = cli.ProxyURL
	}
	if cli.Workers != 0 && cli.Workers != 100 {
		c.Workers = cli.Workers
	}
	if cli.OutputFile != "" && cli.OutputFile != "cf_domains.json" {
		c.OutputFile = cli.OutputFile
	}
	if cli.Format != "" && cli.Format != FormatJSON {
		c.Format = cli.Format
	}
	if cli.Quiet {
		c.Quiet = cli.Quiet
	}
	if cli.Verbose {
		c.Verbose = cli.Verbose
	}
	if cli.ShowAll {
		c.ShowAll = cli.ShowAll
	}
	if cli.NoColor {
		c.NoColor = cli.NoColor
	}
	if cli.NoProgress {
		c.NoProgress = cli.NoProgress
	}
}
