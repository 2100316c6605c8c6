// Package config provides configuration loading and management for numlab.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the demo configuration loaded from YAML
type Config struct {
	// Fourier demo parameters
	Fourier struct {
		// TimingMaxExponent bounds the DFT-vs-FFT timing sweep at 2^TimingMaxExponent samples
		TimingMaxExponent int `yaml:"timingMaxExponent"`

		// SampleExponent sets the signal length 2^SampleExponent for spectrum extraction
		SampleExponent int `yaml:"sampleExponent"`

		// SampleSpacing is the sample spacing T of the demo signal in seconds
		SampleSpacing float64 `yaml:"sampleSpacing"`

		// SignalFrequencies are the sine frequencies mixed into the demo signal in Hz
		SignalFrequencies []float64 `yaml:"signalFrequencies"`
	} `yaml:"fourier"`

	// Poisson demo parameters
	Poisson struct {
		// GridSize is the number of grid nodes per dimension for the solve demo
		GridSize int `yaml:"gridSize"`

		// DomainLength is the side length of the square domain
		DomainLength float64 `yaml:"domainLength"`

		// ConvergenceSizes are the grid sizes of the refinement study
		ConvergenceSizes []int `yaml:"convergenceSizes"`
	} `yaml:"poisson"`

	// Output parameters
	Output struct {
		// Dir is the directory demo artifacts are written to
		Dir string `yaml:"dir"`

		// SaveHeatmap determines whether the Poisson solution is rendered to a PNG
		SaveHeatmap bool `yaml:"saveHeatmap"`

		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default Fourier demo parameters (the course's example sizes)
	cfg.Fourier.TimingMaxExponent = 12
	cfg.Fourier.SampleExponent = 9
	cfg.Fourier.SampleSpacing = 1.0 / 800.0
	cfg.Fourier.SignalFrequencies = []float64{50, 80, 160}

	// Set default Poisson demo parameters
	cfg.Poisson.GridSize = 20
	cfg.Poisson.DomainLength = 1.0
	cfg.Poisson.ConvergenceSizes = []int{4, 8, 16, 32, 64}

	// Set default output parameters
	cfg.Output.Dir = "output"
	cfg.Output.SaveHeatmap = true
	cfg.Output.Verbose = true

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
