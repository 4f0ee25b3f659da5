// Package config handles simulator configuration loading and management.
package config

import (
	"github.com/lixenwraith/polarsim/parameter"
)

// Config holds all simulator settings.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Audio      AudioConfig      `yaml:"audio"`
	Export     ExportConfig     `yaml:"export"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SimulationConfig holds the startup state of the polarizer chain.
type SimulationConfig struct {
	IncidentIntensity float64   `yaml:"incident_intensity"` // W/m²
	PolarizerCount    int       `yaml:"polarizer_count"`
	Angles            []float64 `yaml:"angles"` // degrees, one per pair
}

// AudioConfig holds audio feedback settings.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ExportConfig holds result export settings.
type ExportConfig struct {
	Path string `yaml:"path"` // xlsx output path
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	angles := make([]float64, parameter.PolarizerCountDefault-1)
	copy(angles, parameter.AngleDefaults[:])

	return &Config{
		Simulation: SimulationConfig{
			IncidentIntensity: parameter.IntensityDefault,
			PolarizerCount:    parameter.PolarizerCountDefault,
			Angles:            angles,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Export: ExportConfig{
			Path: "polarsim.xlsx",
		},
		Logging: LoggingConfig{
			Level:      "info",
			File:       "polarsim.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}
