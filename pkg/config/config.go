// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/framefit/pkg/pipeline"
)

// Config represents the full configuration for framefit. It mirrors the
// CLI flags; a yaml file supplies defaults that flags override.
type Config struct {
	// Target size: a named preset, or custom width/height. Setting either
	// width or height switches the target to a custom size.
	Preset string `yaml:"preset"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	// Output
	Format     string  `yaml:"format"`
	Quality    float64 `yaml:"quality"`
	Fit        string  `yaml:"fit"`
	Background string  `yaml:"background"`
	OutputDir  string  `yaml:"output_dir"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Preset:     "1080p",
		Format:     "png",
		Quality:    0.92,
		Fit:        "contain",
		Background: "transparent",
		LogLevel:   "info",
	}
}

// Load reads a yaml config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ToSettings converts the string-typed configuration into pipeline
// settings. Custom dimensions are carried as-is; they are validated when
// processing starts.
func (c Config) ToSettings() (pipeline.Settings, error) {
	settings := pipeline.DefaultSettings()

	if c.Width != 0 || c.Height != 0 || c.Preset == "custom" {
		settings.Target = pipeline.CustomSize{Width: c.Width, Height: c.Height}
	} else {
		preset, err := pipeline.ParsePreset(c.Preset)
		if err != nil {
			return settings, err
		}
		settings.Target = preset
	}

	format, err := pipeline.ParseFormat(c.Format)
	if err != nil {
		return settings, err
	}
	settings.Format = format

	fit, err := pipeline.ParseFitMode(c.Fit)
	if err != nil {
		return settings, err
	}
	settings.Fit = fit

	settings.Quality = c.Quality
	settings.Background = ParseBackground(c.Background)

	return settings, nil
}

// ParseBackground parses a background specification: "transparent" (or
// empty) keeps the frame transparent, anything else is a hex color.
func ParseBackground(s string) pipeline.BackgroundFill {
	if s == "" || s == "transparent" {
		return pipeline.TransparentFill()
	}
	return pipeline.SolidFill(ParseColor(s))
}

// ParseColor parses a hex color string to color.Color.
// Invalid input falls back to black.
func ParseColor(hex string) color.Color {
	if len(hex) == 0 {
		return color.Black
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return color.Black
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		rgb[i] = hexValue(hex[i*2])<<4 | hexValue(hex[i*2+1])
	}

	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

// hexValue converts a hex digit to its value; invalid digits map to 0.
func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
