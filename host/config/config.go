// Package config loads sparkmon settings from an optional TOML file
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"sparkhal/host/serial"
)

// Config is the monitor configuration
type Config struct {
	Serial SerialConfig `toml:"serial"`
	Log    LogConfig    `toml:"log"`
}

// SerialConfig selects the device's USB console
type SerialConfig struct {
	Device        string `toml:"device"`
	Baud          int    `toml:"baud"`
	ReadTimeoutMS int    `toml:"read_timeout_ms"`
	LineEnding    string `toml:"line_ending"`
}

// LogConfig controls where captured device output is written
type LogConfig struct {
	// Capture file; empty disables capture
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Verbose    bool   `toml:"verbose"`
}

// Load reads path (if non-empty) and applies defaults
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := Parse(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Parse decodes TOML into cfg, rejecting unknown keys
func Parse(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// PortConfig converts the serial section for serial.Open
func (c *Config) PortConfig() *serial.Config {
	return &serial.Config{
		Device:      c.Serial.Device,
		Baud:        c.Serial.Baud,
		ReadTimeout: c.Serial.ReadTimeoutMS,
	}
}

// Default returns the configuration used when no file is given
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// applyDefaults fills in missing configuration values with sensible defaults
func applyDefaults(cfg *Config) {
	port := serial.DefaultConfig(cfg.Serial.Device)
	cfg.Serial.Device = port.Device
	if cfg.Serial.Baud == 0 {
		cfg.Serial.Baud = port.Baud
	}
	if cfg.Serial.ReadTimeoutMS == 0 {
		cfg.Serial.ReadTimeoutMS = port.ReadTimeout
	}
	if cfg.Serial.LineEnding == "" {
		cfg.Serial.LineEnding = "\r\n"
	}

	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = 10
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = 3
	}
	if cfg.Log.MaxAgeDays == 0 {
		cfg.Log.MaxAgeDays = 7
	}
}
