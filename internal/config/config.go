// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config reads the optional settings file kept next to the note
// store. Every setting has a default, so a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"heard/internal/logger"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file inside the store directory.
const FileName = "config.yaml"

// Color modes accepted by the color setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the settings file.
type Config struct {
	// StoreFile overrides the note store location. It must be absolute or
	// start with "~/".
	StoreFile string `yaml:"store_file,omitempty"`

	// LogLevel is one of debug, info, warn, error. Defaults to info.
	LogLevel string `yaml:"log_level,omitempty"`

	// Color is auto, always or never. Defaults to auto.
	Color string `yaml:"color,omitempty"`
}

// Path returns the settings file location inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// LoadConfig reads dir/config.yaml. A missing file yields the zero Config.
func LoadConfig(dir string) (Config, error) {
	configPath := Path(dir)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return cfg, nil
}

// Validate checks every setting that has a fixed set of values.
func (c Config) Validate() error {
	if c.StoreFile != "" && !filepath.IsAbs(c.StoreFile) && !strings.HasPrefix(c.StoreFile, "~/") {
		return fmt.Errorf("store_file must be absolute or start with '~/', got %q", c.StoreFile)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	switch c.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be %s, %s or %s, got %q", ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	return nil
}

// SaveConfig writes cfg to dir/config.yaml, creating dir if needed.
func SaveConfig(dir string, cfg Config) error {
	if err := os.MkdirAll(dir, 0750); err != nil { // rwxr-x---
		return fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// Write with permissions rw-r----- (0640)
	configPath := Path(dir)
	if err := os.WriteFile(configPath, data, 0640); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}

	return nil
}

// ResolvePath expands a leading "~/" against homeDir.
func ResolvePath(path, homeDir string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}
