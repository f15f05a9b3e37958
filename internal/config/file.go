package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML settings file. Pointer fields distinguish
// "not set" from a zero value so the file only overrides what it names.
type fileConfig struct {
	Recursive   *bool   `yaml:"recursive"`
	PrefixBytes *int    `yaml:"prefix_bytes"`
	Color       *string `yaml:"color"`
	LogFile     *string `yaml:"log_file"`
	Progress    *bool   `yaml:"progress"`
	Verbose     *bool   `yaml:"verbose"`
}

// LoadFile overlays settings from a YAML file onto cfg. Fields absent from
// the file keep their current values. The caller applies explicit flags
// afterwards, so the precedence ends up flags > file > defaults.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Recursive != nil {
		cfg.Recursive = *fc.Recursive
	}
	if fc.PrefixBytes != nil {
		cfg.PrefixBytes = *fc.PrefixBytes
	}
	if fc.Color != nil {
		mode, err := ParseColorMode(*fc.Color)
		if err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		cfg.ColorMode = mode
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	if fc.Progress != nil {
		cfg.ShowProgress = *fc.Progress
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	return nil
}
