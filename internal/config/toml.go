// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
}

// PracticeConfig maps practice-related settings. Nil fields were not set.
type PracticeConfig struct {
	Lang     *string  `toml:"lang" env:"WORDRUSH_LANG"`
	Words    *int     `toml:"words" env:"WORDRUSH_WORDS"`
	Duration *int     `toml:"duration" env:"WORDRUSH_DURATION"`
	Source   *string  `toml:"source" env:"WORDRUSH_SOURCE"`
	CapsPct  *float64 `toml:"caps" env:"WORDRUSH_CAPS"`
	PunctPct *float64 `toml:"punct" env:"WORDRUSH_PUNCT"`
	PunctSet *string  `toml:"punct-set" env:"WORDRUSH_PUNCT_SET"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
