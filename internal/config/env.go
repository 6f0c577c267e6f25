package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// LoadEnv reads WORDRUSH_* overrides from the environment. Unset variables stay nil.
func LoadEnv() (PracticeConfig, error) {
	var cfg PracticeConfig
	if err := env.Parse(&cfg); err != nil {
		return PracticeConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Overlay returns base with every field set in top taking precedence.
func Overlay(base, top PracticeConfig) PracticeConfig {
	out := base
	if top.Lang != nil {
		out.Lang = top.Lang
	}
	if top.Words != nil {
		out.Words = top.Words
	}
	if top.Duration != nil {
		out.Duration = top.Duration
	}
	if top.Source != nil {
		out.Source = top.Source
	}
	if top.CapsPct != nil {
		out.CapsPct = top.CapsPct
	}
	if top.PunctPct != nil {
		out.PunctPct = top.PunctPct
	}
	if top.PunctSet != nil {
		out.PunctSet = top.PunctSet
	}
	return out
}
