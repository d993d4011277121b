package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the root configuration structure.
type Config struct {
	Git     GitConfig    `json:"git"`
	Range   RangeConfig  `json:"range"`
	Filters FilterConfig `json:"filters"`
}

// GitConfig holds settings for the git tool invocation.
type GitConfig struct {
	Path           string `json:"path"`           // git executable, default "git"
	TimeoutSeconds int    `json:"timeoutSeconds"` // per-invocation deadline, default 30
}

// Timeout returns the per-invocation deadline as a duration.
func (g GitConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// RangeConfig holds batch walk settings.
type RangeConfig struct {
	MaxCommits int `json:"maxCommits"` // default cap for range walks
	ThrottleMS int `json:"throttleMs"` // pacing delay between commits, 0 = none
}

// Throttle returns the pacing delay as a duration.
func (r RangeConfig) Throttle() time.Duration {
	return time.Duration(r.ThrottleMS) * time.Millisecond
}

// FilterConfig holds file path filtering options.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Git: GitConfig{
			Path:           "git",
			TimeoutSeconds: 30,
		},
		Range: RangeConfig{
			MaxCommits: 10,
			ThrottleMS: 0,
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults. An
// empty path checks the default locations; a missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		candidates := []string{".regwatch.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".regwatch.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
