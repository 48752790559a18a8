// Package config provides configuration loading for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the CLI configuration loadable from a JSON file. All fields
// are optional; missing values use defaults or come from flags.
type Config struct {
	// APIKey is the Gemini API key; the GEMINI_API_KEY environment
	// variable takes precedence when set.
	APIKey string `json:"api_key,omitempty"`
	// Model overrides the judge model name.
	Model string `json:"model,omitempty"`
	// JudgeTimeoutSeconds bounds each delegated evaluation call.
	JudgeTimeoutSeconds int `json:"judge_timeout_seconds,omitempty"`
	// Offline switches to the deterministic stub judge.
	Offline bool `json:"offline,omitempty"`
	// OfflineRatio is the fraction of each axis maximum the stub awards.
	OfflineRatio float64 `json:"offline_ratio,omitempty"`
	// DelegatedNarrative produces the overall explanation with one extra
	// judge call instead of deterministic synthesis.
	DelegatedNarrative bool `json:"delegated_narrative,omitempty"`
	// Verbose prints the full formatted report.
	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.JudgeTimeoutSeconds < 0 {
		return fmt.Errorf("judge_timeout_seconds must not be negative")
	}
	if c.OfflineRatio < 0 || c.OfflineRatio > 1 {
		return fmt.Errorf("offline_ratio must be within [0, 1]")
	}
	return nil
}
