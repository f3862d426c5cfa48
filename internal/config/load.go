package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	var cfg Config
	applyEnv(&cfg)
	// Validate only applies defaults here, it cannot fail on a zero Config.
	_ = cfg.Validate()
	return &cfg
}

// applyEnv fills API keys from the environment when the file provides none.
// GEMINI_API_KEY may hold a single key or a comma-separated list.
func applyEnv(cfg *Config) {
	if len(cfg.Gemini.APIKeys) > 0 {
		return
	}
	raw := os.Getenv("GEMINI_API_KEY")
	if raw == "" {
		return
	}
	for _, key := range strings.Split(raw, ",") {
		if key = strings.TrimSpace(key); key != "" {
			cfg.Gemini.APIKeys = append(cfg.Gemini.APIKeys, key)
		}
	}
}
