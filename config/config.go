// Package config loads evoflow settings from YAML: the model backend
// selection with its sampling parameters, the evolution executor bounds and
// the persistence paths. Values absent from the file keep their defaults.
package config

import (
	"fmt"
	"os"

	"github.com/gbeyruth/evoflow/model"
	"gopkg.in/yaml.v3"
)

// ModelConfig selects a backend and its sampling parameters.
type ModelConfig struct {
	// Provider is one of "openai", "anthropic" or "mock".
	Provider string `yaml:"provider"`
	// Name is the backend model identifier.
	Name             string  `yaml:"name"`
	Temperature      float64 `yaml:"temperature"`
	TopP             float64 `yaml:"top_p"`
	FrequencyPenalty float64 `yaml:"frequency_penalty"`
	PresencePenalty  float64 `yaml:"presence_penalty"`
}

// GenerationOptions converts the sampling parameters to the model package form.
func (m ModelConfig) GenerationOptions() model.GenerationOptions {
	return model.GenerationOptions{
		Temperature:      m.Temperature,
		TopP:             m.TopP,
		FrequencyPenalty: m.FrequencyPenalty,
		PresencePenalty:  m.PresencePenalty,
	}
}

// EvolutionConfig bounds the search executor.
type EvolutionConfig struct {
	BranchingFactor int    `yaml:"branching_factor"`
	MaxDepth        int    `yaml:"max_depth"`
	WorkDir         string `yaml:"work_dir"`
}

// Config is the root configuration document.
type Config struct {
	Model     ModelConfig     `yaml:"model"`
	Evolution EvolutionConfig `yaml:"evolution"`
	// MemoryLog is the path of the branch log file.
	MemoryLog string `yaml:"memory_log"`
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			Provider:    "mock",
			Name:        "mock-model",
			Temperature: 0.7,
			TopP:        1.0,
		},
		Evolution: EvolutionConfig{
			BranchingFactor: 2,
			MaxDepth:        2,
			WorkDir:         "evolution_runs",
		},
		MemoryLog: "memory_log.json",
		LogLevel:  "info",
	}
}

// Load reads a YAML config file, overlaying it onto Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
