package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is checked for a config file when no --config flag is given.
const DefaultPath = "config.yaml"

// Topic extraction scopes.
const (
	ScopeUser = "user"
	ScopeAll  = "all"
)

type Config struct {
	Paths    PathsConfig    `yaml:"paths"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  LoggingConfig  `yaml:"logging"`
	Watch    WatchConfig    `yaml:"watch"`
}

type PathsConfig struct {
	Logs    string `yaml:"logs"`
	Reports string `yaml:"reports"`
}

type AnalysisConfig struct {
	TopK       int      `yaml:"top_k"`
	TopicScope string   `yaml:"topic_scope"`
	Stopwords  []string `yaml:"stopwords"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type WatchConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads a YAML config file, validates it and fills defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the configuration used when no config file is present.
// A zero Config always validates: every field has a default.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.Paths.Logs == "" {
		c.Paths.Logs = "./chat_logs"
	}
	if c.Analysis.TopK == 0 {
		c.Analysis.TopK = 5
	}
	if c.Analysis.TopK < 0 {
		return fmt.Errorf("analysis.top_k must be positive, got %d", c.Analysis.TopK)
	}
	if c.Analysis.TopicScope == "" {
		c.Analysis.TopicScope = ScopeUser
	}
	if c.Analysis.TopicScope != ScopeUser && c.Analysis.TopicScope != ScopeAll {
		return fmt.Errorf("analysis.topic_scope must be %q or %q, got %q", ScopeUser, ScopeAll, c.Analysis.TopicScope)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Watch.MaxConcurrent <= 0 {
		c.Watch.MaxConcurrent = 1
	}

	return nil
}
