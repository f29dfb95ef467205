// Package config loads and validates TrendScope configuration from YAML
// files and environment variables.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Config is the fully merged, validated runtime configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Trends    TrendsConfig    `yaml:"trends"`
	Audit     AuditConfig     `yaml:"audit"`
	LLM       LLMConfig       `yaml:"llm"`
	Vector    VectorConfig    `yaml:"vector_store"`
	Collab    CollabConfig    `yaml:"collaborators"`
	Retention RetentionConfig `yaml:"retention"`

	configDir string
}

// ConfigDir returns the directory the configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// fileConfig mirrors the trendscope.yaml file structure. All sections are
// optional; missing sections fall back to defaults.
type fileConfig struct {
	Server    *ServerConfig    `yaml:"server"`
	Trends    *TrendsConfig    `yaml:"trends"`
	Audit     *AuditConfig     `yaml:"audit"`
	LLM       *LLMConfig       `yaml:"llm"`
	Vector    *VectorConfig    `yaml:"vector_store"`
	Collab    *CollabConfig    `yaml:"collaborators"`
	Retention *RetentionConfig `yaml:"retention"`
}

// Initialize loads, merges, and validates configuration.
//
// Steps performed:
//  1. Read trendscope.yaml from configDir (missing file is not an error)
//  2. Expand {{.ENV_VAR}} template references
//  3. Parse YAML
//  4. Merge user values over built-in defaults
//  5. Apply environment variable overrides
//  6. Validate
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := defaultConfig()
	cfg.configDir = configDir

	path := filepath.Join(configDir, "trendscope.yaml")
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		log.Info("No trendscope.yaml found, using defaults")
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		var fc fileConfig
		if err := yaml.Unmarshal(ExpandEnv(data), &fc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if err := mergeFile(cfg, &fc); err != nil {
			return nil, fmt.Errorf("failed to merge configuration: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log.Info("Configuration initialized",
		"min_articles", cfg.Trends.MinArticles,
		"llm_backend", cfg.LLM.BackendURL,
		"vector_store", cfg.Vector.URL)
	return cfg, nil
}

// mergeFile overlays the values present in the YAML file onto the defaults.
// Zero-valued fields in the file keep their defaults.
func mergeFile(cfg *Config, fc *fileConfig) error {
	if fc.Server != nil {
		if err := mergo.Merge(&cfg.Server, *fc.Server, mergo.WithOverride); err != nil {
			return err
		}
	}
	if fc.Trends != nil {
		if err := mergo.Merge(&cfg.Trends, *fc.Trends, mergo.WithOverride); err != nil {
			return err
		}
	}
	if fc.Audit != nil {
		if err := mergo.Merge(&cfg.Audit, *fc.Audit, mergo.WithOverride); err != nil {
			return err
		}
	}
	if fc.LLM != nil {
		if err := mergo.Merge(&cfg.LLM, *fc.LLM, mergo.WithOverride); err != nil {
			return err
		}
	}
	if fc.Vector != nil {
		if err := mergo.Merge(&cfg.Vector, *fc.Vector, mergo.WithOverride); err != nil {
			return err
		}
	}
	if fc.Collab != nil {
		if err := mergo.Merge(&cfg.Collab, *fc.Collab, mergo.WithOverride); err != nil {
			return err
		}
	}
	if fc.Retention != nil {
		if err := mergo.Merge(&cfg.Retention, *fc.Retention, mergo.WithOverride); err != nil {
			return err
		}
	}
	return nil
}
