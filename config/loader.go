package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Loader loads configuration with defaults → YAML file → environment
// variable precedence.
//
//	cfg, err := config.NewLoader().
//	    WithConfigPath("contentflow.yaml").
//	    WithEnvPrefix("CONTENTFLOW").
//	    Load()
type Loader struct {
	configPath string
	envPrefix  string
}

// NewLoader creates a configuration loader.
func NewLoader() *Loader {
	return &Loader{envPrefix: "CONTENTFLOW"}
}

// WithConfigPath sets the YAML file to load. Optional; without it only
// defaults and environment overrides apply.
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// WithEnvPrefix sets the environment variable prefix.
func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// Load resolves the configuration and validates it.
func (l *Loader) Load() (*Config, error) {
	cfg := Defaults()

	if l.configPath != "" {
		data, err := os.ReadFile(l.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	l.applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides scalar settings from the environment.
func (l *Loader) applyEnv(cfg *Config) {
	l.envString("ARTIFACTS_DIR", &cfg.Artifacts.Dir)
	l.envString("LOG_LEVEL", &cfg.Log.Level)
	l.envString("LOG_ENCODING", &cfg.Log.Encoding)
	l.envString("RESEARCH_MODEL", &cfg.Agents.Research.Model)
	l.envString("SCRIPT_MODEL", &cfg.Agents.Script.Model)
	l.envString("VOICE_ID", &cfg.Agents.Voice.VoiceID)
	l.envString("VISUAL_MODEL", &cfg.Agents.Visual.Model)
	l.envInt("SCRIPT_MIN_WORDS", &cfg.Agents.Script.MinWords)
	l.envInt("SCRIPT_MAX_WORDS", &cfg.Agents.Script.MaxWords)
	l.envInt("VISUAL_MAX_CONCURRENCY", &cfg.Agents.Visual.MaxConcurrency)
}

func (l *Loader) envString(key string, dst *string) {
	if v, ok := os.LookupEnv(l.envPrefix + "_" + key); ok && v != "" {
		*dst = v
	}
}

func (l *Loader) envInt(key string, dst *int) {
	if v, ok := os.LookupEnv(l.envPrefix + "_" + key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
