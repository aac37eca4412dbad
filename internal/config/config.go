// Package config loads runtime settings and calibrated thresholds.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"diecast/internal/infer"

	"gopkg.in/yaml.v3"
)

// Environment variables read by FromEnv.
const (
	EnvConfigPath = "DIECAST_CONFIG"
	EnvLogLevel   = "DIECAST_LOG_LEVEL"
	EnvLogFormat  = "DIECAST_LOG_FORMAT"
)

// Config is the settings file. Missing fields keep their defaults.
type Config struct {
	LogLevel   string           `json:"log_level" yaml:"log_level"`
	LogFormat  string           `json:"log_format" yaml:"log_format"`
	Thresholds infer.Thresholds `json:"thresholds" yaml:"thresholds"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:   "warn",
		LogFormat:  "text",
		Thresholds: infer.DefaultThresholds(),
	}
}

// LoadFromPath reads a config file (YAML or JSON) over the defaults.
// Format is detected by extension (.yaml/.yml, .json) or by content.
func LoadFromPath(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses data over the defaults and validates the thresholds.
// ext is a format hint; empty means detect from content.
func Load(data []byte, ext string) (Config, error) {
	cfg := Default()
	ext = strings.ToLower(ext)
	if ext == "" && strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		ext = ".json"
	}
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	}
	if err := cfg.Thresholds.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid thresholds: %w", err)
	}
	return cfg, nil
}

// Resolve loads the file at path, or at $DIECAST_CONFIG when path is empty,
// and applies environment overrides. With neither set it returns the defaults.
func Resolve(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFromPath(path); err != nil {
			return Config{}, err
		}
	}
	cfg.FromEnv()
	return cfg, nil
}

// FromEnv overrides logging settings from the environment.
func (c *Config) FromEnv() {
	envOverride(&c.LogLevel, EnvLogLevel)
	envOverride(&c.LogFormat, EnvLogFormat)
}

// MarshalThresholds renders the thresholds as a YAML config fragment.
func (c Config) MarshalThresholds() ([]byte, error) {
	return yaml.Marshal(struct {
		Thresholds infer.Thresholds `yaml:"thresholds"`
	}{c.Thresholds})
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
