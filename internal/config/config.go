package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/sluice/pkg/domain"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "sluice.yaml"

// Config represents the structure of sluice.yaml.
type Config struct {
	Search  domain.Request `yaml:"search" json:"search"`
	Log     LogConfig      `yaml:"log" json:"log"`
	Redis   RedisConfig    `yaml:"redis" json:"redis"`
	Cache   CacheConfig    `yaml:"cache" json:"cache"`
	HTTP    HTTPConfig     `yaml:"http" json:"http"`
	Metrics MetricsConfig  `yaml:"metrics" json:"metrics"`
}

type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"` // text or json
}

// RedisConfig enables the shared result cache and solve lock when Addr is set.
type RedisConfig struct {
	Addr     string        `yaml:"addr" json:"addr"`
	Password string        `yaml:"password" json:"password"`
	DB       int           `yaml:"db" json:"db"`
	Prefix   string        `yaml:"prefix" json:"prefix"`
	TTL      time.Duration `yaml:"ttl" json:"ttl"`
	LockTTL  time.Duration `yaml:"lock_ttl" json:"lock_ttl"`
}

// CacheConfig enables the on-disk result cache when Dir is set.
type CacheConfig struct {
	Dir string `yaml:"dir" json:"dir"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

type MetricsConfig struct {
	Namespace string `yaml:"namespace" json:"namespace"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Search: domain.Request{
			Start:     "AA",
			Horizon:   30,
			Agents:    1,
			BeamWidth: domain.DefaultBeamWidth,
			Scorer:    domain.ScorerAccumulated,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Redis: RedisConfig{
			Prefix:  "sluice:",
			LockTTL: 30 * time.Second,
		},
		HTTP: HTTPConfig{
			Addr: ":8080",
		},
		Metrics: MetricsConfig{
			Namespace: "sluice",
		},
	}
}

// Load reads a configuration file (YAML or JSON) over the defaults.
// A missing file yields the defaults unless required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values a file may get wrong.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log format must be text or json, got %q", c.Log.Format)
	}
	if c.Redis.TTL < 0 || c.Redis.LockTTL < 0 {
		return errors.New("redis ttl values must not be negative")
	}
	return c.Search.Normalize().Validate()
}
