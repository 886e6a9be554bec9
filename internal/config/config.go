package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "automata.yaml"

// Store drivers.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverRedis  = "redis"
)

// StoreConfig selects and configures the definition store.
type StoreConfig struct {
	Driver        string `yaml:"driver" json:"driver"`
	Dir           string `yaml:"dir" json:"dir"`
	Format        string `yaml:"format" json:"format"`
	RedisAddr     string `yaml:"redis_addr" json:"redis_addr"`
	RedisPassword string `yaml:"redis_password" json:"redis_password"`
	RedisDB       int    `yaml:"redis_db" json:"redis_db"`
	Prefix        string `yaml:"prefix" json:"prefix"`
	TTL           string `yaml:"ttl" json:"ttl"`
}

// HTTPConfig configures the serve command.
type HTTPConfig struct {
	Addr    string `yaml:"addr" json:"addr"`
	Metrics bool   `yaml:"metrics" json:"metrics"`
}

// Config represents the structure of automata.yaml.
type Config struct {
	LogLevel        string      `yaml:"log_level" json:"log_level"`
	LogJSON         bool        `yaml:"log_json" json:"log_json"`
	LenientAlphabet bool        `yaml:"lenient_alphabet" json:"lenient_alphabet"`
	Fusion          bool        `yaml:"fusion" json:"fusion"`
	Store           StoreConfig `yaml:"store" json:"store"`
	HTTP            HTTPConfig  `yaml:"http" json:"http"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Store: StoreConfig{
			Driver:    DriverFile,
			Dir:       filepath.Join(".automata", "definitions"),
			Format:    "yaml",
			RedisAddr: "localhost:6379",
			Prefix:    "automata:",
		},
		HTTP: HTTPConfig{
			Addr:    ":8080",
			Metrics: true,
		},
	}
}

// Load reads a configuration file (YAML or JSON) over the defaults.
// A missing file is not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerations and durations.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverFile, DriverRedis:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	switch c.Store.Format {
	case "", "yaml", "json":
	default:
		return fmt.Errorf("unknown store format %q", c.Store.Format)
	}
	if _, err := c.Store.TTLDuration(); err != nil {
		return err
	}
	return nil
}

// TTLDuration parses the Redis TTL; empty means no expiry.
func (s StoreConfig) TTLDuration() (time.Duration, error) {
	if s.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.TTL)
	if err != nil {
		return 0, fmt.Errorf("invalid store ttl %q: %w", s.TTL, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("store ttl must not be negative, got %s", d)
	}
	return d, nil
}
