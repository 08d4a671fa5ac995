package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the service configuration, read from YAML with env overrides.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Presets PresetsConfig `yaml:"presets"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"` // listen address, e.g. ":8080"
	Mode string `yaml:"mode"` // gin mode: debug | release | test
	// Browser origins allowed to call the API. Empty means localhost dev origins.
	AllowOrigins []string `yaml:"allow_origins,omitempty"`
}

type LogConfig struct {
	Mode string `yaml:"mode"` // dev | prod
}

type PresetsConfig struct {
	File  string `yaml:"file,omitempty"` // optional catalog merged over the built-ins
	Watch bool   `yaml:"watch"`          // reload File when it changes
}

const (
	EnvAddr        = "PACKSIM_ADDR"
	EnvLogMode     = "PACKSIM_LOG_MODE"
	EnvPresetsFile = "PACKSIM_PRESETS_FILE"
)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080", Mode: "release"},
		Log:    LogConfig{Mode: "dev"},
	}
}

// Load reads path over the defaults, applies env overrides and validates.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(&cfg, os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Server.Addr = v
	}
	if v, ok := lookup(EnvLogMode); ok && v != "" {
		cfg.Log.Mode = v
	}
	if v, ok := lookup(EnvPresetsFile); ok {
		cfg.Presets.File = v
	}
}

var ErrInvalidConfig = errors.New("config validation failed")

// Validate checks every section and reports all problems together.
func (c Config) Validate() error {
	var errs []string
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, "server.addr is required")
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, "server.mode must be one of: debug, release, test")
	}
	switch strings.ToLower(c.Log.Mode) {
	case "dev", "development", "prod", "production":
	default:
		errs = append(errs, "log.mode must be one of: dev, prod")
	}
	if c.Presets.Watch && c.Presets.File == "" {
		errs = append(errs, "presets.watch requires presets.file")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}
