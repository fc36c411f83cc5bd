package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const PathEnv = "GREPC_CONFIG"

type Config struct {
	Env      string `yaml:"env" toml:"env"`
	LogLevel string `yaml:"log_level" toml:"log_level"`
	LogDir   string `yaml:"log_dir" toml:"log_dir"`
}

func Default() *Config {
	return &Config{
		Env:      "local",
		LogLevel: "error",
		LogDir:   "logs",
	}
}

// LoadConfig reads a yaml or toml file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}
	if err != nil {
		return nil, err
	}

	if _, err := zap.ParseAtomicLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}
	return cfg, nil
}

// Load uses the file named by GREPC_CONFIG, or the defaults when it is unset.
func Load() (*Config, error) {
	path := os.Getenv(PathEnv)
	if path == "" {
		return Default(), nil
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
