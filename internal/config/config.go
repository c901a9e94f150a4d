package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the run configuration. RootPath is the base directory every
// extracted file resolves against. Manifest optionally names a file the
// run manifest is written to; empty means no manifest.
type Config struct {
	RootPath string `json:"RootPath" yaml:"root-path"`
	Manifest string `json:"Manifest,omitempty" yaml:"manifest,omitempty"`
}

// Load reads a config file and returns a validated Config. The native
// format is a JSON object; files ending in .yaml or .yml are parsed as
// YAML instead. $VAR references in paths expand from the environment,
// with a best-effort .env load first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	cfg.RootPath = expandEnv(cfg.RootPath)
	if cfg.RootPath == "" {
		return nil, fmt.Errorf("config: 'RootPath' expanded to an empty string")
	}
	cfg.Manifest = expandEnv(cfg.Manifest)

	return &cfg, nil
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.RootPath) == "" {
		return fmt.Errorf("config: 'RootPath' is required")
	}
	return nil
}

// expandEnv substitutes $VAR references from the process environment.
func expandEnv(s string) string {
	return os.Expand(s, os.Getenv)
}
