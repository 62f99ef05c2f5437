package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Catalog   CatalogConfig   `toml:"catalog"`
	AI        AIConfig        `toml:"ai"`
	Recommend RecommendConfig `toml:"recommend"`
}

type CatalogConfig struct {
	// Path points at a CSV catalog. Empty means: use the sqlite cache if
	// it has courses, the built-in sample catalog otherwise.
	Path string `toml:"path"`
}

type AIConfig struct {
	Provider       string `toml:"provider"` // "none", "claude-cli" or "openai-api"
	Model          string `toml:"model"`
	APIKey         string `toml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type RecommendConfig struct {
	Limit int `toml:"limit"`
}

// Timeout is the remote-provider deadline; the deterministic fallback takes
// over once it passes.
func (c AIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func DefaultConfig() Config {
	return Config{
		AI: AIConfig{
			Provider:       "none",
			TimeoutSeconds: 30,
		},
		Recommend: RecommendConfig{
			Limit: 5,
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "coursematch"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("COURSEMATCH_CATALOG"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("COURSEMATCH_AI_PROVIDER"); v != "" {
		cfg.AI.Provider = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
}

func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
