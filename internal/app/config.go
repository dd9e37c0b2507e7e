package app

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cactus/internal/store"
)

// Environment variables read by ApplyEnvOverrides.
const (
	EnvDir  = "CACTUS_DIR"  // base directory for the store file
	EnvFile = "CACTUS_FILE" // store filename
	EnvSalt = "CACTUS_SALT" // encryption salt
	EnvKey  = "CACTUS_KEY"  // encryption key, never written to disk
)

// Config holds runtime options for building the store.
type Config struct {
	Store   store.Config `yaml:"store"`
	Codec   string       `yaml:"codec"` // "json" (default) or "yaml"
	Verbose bool         `yaml:"verbose"`

	// Key is the encryption key. It is only ever filled from the
	// environment or flags.
	Key string `yaml:"-"`
}

// DefaultConfig returns the store defaults with the JSON codec.
func DefaultConfig() Config {
	return Config{
		Store: store.DefaultConfig(),
		Codec: "json",
	}
}

// LoadConfig reads the YAML file at path over DefaultConfig. A missing file
// yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnvOverrides overrides cfg from CACTUS_* variables that are set.
func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvDir); v != "" {
		cfg.Store.BaseDir = v
	}
	if v := os.Getenv(EnvFile); v != "" {
		cfg.Store.Filename = v
	}
	if v := os.Getenv(EnvSalt); v != "" {
		cfg.Store.EncryptionSalt = v
	}
	if v := os.Getenv(EnvKey); v != "" {
		cfg.Key = v
	}
}
