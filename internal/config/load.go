package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration from path (or DefaultFile when path is
// empty), merges environment variables on top, and validates the result.
// A missing default file is fine as long as the environment supplies the
// required settings; an explicitly given path must exist.
func Load(path string) (*Config, error) {
	// .env never overrides variables already set in the environment.
	_ = godotenv.Load()

	explicit := path != ""
	if path == "" {
		path = DefaultFile
	}

	var cfg Config
	data, err := os.ReadFile(path) // #nosec G304
	switch {
	case err == nil:
		// Strict decoding so a mistyped flag value (e.g. a string where
		// a boolean belongs) fails at load time, not mid-provisioning.
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// fall through to env-only configuration
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv lets environment variables override file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("DIGITALOCEAN_TOKEN"); v != "" {
		cfg.PersonalAccessToken = v
	}
	if v := os.Getenv("NEREID_API_ROOT"); v != "" {
		cfg.APIRoot = v
	}
	if v := os.Getenv("NEREID_SSH_KEY_FILE"); v != "" {
		cfg.SSHKeyFile = v
	}
	if v := os.Getenv("NEREID_SSH_KEY_NAMES"); v != "" {
		cfg.SSHKeyNames = v
	}
}

// Validate checks the settings every command needs. Create-specific
// requirements (key file, key names) are enforced by the provisioning
// engine so read-only commands work with just a token.
func (c *Config) Validate() error {
	if c.PersonalAccessToken == "" {
		return fmt.Errorf("a personal_access_token is required (config file or DIGITALOCEAN_TOKEN)")
	}
	return nil
}
