// Package handlers implements the command execution logic for the nereid
// CLI. Each handler loads configuration, builds an API client, and runs one
// operation; rendering goes to stdout.
package handlers

import (
	"io"
	"os"

	"github.com/imamik/nereid/internal/config"
	"github.com/imamik/nereid/internal/platform/digitalocean"
)

// Factory function variables - can be replaced in tests.
var (
	loadConfig = config.Load

	// newClient builds the API client from the loaded configuration.
	newClient = func(cfg *config.Config) digitalocean.API {
		var opts []digitalocean.Option
		if cfg.APIRoot != "" {
			opts = append(opts, digitalocean.WithAPIRoot(cfg.APIRoot))
		}
		return digitalocean.NewClient(cfg.PersonalAccessToken, opts...)
	}

	stdout io.Writer = os.Stdout
)

// load resolves configuration and builds a client in one step, the common
// preamble of every handler.
func load(configPath string) (*config.Config, digitalocean.API, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, newClient(cfg), nil
}
