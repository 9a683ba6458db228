package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"
)

// RunWizard walks the user through a starter configuration and writes it to
// path. It refuses to overwrite an existing file.
func RunWizard(path string) error {
	if path == "" {
		path = DefaultFile
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", path)
	}

	cfg := &Config{
		Defaults: Profile{
			Image:  "ubuntu-24-04-x64",
			Size:   "s-1vcpu-1gb",
			Region: "nyc3",
		},
	}
	var dnsSync bool

	form := huh.NewForm(
		// Credentials and key material
		huh.NewGroup(
			huh.NewInput().
				Title("Personal access token").
				Description("Leave empty to supply it via DIGITALOCEAN_TOKEN").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.PersonalAccessToken),

			huh.NewInput().
				Title("SSH key file").
				Description("Local private key used to reach new droplets").
				Placeholder("~/.ssh/id_ed25519").
				Value(&cfg.SSHKeyFile),

			huh.NewInput().
				Title("SSH key names").
				Description("Key names registered with the provider, comma-separated").
				Placeholder("my-key,team-key").
				Value(&cfg.SSHKeyNames).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("at least one key name is required")
					}
					return nil
				}),
		),

		// Droplet defaults
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default region").
				Options(
					huh.NewOption("New York 3 (nyc3)", "nyc3"),
					huh.NewOption("San Francisco 3 (sfo3)", "sfo3"),
					huh.NewOption("Amsterdam 3 (ams3)", "ams3"),
					huh.NewOption("Frankfurt 1 (fra1)", "fra1"),
					huh.NewOption("London 1 (lon1)", "lon1"),
					huh.NewOption("Singapore 1 (sgp1)", "sgp1"),
				).
				Value(&cfg.Defaults.Region),

			huh.NewSelect[string]().
				Title("Default size").
				Options(
					huh.NewOption("1 vCPU, 1GB (s-1vcpu-1gb)", "s-1vcpu-1gb"),
					huh.NewOption("1 vCPU, 2GB (s-1vcpu-2gb)", "s-1vcpu-2gb"),
					huh.NewOption("2 vCPU, 2GB (s-2vcpu-2gb)", "s-2vcpu-2gb"),
					huh.NewOption("2 vCPU, 4GB (s-2vcpu-4gb)", "s-2vcpu-4gb"),
					huh.NewOption("4 vCPU, 8GB (s-4vcpu-8gb)", "s-4vcpu-8gb"),
				).
				Value(&cfg.Defaults.Size),

			huh.NewInput().
				Title("Default image").
				Description("Image slug, name, or numeric id").
				Value(&cfg.Defaults.Image),
		),

		// DNS
		huh.NewGroup(
			huh.NewConfirm().
				Title("Create DNS records for new droplets?").
				Description("Requires FQDN machine names and a domain managed with the provider").
				Value(&dnsSync),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("wizard aborted: %w", err)
	}
	cfg.Defaults.CreateDNSRecord = dnsSync

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
