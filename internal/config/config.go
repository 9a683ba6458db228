// Package config loads and validates nereid's provider and profile
// configuration from YAML and the environment.
package config

import (
	"strings"
	"time"

	"github.com/imamik/nereid/internal/provisioning"
)

// DefaultFile is the config file looked up in the working directory when
// no --config flag is given.
const DefaultFile = "nereid.yaml"

// Config is the provider-level configuration.
type Config struct {
	// PersonalAccessToken authenticates against the API. Required.
	PersonalAccessToken string `yaml:"personal_access_token"`

	// APIRoot overrides the API base URL. Empty means production.
	APIRoot string `yaml:"api_root"`

	// SSHKeyFile is the local private key used for bootstrap.
	SSHKeyFile string `yaml:"ssh_key_file"`

	// SSHKeyNames is a comma-separated list of key names registered with
	// the provider account.
	SSHKeyNames string `yaml:"ssh_key_names"`

	// BootstrapScript is an optional shell script run on new droplets.
	BootstrapScript string `yaml:"bootstrap_script"`

	// Defaults are applied to every create request unless overridden per
	// invocation.
	Defaults Profile `yaml:"defaults"`
}

// Profile holds per-droplet creation settings.
type Profile struct {
	Image  string `yaml:"image"`
	Size   string `yaml:"size"`
	Region string `yaml:"region"`

	// Optional flags. nil means unset: the flag is not sent at all.
	PrivateNetworking *bool `yaml:"private_networking"`
	BackupsEnabled    *bool `yaml:"backups_enabled"`
	IPv6              *bool `yaml:"ipv6"`

	CreateDNSRecord bool   `yaml:"create_dns_record"`
	DNSHostname     string `yaml:"dns_hostname"`
	DNSDomain       string `yaml:"dns_domain"`

	// Poll loop overrides, in seconds. Zero means the engine defaults.
	WaitForIPTimeout  int `yaml:"wait_for_ip_timeout"`
	WaitForIPInterval int `yaml:"wait_for_ip_interval"`
}

// KeyNames returns the registered key names as a slice.
func (c *Config) KeyNames() []string {
	if strings.TrimSpace(c.SSHKeyNames) == "" {
		return nil
	}
	parts := strings.Split(c.SSHKeyNames, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// WaitTimeout returns the configured poll timeout as a duration.
func (p *Profile) WaitTimeout() time.Duration {
	if p.WaitForIPTimeout <= 0 {
		return provisioning.DefaultWaitTimeout
	}
	return time.Duration(p.WaitForIPTimeout) * time.Second
}

// PollInterval returns the configured poll interval as a duration.
func (p *Profile) PollInterval() time.Duration {
	if p.WaitForIPInterval <= 0 {
		return provisioning.DefaultPollInterval
	}
	return time.Duration(p.WaitForIPInterval) * time.Second
}

// Request builds a provisioning request for the given droplet name from
// the config's key material and profile defaults.
func (c *Config) Request(name string) *provisioning.Request {
	return &provisioning.Request{
		Name:              name,
		Image:             c.Defaults.Image,
		Size:              c.Defaults.Size,
		Region:            c.Defaults.Region,
		SSHKeyNames:       c.KeyNames(),
		KeyFile:           c.SSHKeyFile,
		PrivateNetworking: c.Defaults.PrivateNetworking,
		Backups:           c.Defaults.BackupsEnabled,
		IPv6:              c.Defaults.IPv6,
		CreateDNSRecord:   c.Defaults.CreateDNSRecord,
		DNSHostname:       c.Defaults.DNSHostname,
		DNSDomain:         c.Defaults.DNSDomain,
		WaitTimeout:       c.Defaults.WaitTimeout(),
		PollInterval:      c.Defaults.PollInterval(),
	}
}
