package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/imamik/nereid/internal/bootstrap"
	"github.com/imamik/nereid/internal/config"
	"github.com/imamik/nereid/internal/provisioning"
)

// CreateOptions are the per-invocation overrides for the create command.
// Zero values mean "use the configured default".
type CreateOptions struct {
	Image  string
	Size   string
	Region string

	// DNS carries the --dns flag value; DNSChanged records whether the
	// flag was given at all, so an absent flag leaves the configured
	// default untouched.
	DNS        bool
	DNSChanged bool

	WaitTimeout  time.Duration
	PollInterval time.Duration
}

// Create handles the create command: it provisions the named droplet end to
// end and prints the resulting addresses, DNS records, and bootstrap output.
func Create(ctx context.Context, configPath, name string, opts CreateOptions) error {
	cfg, client, err := load(configPath)
	if err != nil {
		return err
	}

	req := buildRequest(cfg, name, opts)

	runner := bootstrap.NewRunner("", cfg.BootstrapScript)
	provisioner := provisioning.NewProvisioner(client, runner, provisioning.NewConsoleObserver())

	result, err := provisioner.Create(ctx, req)
	if err != nil {
		return err
	}

	return printCreateResult(result)
}

// buildRequest merges the profile defaults with the command-line overrides.
func buildRequest(cfg *config.Config, name string, opts CreateOptions) *provisioning.Request {
	req := cfg.Request(name)

	if opts.Image != "" {
		req.Image = opts.Image
	}
	if opts.Size != "" {
		req.Size = opts.Size
	}
	if opts.Region != "" {
		req.Region = opts.Region
	}
	if opts.DNSChanged {
		req.CreateDNSRecord = opts.DNS
	}
	if opts.WaitTimeout > 0 {
		req.WaitTimeout = opts.WaitTimeout
	}
	if opts.PollInterval > 0 {
		req.PollInterval = opts.PollInterval
	}

	return req
}

func printCreateResult(result *provisioning.Result) error {
	fmt.Fprintf(stdout, "Droplet %s (id %d) is %s\n", result.Droplet.Name, result.Droplet.ID, result.Droplet.Status)
	fmt.Fprintf(stdout, "  ssh host: %s\n", result.SSHHost)

	for _, ip := range result.Droplet.Networks.PublicIPs() {
		fmt.Fprintf(stdout, "  public:   %s\n", ip)
	}
	for _, ip := range result.Droplet.Networks.PrivateIPs() {
		fmt.Fprintf(stdout, "  private:  %s\n", ip)
	}

	for _, rec := range result.DNSRecords {
		fmt.Fprintf(stdout, "  dns:      %s %s -> %s\n", rec.Type, rec.Name, rec.Data)
	}

	if len(result.Bootstrap) > 0 {
		out, err := json.MarshalIndent(result.Bootstrap, "  ", "  ")
		if err != nil {
			return fmt.Errorf("encode bootstrap output: %w", err)
		}
		fmt.Fprintf(stdout, "  bootstrap: %s\n", out)
	}

	return nil
}
