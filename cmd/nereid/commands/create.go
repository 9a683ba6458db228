package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/nereid/cmd/nereid/handlers"
)

// Create returns the command for provisioning a new droplet.
//
// The machine name may be a fully-qualified domain name; with --dns (or
// create_dns_record in the config) address records are written under the
// derived domain once the droplet is reachable.
func Create() *cobra.Command {
	var configPath string
	var opts handlers.CreateOptions

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Provision a droplet and bootstrap it over SSH",
		Long: `Provision a droplet end to end.

The create flow resolves the image/size/region selectors against the
provider catalog, submits the creation request, polls until the droplet
has a public address, optionally writes DNS address records, and hands
the address to the SSH bootstrap.

Examples:
  # Create with profile defaults from nereid.yaml
  nereid create web1.example.com

  # Override the profile and sync DNS
  nereid create web1.example.com --size s-2vcpu-4gb --region fra1 --dns`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DNSChanged = cmd.Flags().Changed("dns")
			return handlers.Create(cmd.Context(), configPath, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: nereid.yaml)")
	cmd.Flags().StringVar(&opts.Image, "image", "", "Image selector (name, slug, or id)")
	cmd.Flags().StringVar(&opts.Size, "size", "", "Size slug")
	cmd.Flags().StringVar(&opts.Region, "region", "", "Region name or slug")
	cmd.Flags().BoolVar(&opts.DNS, "dns", false, "Create DNS address records for the droplet's FQDN")
	cmd.Flags().DurationVar(&opts.WaitTimeout, "wait-timeout", 0, "How long to wait for a public address (default 10m)")
	cmd.Flags().DurationVar(&opts.PollInterval, "poll-interval", 0, "Delay between address polls (default 10s)")

	return cmd
}
