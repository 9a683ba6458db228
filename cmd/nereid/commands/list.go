package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/nereid/cmd/nereid/handlers"
)

// List returns the parent command for the provider catalog listings.
func List() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List droplets and provider catalog resources",
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: nereid.yaml)")

	var full bool
	droplets := &cobra.Command{
		Use:   "droplets",
		Short: "List droplets in the account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ListDroplets(cmd.Context(), configPath, full)
		},
	}
	droplets.Flags().BoolVar(&full, "full", false, "Include all provider fields")
	cmd.AddCommand(droplets)

	cmd.AddCommand(&cobra.Command{
		Use:   "images",
		Short: "List available images",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ListImages(cmd.Context(), configPath)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "sizes",
		Short: "List available droplet sizes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ListSizes(cmd.Context(), configPath)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "regions",
		Short: "List available regions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ListRegions(cmd.Context(), configPath)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "keys",
		Short: "List SSH keys registered with the account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ListKeys(cmd.Context(), configPath)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "floating-ips",
		Short: "List floating IPs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ListFloatingIPs(cmd.Context(), configPath)
		},
	})

	return cmd
}
