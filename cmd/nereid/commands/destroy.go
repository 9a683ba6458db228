package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/nereid/cmd/nereid/handlers"
)

// Destroy returns the command for tearing down a droplet.
//
// DNS records whose name matches the droplet's derived hostname are always
// swept after the delete, regardless of whether they were created by
// nereid; stale records are assumed bad.
func Destroy() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "destroy <name>",
		Short: "Destroy a droplet and sweep its DNS records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Destroy(cmd.Context(), configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: nereid.yaml)")

	return cmd
}
