package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/nereid/cmd/nereid/handlers"
)

// Show returns the command for inspecting a single droplet.
func Show() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show the details of a droplet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Show(cmd.Context(), configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: nereid.yaml)")

	return cmd
}
