package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/nereid/cmd/nereid/handlers"
)

// Cost returns the command estimating the running cost of a droplet size.
func Cost() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "cost <size-slug>",
		Short: "Estimate the running cost of a droplet size",
		Long: `Estimate per-hour, per-day, per-week, per-month, and per-year cost
for a droplet size. The numbers come from the provider's published size
prices and are estimates, not a bill.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Cost(cmd.Context(), configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: nereid.yaml)")

	return cmd
}
