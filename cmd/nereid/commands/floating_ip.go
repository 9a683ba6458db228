package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/imamik/nereid/cmd/nereid/handlers"
)

// FloatingIP returns the parent command for floating IP management.
func FloatingIP() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:     "floating-ip",
		Aliases: []string{"fip"},
		Short:   "Manage floating IPs",
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: nereid.yaml)")

	var region string
	var dropletID int64
	create := &cobra.Command{
		Use:   "create",
		Short: "Allocate a floating IP for a droplet or reserve one in a region",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.FloatingIPCreate(cmd.Context(), configPath, region, dropletID)
		},
	}
	create.Flags().StringVar(&region, "region", "", "Region to reserve the IP in")
	create.Flags().Int64Var(&dropletID, "droplet-id", 0, "Droplet to assign the new IP to")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "show <ip>",
		Short: "Show the details of a floating IP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.FloatingIPShow(cmd.Context(), configPath, args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <ip>",
		Short: "Release a floating IP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.FloatingIPDelete(cmd.Context(), configPath, args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "assign <ip> <droplet-id>",
		Short: "Assign a floating IP to a droplet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return err
			}
			return handlers.FloatingIPAssign(cmd.Context(), configPath, args[0], id)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "unassign <ip>",
		Short: "Detach a floating IP from its droplet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.FloatingIPUnassign(cmd.Context(), configPath, args[0])
		},
	})

	return cmd
}
