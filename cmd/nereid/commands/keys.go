package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/imamik/nereid/cmd/nereid/handlers"
)

// Keys returns the parent command for SSH key management.
func Keys() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage SSH keys registered with the account",
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: nereid.yaml)")

	var publicKeyFile string
	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Upload a public key under the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.KeyCreate(cmd.Context(), configPath, args[0], publicKeyFile)
		},
	}
	create.Flags().StringVar(&publicKeyFile, "public-key-file", "", "Path to the public key to upload (required)")
	_ = create.MarkFlagRequired("public-key-file")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Show the details of a registered key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.KeyShow(cmd.Context(), configPath, args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a registered key by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			return handlers.KeyDelete(cmd.Context(), configPath, id)
		},
	})

	return cmd
}
