package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/nereid/internal/config"
)

// Init returns the command that writes a starter configuration file via an
// interactive wizard.
func Init() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter configuration interactively",
		RunE: func(_ *cobra.Command, _ []string) error {
			return config.RunWizard(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Where to write the configuration (default: nereid.yaml)")

	return cmd
}
