// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the nereid CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nereid",
		Short: "Provision DigitalOcean droplets with DNS record sync",
	}

	// Core commands
	cmd.AddCommand(Init())
	cmd.AddCommand(Create())
	cmd.AddCommand(Destroy())
	cmd.AddCommand(Show())
	cmd.AddCommand(List())

	// Utility commands
	cmd.AddCommand(Keys())
	cmd.AddCommand(FloatingIP())
	cmd.AddCommand(Cost())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
