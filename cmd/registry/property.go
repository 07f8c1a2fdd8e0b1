// Property command group for the registry CLI.
package main

import "github.com/spf13/cobra"

var propertyCmd = &cobra.Command{
	Use:   "property",
	Short: "Manage tokenized properties",
}

func init() {
	propertyCmd.AddCommand(propertyAddCmd)
	propertyCmd.AddCommand(propertyGetCmd)
	propertyCmd.AddCommand(propertyUpdateCmd)
	propertyCmd.AddCommand(propertyDeleteCmd)
	propertyCmd.AddCommand(propertyListCmd)
}
