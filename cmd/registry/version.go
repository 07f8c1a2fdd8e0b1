// Version command for the registry CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/deeds/pkg/deeds"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the registry version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("registry", deeds.Version)
	},
}
