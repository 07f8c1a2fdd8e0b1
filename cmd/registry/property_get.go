// Property get command retrieves a property by id.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var propertyGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Retrieve a property by id",
	Long: `Get retrieves a property record by id, including its audit
history.

Example:
  registry property get 0
  registry property get 0 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runPropertyGet,
}

func runPropertyGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	property, err := backend.GetProperty(id)
	if err != nil {
		return fmt.Errorf("get property: %w", err)
	}

	if flagJSON {
		return printJSON(property)
	}
	printPropertyDetails(property)
	return nil
}
