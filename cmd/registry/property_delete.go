// Property delete command removes a property by id.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var propertyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a property by id",
	Long: `Delete removes a property record and prints its final state,
history included.

Example:
  registry property delete 0
  registry property delete 0 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runPropertyDelete,
}

func runPropertyDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	property, err := backend.DeleteProperty(id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}

	if flagJSON {
		return printJSON(property)
	}
	fmt.Printf("Deleted property %d: %s\n", property.ID, property.Address)
	return nil
}
