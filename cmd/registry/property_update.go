// Property update command overwrites a property's mutable fields.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/deeds/pkg/types"
)

var (
	propertyUpdateAddress string
	propertyUpdateOwner   uint64
	propertyUpdateShares  uint64
)

var propertyUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a property's address, owner, and shares",
	Long: `Update overwrites the mutable fields of an existing property and
appends an "Updated" entry to its history. The id is immutable and the new
owner must be a registered user.

Example:
  registry property update 0 --address "1 Main St, Unit 2" --owner 1 --shares 800`,
	Args: cobra.ExactArgs(1),
	RunE: runPropertyUpdate,
}

func init() {
	propertyUpdateCmd.Flags().StringVar(&propertyUpdateAddress, "address", "", "new address (required)")
	propertyUpdateCmd.Flags().Uint64Var(&propertyUpdateOwner, "owner", 0, "new owner user id (required)")
	propertyUpdateCmd.Flags().Uint64Var(&propertyUpdateShares, "shares", 0, "new tokenized share count")
	_ = propertyUpdateCmd.MarkFlagRequired("address")
	_ = propertyUpdateCmd.MarkFlagRequired("owner")
}

func runPropertyUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	property, err := backend.UpdateProperty(id, types.PropertyPayload{
		Address:         propertyUpdateAddress,
		OwnerID:         propertyUpdateOwner,
		TokenizedShares: propertyUpdateShares,
	})
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}

	if flagJSON {
		return printJSON(property)
	}
	fmt.Printf("Updated property %d: %s\n", property.ID, property.Address)
	return nil
}
