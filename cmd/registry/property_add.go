// Property add command records a new tokenized property.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/deeds/pkg/types"
)

var (
	propertyAddAddress string
	propertyAddOwner   uint64
	propertyAddShares  uint64
)

var propertyAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new property",
	Long: `Add records a new tokenized property. The owner must be a
registered user.

Example:
  registry property add --address "1 Main St" --owner 0 --shares 1000
  registry property add --address "2 Oak Ave" --owner 1 --shares 500 --json`,
	Args: cobra.NoArgs,
	RunE: runPropertyAdd,
}

func init() {
	propertyAddCmd.Flags().StringVar(&propertyAddAddress, "address", "", "property address (required)")
	propertyAddCmd.Flags().Uint64Var(&propertyAddOwner, "owner", 0, "owner user id (required)")
	propertyAddCmd.Flags().Uint64Var(&propertyAddShares, "shares", 0, "tokenized share count")
	_ = propertyAddCmd.MarkFlagRequired("address")
	_ = propertyAddCmd.MarkFlagRequired("owner")
}

func runPropertyAdd(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	property, err := backend.AddProperty(types.PropertyPayload{
		Address:         propertyAddAddress,
		OwnerID:         propertyAddOwner,
		TokenizedShares: propertyAddShares,
	})
	if err != nil {
		return fmt.Errorf("add property: %w", err)
	}

	if flagJSON {
		return printJSON(property)
	}
	fmt.Printf("Recorded property %d: %s\n", property.ID, property.Address)
	return nil
}
