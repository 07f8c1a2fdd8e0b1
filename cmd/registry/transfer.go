// Transfer command reassigns a property's ownership record.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	transferFrom   uint64
	transferTo     uint64
	transferShares uint64
)

var transferCmd = &cobra.Command{
	Use:   "transfer <property-id>",
	Short: "Transfer ownership of a property",
	Long: `Transfer reassigns a property's ownership record from one user to
another and appends the transfer to the property's history. The --from user
must be the current owner and the share amount must be positive and within
the property's tokenized shares.

Example:
  registry transfer 0 --from 0 --to 1 --shares 300`,
	Args: cobra.ExactArgs(1),
	RunE: runTransfer,
}

func init() {
	transferCmd.Flags().Uint64Var(&transferFrom, "from", 0, "current owner user id (required)")
	transferCmd.Flags().Uint64Var(&transferTo, "to", 0, "new owner user id (required)")
	transferCmd.Flags().Uint64Var(&transferShares, "shares", 0, "share amount to record (required)")
	_ = transferCmd.MarkFlagRequired("from")
	_ = transferCmd.MarkFlagRequired("to")
	_ = transferCmd.MarkFlagRequired("shares")
}

func runTransfer(cmd *cobra.Command, args []string) error {
	propertyID, err := parseID(args[0])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	property, err := backend.TransferOwnership(propertyID, transferFrom, transferTo, transferShares)
	if err != nil {
		return fmt.Errorf("transfer ownership: %w", err)
	}

	if flagJSON {
		return printJSON(property)
	}
	fmt.Printf("Transferred property %d to user %d\n", property.ID, property.OwnerID)
	return nil
}
