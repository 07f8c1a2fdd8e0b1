// Property list command prints one page of recorded properties.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	propertyListPage     uint64
	propertyListPageSize uint64
)

var propertyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded properties",
	Long: `List prints one page of properties ordered by id.

Example:
  registry property list
  registry property list --page 1 --page-size 20 --json`,
	Args: cobra.NoArgs,
	RunE: runPropertyList,
}

func init() {
	propertyListCmd.Flags().Uint64Var(&propertyListPage, "page", 0, "page number (0-based)")
	propertyListCmd.Flags().Uint64Var(&propertyListPageSize, "page-size", 20, "entries per page")
}

func runPropertyList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	properties := backend.ListProperties(propertyListPage, propertyListPageSize)

	if flagJSON {
		return printJSON(properties)
	}
	if len(properties) == 0 {
		fmt.Println("No properties found.")
		return nil
	}
	for _, p := range properties {
		fmt.Printf("%d\t%s\towner=%d\tshares=%d\n", p.ID, p.Address, p.OwnerID, p.TokenizedShares)
	}
	return nil
}
