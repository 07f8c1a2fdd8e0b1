// User add command registers a new user.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/deeds/pkg/types"
)

var (
	userAddName    string
	userAddContact string
)

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new user",
	Long: `Add registers a new user with a name and contact info.

Example:
  registry user add --name "Alice" --contact "alice@example.com"
  registry user add --name "Bob" --contact "+1 555 0100" --json`,
	Args: cobra.NoArgs,
	RunE: runUserAdd,
}

func init() {
	userAddCmd.Flags().StringVar(&userAddName, "name", "", "user name (required)")
	userAddCmd.Flags().StringVar(&userAddContact, "contact", "", "contact info (required)")
	_ = userAddCmd.MarkFlagRequired("name")
	_ = userAddCmd.MarkFlagRequired("contact")
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	user, err := backend.AddUser(types.UserPayload{
		Name:        userAddName,
		ContactInfo: userAddContact,
	})
	if err != nil {
		return fmt.Errorf("add user: %w", err)
	}

	if flagJSON {
		return printJSON(user)
	}
	fmt.Printf("Registered user %d: %s\n", user.ID, user.Name)
	return nil
}
