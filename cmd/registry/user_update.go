// User update command overwrites a user's mutable fields.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/deeds/pkg/types"
)

var (
	userUpdateName    string
	userUpdateContact string
)

var userUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a user's name and contact info",
	Long: `Update overwrites the name and contact info of an existing user.
The id is immutable.

Example:
  registry user update 0 --name "Alice Smith" --contact "alice@example.org"`,
	Args: cobra.ExactArgs(1),
	RunE: runUserUpdate,
}

func init() {
	userUpdateCmd.Flags().StringVar(&userUpdateName, "name", "", "new user name (required)")
	userUpdateCmd.Flags().StringVar(&userUpdateContact, "contact", "", "new contact info (required)")
	_ = userUpdateCmd.MarkFlagRequired("name")
	_ = userUpdateCmd.MarkFlagRequired("contact")
}

func runUserUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	user, err := backend.UpdateUser(id, types.UserPayload{
		Name:        userUpdateName,
		ContactInfo: userUpdateContact,
	})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if flagJSON {
		return printJSON(user)
	}
	fmt.Printf("Updated user %d: %s\n", user.ID, user.Name)
	return nil
}
