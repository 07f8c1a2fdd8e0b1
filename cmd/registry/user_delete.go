// User delete command removes a user by id.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var userDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user by id",
	Long: `Delete removes a registered user and prints the removed record.
Properties owned by the user are not deleted; their owner_id keeps its
value.

Example:
  registry user delete 0
  registry user delete 0 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runUserDelete,
}

func runUserDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	user, err := backend.DeleteUser(id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if flagJSON {
		return printJSON(user)
	}
	fmt.Printf("Deleted user %d: %s\n", user.ID, user.Name)
	return nil
}
