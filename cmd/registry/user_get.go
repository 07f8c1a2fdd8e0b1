// User get command retrieves a user by id.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var userGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Retrieve a user by id",
	Long: `Get retrieves a registered user by id.

Example:
  registry user get 0
  registry user get 0 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runUserGet,
}

func runUserGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	user, err := backend.GetUser(id)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	if flagJSON {
		return printJSON(user)
	}
	printUserDetails(user)
	return nil
}
