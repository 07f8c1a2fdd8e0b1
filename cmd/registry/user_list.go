// User list command prints one page of registered users.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	userListPage     uint64
	userListPageSize uint64
)

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered users",
	Long: `List prints one page of registered users ordered by id.

Example:
  registry user list
  registry user list --page 1 --page-size 20 --json`,
	Args: cobra.NoArgs,
	RunE: runUserList,
}

func init() {
	userListCmd.Flags().Uint64Var(&userListPage, "page", 0, "page number (0-based)")
	userListCmd.Flags().Uint64Var(&userListPageSize, "page-size", 20, "entries per page")
}

func runUserList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	users := backend.ListUsers(userListPage, userListPageSize)

	if flagJSON {
		return printJSON(users)
	}
	if len(users) == 0 {
		fmt.Println("No users found.")
		return nil
	}
	for _, u := range users {
		fmt.Printf("%d\t%s\t%s\n", u.ID, u.Name, u.ContactInfo)
	}
	return nil
}
