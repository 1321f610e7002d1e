// Register command creates a new account.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshop/internal/auth"
)

var registerCmd = &cobra.Command{
	Use:   "register <name> <email> <password>",
	Short: "Create a new account",
	Long: `Register creates a new account. Registration does not log you in;
run "bookshop login" afterwards.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		user, err := auth.NewService(store).Register(args[0], args[1], args[2])
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(user)
		}
		fmt.Printf("Registered %s <%s>\n", user.Name, user.Email)
		return nil
	},
}
