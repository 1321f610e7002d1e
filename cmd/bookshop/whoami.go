// Whoami command prints the session user.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshop/internal/auth"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		user, ok, err := auth.NewService(store).CurrentUser()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Not logged in.")
			return nil
		}

		if flagJSON {
			return printJSON(user)
		}
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		return nil
	},
}
