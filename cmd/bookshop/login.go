// Login command establishes the session.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshop/internal/auth"
)

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Log in and establish the session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		user, err := auth.NewService(store).Login(args[0], args[1])
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(user)
		}
		fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
		return nil
	},
}
