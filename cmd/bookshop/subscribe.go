// Subscribe command records a newsletter signup.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshop/internal/account"
)

var subscribeCmd = &cobra.Command{
	Use:   "subscribe <email>",
	Short: "Subscribe an email to the newsletter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAccount(func(svc *account.Service) error {
			signup, err := svc.SubscribeNewsletter(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Subscribed %s\n", signup.Email)
			return nil
		})
	},
}
