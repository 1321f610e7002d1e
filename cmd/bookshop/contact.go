// Contact command records a contact form submission.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshop/internal/account"
)

var (
	flagContactName    string
	flagContactEmail   string
	flagContactSubject string
)

var contactCmd = &cobra.Command{
	Use:   "contact <message>",
	Short: "Send a message to the shop",
	Long: `Contact records a message for the shop.

Example:
  bookshop contact "Where is my order?" --name Alice --email a@x.com --subject "Order query"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAccount(func(svc *account.Service) error {
			msg, err := svc.SendMessage(flagContactName, flagContactEmail, flagContactSubject, args[0])
			if err != nil {
				return err
			}
			fmt.Println("Message sent:", msg.MessageID)
			return nil
		})
	},
}

func init() {
	contactCmd.Flags().StringVar(&flagContactName, "name", "", "your name")
	contactCmd.Flags().StringVar(&flagContactEmail, "email", "", "your email")
	contactCmd.Flags().StringVar(&flagContactSubject, "subject", "", "message subject")
}
