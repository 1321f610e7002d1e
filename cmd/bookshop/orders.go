// Orders command lists the logged-in account's order history.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshop/internal/auth"
	"github.com/mesh-intelligence/bookshop/internal/cart"
	"github.com/mesh-intelligence/bookshop/internal/checkout"
	"github.com/mesh-intelligence/bookshop/pkg/types"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List your order history, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		authSvc := auth.NewService(store)
		user, ok, err := authSvc.CurrentUser()
		if err != nil {
			return err
		}
		if !ok {
			return types.ErrNotLoggedIn
		}

		svc := checkout.NewService(store, cart.NewService(store), authSvc)
		orders, err := svc.OrdersFor(user.Email)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(orders)
		}
		if len(orders) == 0 {
			fmt.Println("No orders yet.")
			return nil
		}
		for _, o := range orders {
			fmt.Printf("%s  %s  %d item(s)  $%.2f  %s\n",
				o.OrderID, o.Date, len(o.Items), o.Total, o.Status)
		}
		return nil
	},
}
