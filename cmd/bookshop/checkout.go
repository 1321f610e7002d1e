// Checkout command places an order from the cart.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshop/internal/auth"
	"github.com/mesh-intelligence/bookshop/internal/cart"
	"github.com/mesh-intelligence/bookshop/internal/checkout"
	"github.com/mesh-intelligence/bookshop/pkg/types"
)

var (
	flagShipName    string
	flagShipEmail   string
	flagShipAddress string
	flagShipCity    string
	flagShipPostal  string
	flagShipCountry string

	flagCardName   string
	flagCardNumber string
	flagCardExpiry string
	flagCardCVV    string
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order from the cart",
	Long: `Checkout validates the shipping and payment details, freezes the cart
into an order, and empties the cart. The order is owned by the logged-in
account, or placed anonymously without a session.

Example:
  bookshop checkout \
    --name "Alice Smith" --email a@x.com \
    --address "1 Main St" --city Springfield --postal-code 12345 --country USA \
    --card-name "Alice Smith" --card-number "4111 1111 1111 1111" \
    --expiry 12/27 --cvv 123`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		cartSvc := cart.NewService(store)
		svc := checkout.NewService(store, cartSvc, auth.NewService(store))

		order, err := svc.PlaceOrder(
			types.ShippingInfo{
				FullName:   flagShipName,
				Email:      flagShipEmail,
				Address:    flagShipAddress,
				City:       flagShipCity,
				PostalCode: flagShipPostal,
				Country:    flagShipCountry,
			},
			types.PaymentInfo{
				CardName:   flagCardName,
				CardNumber: flagCardNumber,
				ExpiryDate: flagCardExpiry,
				CVV:        flagCardCVV,
			},
		)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(order)
		}
		fmt.Println("Order placed:", order.OrderID)
		fmt.Printf("  subtotal: $%.2f\n", order.Subtotal)
		fmt.Printf("  shipping: $%.2f\n", order.ShippingCost)
		fmt.Printf("  total:    $%.2f\n", order.Total)
		fmt.Println("  status:  ", order.Status)
		return nil
	},
}

func init() {
	checkoutCmd.Flags().StringVar(&flagShipName, "name", "", "recipient full name")
	checkoutCmd.Flags().StringVar(&flagShipEmail, "email", "", "contact email")
	checkoutCmd.Flags().StringVar(&flagShipAddress, "address", "", "street address")
	checkoutCmd.Flags().StringVar(&flagShipCity, "city", "", "city")
	checkoutCmd.Flags().StringVar(&flagShipPostal, "postal-code", "", "postal code")
	checkoutCmd.Flags().StringVar(&flagShipCountry, "country", "", "country")
	checkoutCmd.Flags().StringVar(&flagCardName, "card-name", "", "name on card")
	checkoutCmd.Flags().StringVar(&flagCardNumber, "card-number", "", "16-digit card number")
	checkoutCmd.Flags().StringVar(&flagCardExpiry, "expiry", "", "card expiry (MM/YY)")
	checkoutCmd.Flags().StringVar(&flagCardCVV, "cvv", "", "card CVV")
}
