// Cart command group: add, remove, set, show, clear.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshop/internal/cart"
	"github.com/mesh-intelligence/bookshop/pkg/types"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the shopping cart",
}

var cartAddCmd = &cobra.Command{
	Use:   "add <book-id>",
	Short: "Add one copy of a book to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := parseBookID(args[0])
		if err != nil {
			return err
		}
		return withCart(func(svc *cart.Service) error {
			if err := svc.AddItem(bookID); err != nil {
				return err
			}
			return printCartSummary(svc)
		})
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <book-id>",
	Short: "Remove a book from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := parseBookID(args[0])
		if err != nil {
			return err
		}
		return withCart(func(svc *cart.Service) error {
			if err := svc.RemoveItem(bookID); err != nil {
				return err
			}
			return printCartSummary(svc)
		})
	},
}

var cartSetCmd = &cobra.Command{
	Use:   "set <book-id> <quantity>",
	Short: "Set a cart line's quantity (0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := parseBookID(args[0])
		if err != nil {
			return err
		}
		quantity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q: %w", args[1], types.ErrValidation)
		}
		return withCart(func(svc *cart.Service) error {
			if err := svc.SetQuantity(bookID, quantity); err != nil {
				return err
			}
			return printCartSummary(svc)
		})
	},
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart contents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCart(printCartSummary)
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCart(func(svc *cart.Service) error {
			if err := svc.Clear(); err != nil {
				return err
			}
			fmt.Println("Cart cleared.")
			return nil
		})
	},
}

func init() {
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartSetCmd)
	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartClearCmd)
}

// withCart opens the store, builds a cart service, and runs fn.
func withCart(fn func(svc *cart.Service) error) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(cart.NewService(store))
}

// printCartSummary prints the cart lines, the item count, and subtotal.
func printCartSummary(svc *cart.Service) error {
	lines, err := svc.Lines()
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(lines)
	}

	if len(lines) == 0 {
		fmt.Println("Cart is empty.")
		return nil
	}
	for _, l := range lines {
		fmt.Printf("%3d  %-26s x%d  $%.2f\n", l.BookID, l.Title, l.Quantity, l.LineTotal())
	}

	count, err := svc.TotalCount()
	if err != nil {
		return err
	}
	subtotal, err := svc.Subtotal()
	if err != nil {
		return err
	}
	fmt.Printf("%d item(s), subtotal $%.2f\n", count, subtotal)
	return nil
}
