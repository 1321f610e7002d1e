// Wishlist command group: add, remove, show.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshop/internal/account"
	"github.com/mesh-intelligence/bookshop/internal/auth"
)

var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Manage saved books",
}

var wishlistAddCmd = &cobra.Command{
	Use:   "add <book-id>",
	Short: "Save a book to the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := parseBookID(args[0])
		if err != nil {
			return err
		}
		return withAccount(func(svc *account.Service) error {
			entry, err := svc.AddToWishlist(bookID)
			if err != nil {
				return err
			}
			fmt.Printf("Saved %s\n", entry.Title)
			return nil
		})
	},
}

var wishlistRemoveCmd = &cobra.Command{
	Use:   "remove <book-id>",
	Short: "Remove a book from the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := parseBookID(args[0])
		if err != nil {
			return err
		}
		return withAccount(func(svc *account.Service) error {
			if err := svc.RemoveFromWishlist(bookID); err != nil {
				return err
			}
			fmt.Println("Removed.")
			return nil
		})
	},
}

var wishlistShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List saved books",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAccount(func(svc *account.Service) error {
			entries, err := svc.WishlistEntries()
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(entries)
			}
			if len(entries) == 0 {
				fmt.Println("Wishlist is empty.")
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%3d  %-26s %-22s $%.2f\n", e.BookID, e.Title, e.Author, e.Price)
			}
			return nil
		})
	},
}

func init() {
	wishlistCmd.AddCommand(wishlistAddCmd)
	wishlistCmd.AddCommand(wishlistRemoveCmd)
	wishlistCmd.AddCommand(wishlistShowCmd)
}

// withAccount opens the store, builds an account service, and runs fn.
func withAccount(fn func(svc *account.Service) error) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(account.NewService(store, auth.NewService(store)))
}
