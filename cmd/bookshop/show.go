// Show command prints one book with its reviews.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshop/internal/account"
	"github.com/mesh-intelligence/bookshop/internal/auth"
	"github.com/mesh-intelligence/bookshop/internal/catalog"
)

var showCmd = &cobra.Command{
	Use:   "show <book-id>",
	Short: "Show a book's details and reviews",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := parseBookID(args[0])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		book, err := catalog.NewService(store).Get(bookID)
		if err != nil {
			return err
		}
		reviews, err := account.NewService(store, auth.NewService(store)).ReviewsForBook(bookID)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(struct {
				Book    any `json:"book"`
				Reviews any `json:"reviews"`
			}{book, reviews})
		}

		fmt.Printf("%s by %s\n", book.Title, book.Author)
		fmt.Printf("  category: %s\n", book.Category)
		fmt.Printf("  price:    $%.2f\n", book.Price)
		fmt.Printf("  rating:   %.1f (%d reviews)\n", book.Rating, book.ReviewCount)
		fmt.Printf("  %s\n", book.Description)
		if len(reviews) > 0 {
			fmt.Println("Reviews:")
			for _, r := range reviews {
				fmt.Printf("  [%d/5] %s — %s\n", r.Rating, r.Author, r.Text)
			}
		}
		return nil
	},
}
