// Review command submits a book review as the logged-in account.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshop/internal/account"
	"github.com/mesh-intelligence/bookshop/pkg/types"
)

var reviewCmd = &cobra.Command{
	Use:   "review <book-id> <rating> <text>",
	Short: "Review a book (rating 1-5)",
	Long: `Review submits a review of a book as the logged-in account.

Example:
  bookshop review 3 5 "Bleak and brilliant."`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := parseBookID(args[0])
		if err != nil {
			return err
		}
		rating, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid rating %q: %w", args[1], types.ErrValidation)
		}

		return withAccount(func(svc *account.Service) error {
			review, err := svc.AddReview(bookID, rating, args[2])
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(review)
			}
			fmt.Println("Review submitted:", review.ReviewID)
			return nil
		})
	},
}
