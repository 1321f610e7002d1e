// Browse command lists the catalog with filtering and sorting.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bookshop/internal/catalog"
)

var (
	flagBrowseCategory  string
	flagBrowseSearch    string
	flagBrowseMaxPrice  float64
	flagBrowseMinRating float64
	flagBrowseSort      string
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog with optional filters",
	Long: `Browse lists books from the catalog, filtered and sorted.

Sort keys: price-asc, price-desc, title, rating-desc, date-desc

Example:
  bookshop browse
  bookshop browse --category Fiction
  bookshop browse --search orwell --sort price-asc
  bookshop browse --max-price 13 --min-rating 4.5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		books, err := catalog.NewService(store).List(catalog.Filter{
			Category:   flagBrowseCategory,
			SearchText: flagBrowseSearch,
			MaxPrice:   flagBrowseMaxPrice,
			MinRating:  flagBrowseMinRating,
			SortKey:    flagBrowseSort,
		})
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(books)
		}
		if len(books) == 0 {
			fmt.Println("No books match.")
			return nil
		}
		for _, b := range books {
			fmt.Printf("%3d  %-26s %-22s %-16s $%.2f  %.1f★\n",
				b.ID, b.Title, b.Author, b.Category, b.Price, b.Rating)
		}
		return nil
	},
}

func init() {
	browseCmd.Flags().StringVar(&flagBrowseCategory, "category", "", "filter by category (\"all\" matches everything)")
	browseCmd.Flags().StringVar(&flagBrowseSearch, "search", "", "case-insensitive search over title, author, description")
	browseCmd.Flags().Float64Var(&flagBrowseMaxPrice, "max-price", 0, "inclusive price ceiling (0 disables)")
	browseCmd.Flags().Float64Var(&flagBrowseMinRating, "min-rating", 0, "inclusive rating floor")
	browseCmd.Flags().StringVar(&flagBrowseSort, "sort", "", "sort key")
}
