// Package catalog implements browsing over the book collection:
// filtering, searching, and sorting of the in-memory result set.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mesh-intelligence/bookshop/internal/sqlite"
	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// Sort keys accepted by Filter.SortKey.
const (
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortTitle      = "title"
	SortRatingDesc = "rating-desc"
	SortDateDesc   = "date-desc"
)

// CategoryAll matches every category.
const CategoryAll = "all"

// Filter narrows and orders a catalog listing. The zero value matches
// everything in store order.
type Filter struct {
	// Category is an exact match; empty or "all" matches every category.
	Category string
	// SearchText is a case-insensitive substring match over title,
	// author, and description.
	SearchText string
	// MaxPrice is an inclusive upper bound; zero or negative disables it.
	MaxPrice float64
	// MinRating is an inclusive lower bound.
	MinRating float64
	// SortKey is one of the Sort constants; empty leaves store order.
	SortKey string
}

// Service reads the catalog from the structured store.
type Service struct {
	books *sqlite.Books
}

// NewService creates a catalog service over the given store.
func NewService(store *sqlite.Store) *Service {
	return &Service{books: store.Books()}
}

// List returns the books matching the filter. Filtering is pure over the
// current store contents: the same filter against unchanged data yields
// identical results, and an empty result set is valid. Sorting is stable,
// preserving id order between equal keys.
func (s *Service) List(filter Filter) ([]types.Book, error) {
	books, err := s.books.All()
	if err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}

	filtered := books[:0:0]
	for _, b := range books {
		if matches(b, filter) {
			filtered = append(filtered, b)
		}
	}
	if err := sortBooks(filtered, filter.SortKey); err != nil {
		return nil, err
	}
	return filtered, nil
}

// Get retrieves a single book by id.
func (s *Service) Get(id int) (types.Book, error) {
	return s.books.Get(id)
}

// Featured returns the first n books in id order, for front-page display.
// Non-positive n yields an empty slice.
func (s *Service) Featured(n int) ([]types.Book, error) {
	if n <= 0 {
		return []types.Book{}, nil
	}
	books, err := s.books.All()
	if err != nil {
		return nil, fmt.Errorf("listing featured books: %w", err)
	}
	if n < len(books) {
		books = books[:n]
	}
	return books, nil
}

// Categories returns the distinct category names in alphabetical order.
func (s *Service) Categories() ([]string, error) {
	books, err := s.books.All()
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	seen := map[string]bool{}
	categories := []string{}
	for _, b := range books {
		if !seen[b.Category] {
			seen[b.Category] = true
			categories = append(categories, b.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// matches reports whether a book passes every active filter clause.
func matches(b types.Book, f Filter) bool {
	if f.Category != "" && f.Category != CategoryAll && b.Category != f.Category {
		return false
	}
	if f.SearchText != "" {
		term := strings.ToLower(f.SearchText)
		if !strings.Contains(strings.ToLower(b.Title), term) &&
			!strings.Contains(strings.ToLower(b.Author), term) &&
			!strings.Contains(strings.ToLower(b.Description), term) {
			return false
		}
	}
	if f.MaxPrice > 0 && b.Price > f.MaxPrice {
		return false
	}
	if b.Rating < f.MinRating {
		return false
	}
	return true
}

// sortBooks orders books in place by the given key. The sort is stable
// so equal keys keep their prior relative order.
func sortBooks(books []types.Book, key string) error {
	switch key {
	case "":
		// Store order.
	case SortPriceAsc:
		sort.SliceStable(books, func(i, j int) bool { return books[i].Price < books[j].Price })
	case SortPriceDesc:
		sort.SliceStable(books, func(i, j int) bool { return books[i].Price > books[j].Price })
	case SortTitle:
		sort.SliceStable(books, func(i, j int) bool { return books[i].Title < books[j].Title })
	case SortRatingDesc:
		sort.SliceStable(books, func(i, j int) bool { return books[i].Rating > books[j].Rating })
	case SortDateDesc:
		sort.SliceStable(books, func(i, j int) bool { return books[i].PublicationDate > books[j].PublicationDate })
	default:
		return fmt.Errorf("unknown sort key %q: %w", key, types.ErrValidation)
	}
	return nil
}
