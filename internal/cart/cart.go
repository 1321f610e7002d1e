// Package cart implements the shopping cart: one canonical, persisted
// line set keyed by book id, with quantity math and change notification.
package cart

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/bookshop/internal/sqlite"
	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// Service mutates and reads the cart. All mutating operations notify
// subscribers with the new total item count before returning, so a
// badge can never display a stale count after a successful mutation.
type Service struct {
	items       *sqlite.CartItems
	books       *sqlite.Books
	subscribers []func(totalCount int)
}

// NewService creates a cart service over the given store.
func NewService(store *sqlite.Store) *Service {
	return &Service{
		items: store.Cart(),
		books: store.Books(),
	}
}

// Subscribe registers a callback invoked with the new total item count
// after every successful mutation. Callbacks run synchronously, in
// registration order, before the mutating call returns.
func (s *Service) Subscribe(fn func(totalCount int)) {
	s.subscribers = append(s.subscribers, fn)
}

// AddItem adds one copy of a book to the cart. A book already in the
// cart gets its quantity incremented; otherwise a new line is created
// with the book's current display fields and quantity 1.
func (s *Service) AddItem(bookID int) error {
	line, err := s.items.Get(bookID)
	switch {
	case err == nil:
		line.Quantity++
	case errors.Is(err, types.ErrNotFound):
		book, err := s.books.Get(bookID)
		if err != nil {
			return fmt.Errorf("adding book %d to cart: %w", bookID, err)
		}
		line = types.CartLine{
			BookID:   book.ID,
			Title:    book.Title,
			Author:   book.Author,
			Price:    book.Price,
			Image:    book.Image,
			Quantity: 1,
		}
	default:
		return err
	}

	if err := s.items.Put(line); err != nil {
		return err
	}
	s.notify()
	return nil
}

// SetQuantity sets the quantity of an existing line. A quantity of zero
// or less removes the line.
func (s *Service) SetQuantity(bookID, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(bookID)
	}

	line, err := s.items.Get(bookID)
	if err != nil {
		return fmt.Errorf("setting quantity for book %d: %w", bookID, err)
	}
	line.Quantity = quantity
	if err := s.items.Put(line); err != nil {
		return err
	}
	s.notify()
	return nil
}

// RemoveItem removes a line regardless of quantity. Removing a book not
// in the cart is a no-op, but still notifies subscribers.
func (s *Service) RemoveItem(bookID int) error {
	if err := s.items.Delete(bookID); err != nil {
		return err
	}
	s.notify()
	return nil
}

// Clear empties the cart.
func (s *Service) Clear() error {
	if err := s.items.Clear(); err != nil {
		return err
	}
	s.notify()
	return nil
}

// Lines returns every cart line in book id order.
func (s *Service) Lines() ([]types.CartLine, error) {
	return s.items.All()
}

// TotalCount returns the sum of quantities across all lines.
func (s *Service) TotalCount() (int, error) {
	lines, err := s.items.All()
	if err != nil {
		return 0, err
	}

	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total, nil
}

// Subtotal returns the sum of line totals across all lines.
func (s *Service) Subtotal() (float64, error) {
	lines, err := s.items.All()
	if err != nil {
		return 0, err
	}

	subtotal := 0.0
	for _, l := range lines {
		subtotal += l.LineTotal()
	}
	return subtotal, nil
}

// notify pushes the current total count to every subscriber. The badge
// is display plumbing: a failed count read skips notification but never
// fails the mutation that triggered it.
func (s *Service) notify() {
	count, err := s.TotalCount()
	if err != nil {
		return
	}
	for _, fn := range s.subscribers {
		fn(count)
	}
}
