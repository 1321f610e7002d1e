// This file implements the cart collection accessor. The cart is keyed
// by book id, so a cart holds at most one line per book.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// CartItems provides typed access to the cart collection. This is the
// single canonical cart; no parallel representation exists.
type CartItems struct {
	store *Store
}

const cartColumns = "book_id, title, author, price, image, quantity"

// All returns every cart line ordered by book id.
func (c *CartItems) All() ([]types.CartLine, error) {
	db, err := c.store.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT " + cartColumns + " FROM " + types.CollectionCart + " ORDER BY book_id ASC")
	if err != nil {
		return nil, fmt.Errorf("querying cart: %w", err)
	}
	defer rows.Close()

	lines := []types.CartLine{}
	for rows.Next() {
		var l types.CartLine
		if err := rows.Scan(&l.BookID, &l.Title, &l.Author, &l.Price, &l.Image, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scanning cart line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cart: %w", err)
	}
	return lines, nil
}

// Get retrieves the cart line for a book. Returns ErrNotFound on a miss.
func (c *CartItems) Get(bookID int) (types.CartLine, error) {
	db, err := c.store.handle()
	if err != nil {
		return types.CartLine{}, err
	}

	var l types.CartLine
	row := db.QueryRow("SELECT "+cartColumns+" FROM "+types.CollectionCart+" WHERE book_id = ?", bookID)
	err = row.Scan(&l.BookID, &l.Title, &l.Author, &l.Price, &l.Image, &l.Quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.CartLine{}, types.ErrNotFound
		}
		return types.CartLine{}, fmt.Errorf("getting cart line %d: %w", bookID, err)
	}
	return l, nil
}

// Put inserts or replaces the line keyed by book id, last-write-wins.
func (c *CartItems) Put(line types.CartLine) error {
	db, err := c.store.handle()
	if err != nil {
		return err
	}

	_, err = db.Exec(
		"INSERT OR REPLACE INTO "+types.CollectionCart+` (book_id, title, author, price, image, quantity)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		line.BookID, line.Title, line.Author, line.Price, line.Image, line.Quantity,
	)
	if err != nil {
		return fmt.Errorf("putting cart line: %w", err)
	}
	return nil
}

// Delete removes the line for a book. Deleting an absent line is a no-op.
func (c *CartItems) Delete(bookID int) error {
	db, err := c.store.handle()
	if err != nil {
		return err
	}

	if _, err := db.Exec("DELETE FROM "+types.CollectionCart+" WHERE book_id = ?", bookID); err != nil {
		return fmt.Errorf("deleting cart line %d: %w", bookID, err)
	}
	return nil
}

// Clear removes every cart line.
func (c *CartItems) Clear() error {
	db, err := c.store.handle()
	if err != nil {
		return err
	}

	if _, err := db.Exec("DELETE FROM " + types.CollectionCart); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}
	return nil
}

// Count returns the number of cart lines (not the quantity sum).
func (c *CartItems) Count() (int, error) {
	db, err := c.store.handle()
	if err != nil {
		return 0, err
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + types.CollectionCart).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting cart lines: %w", err)
	}
	return count, nil
}
