// This file implements the wishlist collection accessor.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// Wishlist provides typed access to saved books, keyed by book id.
type Wishlist struct {
	store *Store
}

const wishlistColumns = "book_id, title, author, price, image, added_at"

// All returns every wishlist entry ordered by book id.
func (w *Wishlist) All() ([]types.WishlistEntry, error) {
	db, err := w.store.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT " + wishlistColumns + " FROM " + types.CollectionWishlist + " ORDER BY book_id ASC")
	if err != nil {
		return nil, fmt.Errorf("querying wishlist: %w", err)
	}
	defer rows.Close()

	entries := []types.WishlistEntry{}
	for rows.Next() {
		var e types.WishlistEntry
		if err := rows.Scan(&e.BookID, &e.Title, &e.Author, &e.Price, &e.Image, &e.AddedAt); err != nil {
			return nil, fmt.Errorf("scanning wishlist entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating wishlist: %w", err)
	}
	return entries, nil
}

// Get retrieves the entry for a book. Returns ErrNotFound on a miss.
func (w *Wishlist) Get(bookID int) (types.WishlistEntry, error) {
	db, err := w.store.handle()
	if err != nil {
		return types.WishlistEntry{}, err
	}

	var e types.WishlistEntry
	row := db.QueryRow("SELECT "+wishlistColumns+" FROM "+types.CollectionWishlist+" WHERE book_id = ?", bookID)
	err = row.Scan(&e.BookID, &e.Title, &e.Author, &e.Price, &e.Image, &e.AddedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.WishlistEntry{}, types.ErrNotFound
		}
		return types.WishlistEntry{}, fmt.Errorf("getting wishlist entry %d: %w", bookID, err)
	}
	return e, nil
}

// Put inserts or replaces the entry keyed by book id. Re-adding a book
// already on the wishlist simply overwrites the entry.
func (w *Wishlist) Put(entry types.WishlistEntry) error {
	db, err := w.store.handle()
	if err != nil {
		return err
	}

	_, err = db.Exec(
		"INSERT OR REPLACE INTO "+types.CollectionWishlist+` (book_id, title, author, price, image, added_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.BookID, entry.Title, entry.Author, entry.Price, entry.Image, entry.AddedAt,
	)
	if err != nil {
		return fmt.Errorf("putting wishlist entry: %w", err)
	}
	return nil
}

// Delete removes the entry for a book. Deleting an absent entry is a no-op.
func (w *Wishlist) Delete(bookID int) error {
	db, err := w.store.handle()
	if err != nil {
		return err
	}

	if _, err := db.Exec("DELETE FROM "+types.CollectionWishlist+" WHERE book_id = ?", bookID); err != nil {
		return fmt.Errorf("deleting wishlist entry %d: %w", bookID, err)
	}
	return nil
}

// Count returns the number of wishlist entries.
func (w *Wishlist) Count() (int, error) {
	db, err := w.store.handle()
	if err != nil {
		return 0, err
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + types.CollectionWishlist).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting wishlist: %w", err)
	}
	return count, nil
}
