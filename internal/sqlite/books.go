// This file implements the books collection accessor.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// Books provides typed access to the catalog collection. Books are
// seeded on first open and read-only thereafter, so the accessor has no
// Put or Delete.
type Books struct {
	store *Store
}

const bookColumns = "id, title, author, category, price, description, image, rating, review_count, publication_date"

// All returns every book ordered by id ascending. The id order is the
// deterministic base order that catalog sorting tie-breaks against.
func (b *Books) All() ([]types.Book, error) {
	db, err := b.store.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT " + bookColumns + " FROM " + types.CollectionBooks + " ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("querying books: %w", err)
	}
	defer rows.Close()

	books := []types.Book{}
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating books: %w", err)
	}
	return books, nil
}

// Get retrieves a book by id. Returns ErrNotFound on a miss.
func (b *Books) Get(id int) (types.Book, error) {
	db, err := b.store.handle()
	if err != nil {
		return types.Book{}, err
	}

	row := db.QueryRow("SELECT "+bookColumns+" FROM "+types.CollectionBooks+" WHERE id = ?", id)
	book, err := scanBook(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Book{}, types.ErrNotFound
		}
		return types.Book{}, fmt.Errorf("getting book %d: %w", id, err)
	}
	return book, nil
}

// Count returns the number of books in the catalog.
func (b *Books) Count() (int, error) {
	db, err := b.store.handle()
	if err != nil {
		return 0, err
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + types.CollectionBooks).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting books: %w", err)
	}
	return count, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (types.Book, error) {
	var b types.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Category, &b.Price,
		&b.Description, &b.Image, &b.Rating, &b.ReviewCount, &b.PublicationDate)
	return b, err
}
