// This file implements the reviews collection accessor. Reviews are
// append-only.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// Reviews provides typed access to submitted reviews.
type Reviews struct {
	store *Store
}

const reviewColumns = "review_id, book_id, author, user_email, rating, body, created_at"

// Add inserts a new review, generating a UUID when the id is empty.
func (r *Reviews) Add(review types.Review) (types.Review, error) {
	db, err := r.store.handle()
	if err != nil {
		return types.Review{}, err
	}

	if review.ReviewID == "" {
		review.ReviewID = generateUUID()
	}

	_, err = db.Exec(
		"INSERT INTO "+types.CollectionReviews+` (review_id, book_id, author, user_email, rating, body, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		review.ReviewID, review.BookID, review.Author, review.UserEmail,
		review.Rating, review.Text, review.Date,
	)
	if err != nil {
		return types.Review{}, fmt.Errorf("inserting review: %w", err)
	}
	return review, nil
}

// ForBook returns reviews for a book, newest first.
func (r *Reviews) ForBook(bookID int) ([]types.Review, error) {
	db, err := r.store.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT "+reviewColumns+" FROM "+types.CollectionReviews+" WHERE book_id = ? ORDER BY created_at DESC",
		bookID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying reviews for book %d: %w", bookID, err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

// ByUser returns reviews written by the given account, newest first.
func (r *Reviews) ByUser(email string) ([]types.Review, error) {
	db, err := r.store.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT "+reviewColumns+" FROM "+types.CollectionReviews+" WHERE user_email = ? ORDER BY created_at DESC",
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("querying reviews by %s: %w", email, err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

// Count returns the number of submitted reviews.
func (r *Reviews) Count() (int, error) {
	db, err := r.store.handle()
	if err != nil {
		return 0, err
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + types.CollectionReviews).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting reviews: %w", err)
	}
	return count, nil
}

func collectReviews(rows *sql.Rows) ([]types.Review, error) {
	reviews := []types.Review{}
	for rows.Next() {
		var rv types.Review
		if err := rows.Scan(&rv.ReviewID, &rv.BookID, &rv.Author, &rv.UserEmail,
			&rv.Rating, &rv.Text, &rv.Date); err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reviews: %w", err)
	}
	return reviews, nil
}
