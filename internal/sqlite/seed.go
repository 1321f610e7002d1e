// This file implements sample catalog seeding on store open.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// sampleBooks is the canonical seed catalog, inserted exactly once on
// first open of an empty database.
var sampleBooks = []types.Book{
	{
		ID:              1,
		Title:           "The Great Gatsby",
		Author:          "F. Scott Fitzgerald",
		Category:        "Fiction",
		Price:           12.99,
		Description:     "A story of the fabulously wealthy Jay Gatsby and his love for the beautiful Daisy Buchanan.",
		Image:           "https://m.media-amazon.com/images/I/71FTb9X6wsL._AC_UF1000,1000_QL80_.jpg",
		Rating:          4.5,
		ReviewCount:     120,
		PublicationDate: "2023-01-15",
	},
	{
		ID:              2,
		Title:           "To Kill a Mockingbird",
		Author:          "Harper Lee",
		Category:        "Fiction",
		Price:           14.99,
		Description:     "The story of racial injustice and the loss of innocence in the American South.",
		Image:           "https://m.media-amazon.com/images/I/71FxgtFKcQL._AC_UF1000,1000_QL80_.jpg",
		Rating:          4.8,
		ReviewCount:     200,
		PublicationDate: "2023-02-20",
	},
	{
		ID:              3,
		Title:           "1984",
		Author:          "George Orwell",
		Category:        "Science Fiction",
		Price:           11.99,
		Description:     "A dystopian social science fiction novel and cautionary tale.",
		Image:           "https://m.media-amazon.com/images/I/81WgC9+ZJ+L._AC_UF1000,1000_QL80_.jpg",
		Rating:          4.7,
		ReviewCount:     180,
		PublicationDate: "2023-03-10",
	},
	{
		ID:              4,
		Title:           "Pride and Prejudice",
		Author:          "Jane Austen",
		Category:        "Romance",
		Price:           10.99,
		Description:     "A romantic novel of manners.",
		Image:           "https://m.media-amazon.com/images/I/71Q1tPupKjL._AC_UF1000,1000_QL80_.jpg",
		Rating:          4.6,
		ReviewCount:     150,
		PublicationDate: "2023-04-05",
	},
	{
		ID:              5,
		Title:           "The Hobbit",
		Author:          "J.R.R. Tolkien",
		Category:        "Fantasy",
		Price:           15.99,
		Description:     "The adventure of Bilbo Baggins, a hobbit who embarks on a quest.",
		Image:           "https://m.media-amazon.com/images/I/710+HcoP38L._AC_UF1000,1000_QL80_.jpg",
		Rating:          4.9,
		ReviewCount:     250,
		PublicationDate: "2023-05-12",
	},
}

// seedSampleBooks inserts the sample catalog if the books table is
// empty. The emptiness check is COUNT-based, not a sentinel flag, so a
// catalog manually emptied by the user is re-seeded on the next open;
// this is accepted behavior.
func seedSampleBooks(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + types.CollectionBooks).Scan(&count); err != nil {
		return fmt.Errorf("counting books: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, b := range sampleBooks {
		_, err = tx.Exec(
			"INSERT INTO "+types.CollectionBooks+` (id, title, author, category, price, description, image, rating, review_count, publication_date)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			b.ID, b.Title, b.Author, b.Category, b.Price, b.Description, b.Image, b.Rating, b.ReviewCount, b.PublicationDate,
		)
		if err != nil {
			return fmt.Errorf("seeding book %d: %w", b.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	return nil
}
