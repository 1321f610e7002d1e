package sqlite

import "github.com/mesh-intelligence/bookshop/pkg/types"

// Schema DDL for all collections, keyed by the shared collection name
// constants so the DDL and the accessor queries cannot drift apart.
// Every statement is IF NOT EXISTS so that opening a versioned database
// only ever adds missing tables.
const (
	createBooks = `CREATE TABLE IF NOT EXISTS ` + types.CollectionBooks + ` (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    author TEXT NOT NULL,
    category TEXT NOT NULL,
    price REAL NOT NULL,
    description TEXT NOT NULL,
    image TEXT NOT NULL,
    rating REAL NOT NULL DEFAULT 0,
    review_count INTEGER NOT NULL DEFAULT 0,
    publication_date TEXT NOT NULL
);`

	createUsers = `CREATE TABLE IF NOT EXISTS ` + types.CollectionUsers + ` (
    email TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    name TEXT NOT NULL,
    password TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    newsletter INTEGER NOT NULL DEFAULT 0,
    promotions INTEGER NOT NULL DEFAULT 0,
    new_releases INTEGER NOT NULL DEFAULT 0
);`

	createCartItems = `CREATE TABLE IF NOT EXISTS ` + types.CollectionCart + ` (
    book_id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    author TEXT NOT NULL,
    price REAL NOT NULL,
    image TEXT NOT NULL,
    quantity INTEGER NOT NULL
);`

	createWishlist = `CREATE TABLE IF NOT EXISTS ` + types.CollectionWishlist + ` (
    book_id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    author TEXT NOT NULL,
    price REAL NOT NULL,
    image TEXT NOT NULL,
    added_at TEXT NOT NULL
);`

	createOrders = `CREATE TABLE IF NOT EXISTS ` + types.CollectionOrders + ` (
    order_id TEXT PRIMARY KEY,
    user_email TEXT NOT NULL DEFAULT '',
    items TEXT NOT NULL,
    shipping TEXT NOT NULL,
    payment TEXT NOT NULL,
    subtotal REAL NOT NULL,
    shipping_cost REAL NOT NULL,
    total REAL NOT NULL,
    status TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createReviews = `CREATE TABLE IF NOT EXISTS ` + types.CollectionReviews + ` (
    review_id TEXT PRIMARY KEY,
    book_id INTEGER NOT NULL,
    author TEXT NOT NULL,
    user_email TEXT NOT NULL,
    rating INTEGER NOT NULL,
    body TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createNewsletter = `CREATE TABLE IF NOT EXISTS ` + types.CollectionNewsletter + ` (
    signup_id TEXT PRIMARY KEY,
    email TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createContacts = `CREATE TABLE IF NOT EXISTS ` + types.CollectionContacts + ` (
    contact_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    subject TEXT NOT NULL,
    message TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createKV = `CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`
)

// Index DDL for common lookups.
const (
	idxBooksCategory = `CREATE INDEX IF NOT EXISTS idx_books_category ON ` + types.CollectionBooks + `(category);`
	idxBooksAuthor   = `CREATE INDEX IF NOT EXISTS idx_books_author ON ` + types.CollectionBooks + `(author);`
	idxBooksPrice    = `CREATE INDEX IF NOT EXISTS idx_books_price ON ` + types.CollectionBooks + `(price);`
	idxBooksDate     = `CREATE INDEX IF NOT EXISTS idx_books_date ON ` + types.CollectionBooks + `(publication_date);`
	idxOrdersUser    = `CREATE INDEX IF NOT EXISTS idx_orders_user ON ` + types.CollectionOrders + `(user_email);`
	idxOrdersDate    = `CREATE INDEX IF NOT EXISTS idx_orders_date ON ` + types.CollectionOrders + `(created_at);`
	idxReviewsBook   = `CREATE INDEX IF NOT EXISTS idx_reviews_book ON ` + types.CollectionReviews + `(book_id);`
	idxReviewsUser   = `CREATE INDEX IF NOT EXISTS idx_reviews_user ON ` + types.CollectionReviews + `(user_email);`
	idxReviewsDate   = `CREATE INDEX IF NOT EXISTS idx_reviews_date ON ` + types.CollectionReviews + `(created_at);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createBooks,
	createUsers,
	createCartItems,
	createWishlist,
	createOrders,
	createReviews,
	createNewsletter,
	createContacts,
	createKV,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxBooksCategory,
	idxBooksAuthor,
	idxBooksPrice,
	idxBooksDate,
	idxOrdersUser,
	idxOrdersDate,
	idxReviewsBook,
	idxReviewsUser,
	idxReviewsDate,
}
