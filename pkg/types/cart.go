package types

// CartLine is one cart entry, keyed by the book ID so a cart holds at
// most one line per book. Display fields are denormalized from the book
// at the time of the first add.
type CartLine struct {
	BookID   int     `json:"id"`
	Title    string  `json:"title"`
	Author   string  `json:"author"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"` // Always >= 1 once persisted.
}

// LineTotal returns the price of this line, price times quantity.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}

// WishlistEntry is a saved book, keyed by the book ID; at most one entry
// per book.
type WishlistEntry struct {
	BookID  int     `json:"id"`
	Title   string  `json:"title"`
	Author  string  `json:"author"`
	Price   float64 `json:"price"`
	Image   string  `json:"image"`
	AddedAt string  `json:"date"` // ISO-8601 timestamp.
}
