package types

// Book is a catalog item. Books are created by seed population and are
// read-only thereafter; there is no admin mutation path.
type Book struct {
	ID              int     `json:"id"` // Unique catalog identifier.
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"` // Non-negative, displayed at 2dp.
	Description     string  `json:"description"`
	Image           string  `json:"image"`           // Cover image URL.
	Rating          float64 `json:"rating"`          // Average rating, 0.0-5.0.
	ReviewCount     int     `json:"reviews"`         // Seeded review count.
	PublicationDate string  `json:"publicationDate"` // ISO-8601 date string.
}
