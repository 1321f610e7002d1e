package types

// Review is a submitted book review. Reviews are append-only; they are
// never edited or deleted.
type Review struct {
	ReviewID  string `json:"reviewId"` // UUID v7, generated on submission.
	BookID    int    `json:"bookId"`
	Author    string `json:"author"` // Display name of the reviewer.
	UserEmail string `json:"userId"` // Account key of the reviewer.
	Rating    int    `json:"rating"` // 1-5.
	Text      string `json:"text"`
	Date      string `json:"date"` // ISO-8601 timestamp.
}

// MinRating and MaxRating bound the accepted review rating.
const (
	MinRating = 1
	MaxRating = 5
)

// ValidRating reports whether r is an accepted review rating.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
