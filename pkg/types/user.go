package types

// User is a registered account. Users are keyed by email, which is the
// value the unique constraint and the login path operate on.
//
// Password is stored and compared in clear text. This mirrors the system
// being modeled and is a documented non-goal to secure; do not reuse this
// type anywhere passwords matter.
type User struct {
	ID       string `json:"id"`    // UUID, generated at registration.
	Email    string `json:"email"` // Unique account key.
	Name     string `json:"name"`
	Password string `json:"password,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`

	// Notification preference flags.
	Newsletter  bool `json:"newsletter"`
	Promotions  bool `json:"promotions"`
	NewReleases bool `json:"newReleases"`
}
