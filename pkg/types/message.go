package types

// NewsletterSignup is an append-only newsletter subscription record.
type NewsletterSignup struct {
	SignupID string `json:"signupId"` // UUID v7.
	Email    string `json:"email"`
	Date     string `json:"date"` // ISO-8601 timestamp.
}

// ContactMessage is an append-only contact form submission.
type ContactMessage struct {
	MessageID string `json:"messageId"` // UUID v7.
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Date      string `json:"date"` // ISO-8601 timestamp.
}
