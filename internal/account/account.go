// Package account implements the signed-in surface around an account:
// profile and preference updates, the wishlist, review submission, and
// the newsletter and contact forms.
package account

import (
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/bookshop/internal/auth"
	"github.com/mesh-intelligence/bookshop/internal/sqlite"
	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// Service bundles the account-facing operations.
type Service struct {
	users    *sqlite.Users
	wishlist *sqlite.Wishlist
	reviews  *sqlite.Reviews
	messages *sqlite.Messages
	books    *sqlite.Books
	auth     *auth.Service

	// now is swappable for deterministic timestamps in tests.
	now func() time.Time
}

// NewService creates an account service over the given store and the
// auth service that owns the session.
func NewService(store *sqlite.Store, authSvc *auth.Service) *Service {
	return &Service{
		users:    store.Users(),
		wishlist: store.Wishlist(),
		reviews:  store.Reviews(),
		messages: store.Messages(),
		books:    store.Books(),
		auth:     authSvc,
		now:      time.Now,
	}
}

// ProfileUpdate carries the editable profile fields. Email is the
// account key and cannot be changed.
type ProfileUpdate struct {
	Name    string
	Phone   string
	Address string
}

// UpdateProfile applies a profile update to the session user and
// refreshes the session record. Returns ErrNotLoggedIn without a
// session.
func (s *Service) UpdateProfile(update ProfileUpdate) (types.User, error) {
	user, err := s.sessionUser()
	if err != nil {
		return types.User{}, err
	}
	if strings.TrimSpace(update.Name) == "" {
		return types.User{}, fmt.Errorf("name must not be blank: %w", types.ErrValidation)
	}

	user.Name = update.Name
	user.Phone = update.Phone
	user.Address = update.Address
	return user, s.saveUser(user)
}

// Preferences carries the notification preference flags.
type Preferences struct {
	Newsletter  bool
	Promotions  bool
	NewReleases bool
}

// UpdatePreferences applies notification preferences to the session
// user and refreshes the session record.
func (s *Service) UpdatePreferences(prefs Preferences) (types.User, error) {
	user, err := s.sessionUser()
	if err != nil {
		return types.User{}, err
	}

	user.Newsletter = prefs.Newsletter
	user.Promotions = prefs.Promotions
	user.NewReleases = prefs.NewReleases
	return user, s.saveUser(user)
}

// AddToWishlist saves a book with its current display fields. Re-adding
// a saved book overwrites the entry; the wishlist never holds
// duplicates.
func (s *Service) AddToWishlist(bookID int) (types.WishlistEntry, error) {
	book, err := s.books.Get(bookID)
	if err != nil {
		return types.WishlistEntry{}, fmt.Errorf("saving book %d: %w", bookID, err)
	}

	entry := types.WishlistEntry{
		BookID:  book.ID,
		Title:   book.Title,
		Author:  book.Author,
		Price:   book.Price,
		Image:   book.Image,
		AddedAt: s.now().UTC().Format(time.RFC3339),
	}
	if err := s.wishlist.Put(entry); err != nil {
		return types.WishlistEntry{}, err
	}
	return entry, nil
}

// RemoveFromWishlist removes a saved book. Removing an absent book is a
// no-op.
func (s *Service) RemoveFromWishlist(bookID int) error {
	return s.wishlist.Delete(bookID)
}

// WishlistEntries returns the saved books in book id order.
func (s *Service) WishlistEntries() ([]types.WishlistEntry, error) {
	return s.wishlist.All()
}

// AddReview submits a review of a book as the session user. Requires a
// session (ErrNotLoggedIn), a known book, a rating in 1-5, and a
// non-empty body.
func (s *Service) AddReview(bookID, rating int, text string) (types.Review, error) {
	user, err := s.sessionUser()
	if err != nil {
		return types.Review{}, err
	}
	if _, err := s.books.Get(bookID); err != nil {
		return types.Review{}, fmt.Errorf("reviewing book %d: %w", bookID, err)
	}
	if !types.ValidRating(rating) {
		return types.Review{}, fmt.Errorf("rating must be between %d and %d: %w",
			types.MinRating, types.MaxRating, types.ErrValidation)
	}
	if strings.TrimSpace(text) == "" {
		return types.Review{}, fmt.Errorf("review text must not be blank: %w", types.ErrValidation)
	}

	review := types.Review{
		BookID:    bookID,
		Author:    user.Name,
		UserEmail: user.Email,
		Rating:    rating,
		Text:      text,
		Date:      s.now().UTC().Format(time.RFC3339),
	}
	return s.reviews.Add(review)
}

// ReviewsForBook returns the reviews of a book, newest first.
func (s *Service) ReviewsForBook(bookID int) ([]types.Review, error) {
	return s.reviews.ForBook(bookID)
}

// ReviewsBy returns the reviews written by an account, newest first.
func (s *Service) ReviewsBy(email string) ([]types.Review, error) {
	return s.reviews.ByUser(email)
}

// SubscribeNewsletter records a newsletter signup. No session needed.
func (s *Service) SubscribeNewsletter(email string) (types.NewsletterSignup, error) {
	if !validEmail(email) {
		return types.NewsletterSignup{}, fmt.Errorf("malformed email %q: %w", email, types.ErrValidation)
	}

	signup := types.NewsletterSignup{
		Email: email,
		Date:  s.now().UTC().Format(time.RFC3339),
	}
	return s.messages.AddSignup(signup)
}

// SendMessage records a contact form submission. No session needed.
func (s *Service) SendMessage(name, email, subject, message string) (types.ContactMessage, error) {
	if strings.TrimSpace(name) == "" {
		return types.ContactMessage{}, fmt.Errorf("name must not be blank: %w", types.ErrValidation)
	}
	if !validEmail(email) {
		return types.ContactMessage{}, fmt.Errorf("malformed email %q: %w", email, types.ErrValidation)
	}
	if strings.TrimSpace(subject) == "" {
		return types.ContactMessage{}, fmt.Errorf("subject must not be blank: %w", types.ErrValidation)
	}
	if strings.TrimSpace(message) == "" {
		return types.ContactMessage{}, fmt.Errorf("message must not be blank: %w", types.ErrValidation)
	}

	msg := types.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
		Date:    s.now().UTC().Format(time.RFC3339),
	}
	return s.messages.AddContact(msg)
}

// sessionUser returns the session user or ErrNotLoggedIn.
func (s *Service) sessionUser() (types.User, error) {
	user, ok, err := s.auth.CurrentUser()
	if err != nil {
		return types.User{}, err
	}
	if !ok {
		return types.User{}, types.ErrNotLoggedIn
	}
	return user, nil
}

// saveUser persists the user record and keeps the session in step.
func (s *Service) saveUser(user types.User) error {
	if err := s.users.Put(user); err != nil {
		return err
	}
	return s.auth.RefreshSession(user)
}

// validEmail performs the same minimal shape check registration uses.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".") && !strings.ContainsAny(email, " \t")
}
