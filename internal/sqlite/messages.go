// This file implements the newsletter and contacts collection accessors.
// Both collections are append-only.
package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// Messages provides typed access to newsletter signups and contact
// messages.
type Messages struct {
	store *Store
}

// AddSignup inserts a newsletter signup record, generating a UUID when
// the id is empty.
func (m *Messages) AddSignup(signup types.NewsletterSignup) (types.NewsletterSignup, error) {
	db, err := m.store.handle()
	if err != nil {
		return types.NewsletterSignup{}, err
	}

	if signup.SignupID == "" {
		signup.SignupID = generateUUID()
	}

	_, err = db.Exec(
		"INSERT INTO "+types.CollectionNewsletter+" (signup_id, email, created_at) VALUES (?, ?, ?)",
		signup.SignupID, signup.Email, signup.Date,
	)
	if err != nil {
		return types.NewsletterSignup{}, fmt.Errorf("inserting newsletter signup: %w", err)
	}
	return signup, nil
}

// Signups returns every newsletter signup, oldest first.
func (m *Messages) Signups() ([]types.NewsletterSignup, error) {
	db, err := m.store.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT signup_id, email, created_at FROM " + types.CollectionNewsletter + " ORDER BY created_at ASC")
	if err != nil {
		return nil, fmt.Errorf("querying newsletter signups: %w", err)
	}
	defer rows.Close()

	signups := []types.NewsletterSignup{}
	for rows.Next() {
		var s types.NewsletterSignup
		if err := rows.Scan(&s.SignupID, &s.Email, &s.Date); err != nil {
			return nil, fmt.Errorf("scanning newsletter signup: %w", err)
		}
		signups = append(signups, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating newsletter signups: %w", err)
	}
	return signups, nil
}

// AddContact inserts a contact message record, generating a UUID when
// the id is empty.
func (m *Messages) AddContact(msg types.ContactMessage) (types.ContactMessage, error) {
	db, err := m.store.handle()
	if err != nil {
		return types.ContactMessage{}, err
	}

	if msg.MessageID == "" {
		msg.MessageID = generateUUID()
	}

	_, err = db.Exec(
		"INSERT INTO "+types.CollectionContacts+" (contact_id, name, email, subject, message, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		msg.MessageID, msg.Name, msg.Email, msg.Subject, msg.Message, msg.Date,
	)
	if err != nil {
		return types.ContactMessage{}, fmt.Errorf("inserting contact message: %w", err)
	}
	return msg, nil
}

// Contacts returns every contact message, oldest first.
func (m *Messages) Contacts() ([]types.ContactMessage, error) {
	db, err := m.store.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT contact_id, name, email, subject, message, created_at FROM " + types.CollectionContacts + " ORDER BY created_at ASC")
	if err != nil {
		return nil, fmt.Errorf("querying contact messages: %w", err)
	}
	defer rows.Close()

	msgs := []types.ContactMessage{}
	for rows.Next() {
		var c types.ContactMessage
		if err := rows.Scan(&c.MessageID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Date); err != nil {
			return nil, fmt.Errorf("scanning contact message: %w", err)
		}
		msgs = append(msgs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contact messages: %w", err)
	}
	return msgs, nil
}
