// This file implements the users collection accessor.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// Users provides typed access to registered accounts, keyed by email.
type Users struct {
	store *Store
}

const userColumns = "email, user_id, name, password, phone, address, newsletter, promotions, new_releases"

// Get retrieves a user by email. Returns ErrNotFound on a miss.
func (u *Users) Get(email string) (types.User, error) {
	db, err := u.store.handle()
	if err != nil {
		return types.User{}, err
	}

	row := db.QueryRow("SELECT "+userColumns+" FROM "+types.CollectionUsers+" WHERE email = ?", email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, types.ErrNotFound
		}
		return types.User{}, fmt.Errorf("getting user %s: %w", email, err)
	}
	return user, nil
}

// Add inserts a new user, generating a UUID when the ID is empty.
// Returns ErrDuplicateKey when the email is already registered; this is
// the unique-email enforcement point.
func (u *Users) Add(user types.User) (types.User, error) {
	db, err := u.store.handle()
	if err != nil {
		return types.User{}, err
	}

	var exists int
	err = db.QueryRow("SELECT 1 FROM "+types.CollectionUsers+" WHERE email = ?", user.Email).Scan(&exists)
	if err == nil {
		return types.User{}, types.ErrDuplicateKey
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return types.User{}, fmt.Errorf("checking user existence: %w", err)
	}

	if user.ID == "" {
		user.ID = generateUUID()
	}

	_, err = db.Exec(
		"INSERT INTO "+types.CollectionUsers+` (email, user_id, name, password, phone, address, newsletter, promotions, new_releases)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.Email, user.ID, user.Name, user.Password, user.Phone, user.Address,
		boolToInt(user.Newsletter), boolToInt(user.Promotions), boolToInt(user.NewReleases),
	)
	if err != nil {
		return types.User{}, fmt.Errorf("inserting user: %w", err)
	}
	return user, nil
}

// Put inserts or replaces a user keyed by email, last-write-wins.
func (u *Users) Put(user types.User) error {
	db, err := u.store.handle()
	if err != nil {
		return err
	}

	_, err = db.Exec(
		"INSERT OR REPLACE INTO "+types.CollectionUsers+` (email, user_id, name, password, phone, address, newsletter, promotions, new_releases)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.Email, user.ID, user.Name, user.Password, user.Phone, user.Address,
		boolToInt(user.Newsletter), boolToInt(user.Promotions), boolToInt(user.NewReleases),
	)
	if err != nil {
		return fmt.Errorf("putting user: %w", err)
	}
	return nil
}

// All returns every registered user in email order.
func (u *Users) All() ([]types.User, error) {
	db, err := u.store.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT " + userColumns + " FROM " + types.CollectionUsers + " ORDER BY email ASC")
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	users := []types.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return users, nil
}

// Count returns the number of registered users.
func (u *Users) Count() (int, error) {
	db, err := u.store.handle()
	if err != nil {
		return 0, err
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + types.CollectionUsers).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return count, nil
}

func scanUser(row rowScanner) (types.User, error) {
	var u types.User
	var newsletter, promotions, newReleases int
	err := row.Scan(&u.Email, &u.ID, &u.Name, &u.Password, &u.Phone, &u.Address,
		&newsletter, &promotions, &newReleases)
	if err != nil {
		return types.User{}, err
	}
	u.Newsletter = newsletter != 0
	u.Promotions = promotions != 0
	u.NewReleases = newReleases != 0
	return u, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
