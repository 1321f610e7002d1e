// This file implements the flat key-value accessor. The kv table holds
// single-valued records with last-write-wins semantics; the only
// well-known key is the session record.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
)

// KV provides flat key-value access.
type KV struct {
	store *Store
}

// Put inserts or replaces the value for a key, last-write-wins.
func (k *KV) Put(key, value string) error {
	db, err := k.store.handle()
	if err != nil {
		return err
	}

	if _, err := db.Exec("INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)", key, value); err != nil {
		return fmt.Errorf("putting kv %s: %w", key, err)
	}
	return nil
}

// Get returns the value for a key and whether it was present. An absent
// key is not an error; callers treat it as an anonymous state.
func (k *KV) Get(key string) (string, bool, error) {
	db, err := k.store.handle()
	if err != nil {
		return "", false, err
	}

	var value string
	err = db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("getting kv %s: %w", key, err)
	}
	return value, true, nil
}

// Delete removes a key. Deleting an absent key is a no-op.
func (k *KV) Delete(key string) error {
	db, err := k.store.handle()
	if err != nil {
		return err
	}

	if _, err := db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting kv %s: %w", key, err)
	}
	return nil
}
