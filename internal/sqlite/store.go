// Package sqlite implements the local storage backend for the bookshop.
// One SQLite database holds every record collection plus a small flat
// key-value table for the session record.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// Store owns the single database handle. It is opened once at startup
// and reused; services receive the handle by injection rather than
// opening their own.
type Store struct {
	mu     sync.RWMutex
	opened bool
	config types.Config
	db     *sql.DB
}

// NewStore creates a new Store instance. The store is not opened;
// call Open with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Open initializes the store with the given configuration. Creates
// DataDir if it does not exist, applies the schema additively, and seeds
// the sample catalog when the books collection is empty.
// Returns ErrAlreadyOpen if already open and ErrStorageUnavailable when
// the database cannot be created or opened.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opened {
		return types.ErrAlreadyOpen
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("%w: creating data dir: %v", types.ErrStorageUnavailable, err)
	}

	dbPath := filepath.Join(dataDir, "bookshop.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("%w: opening database: %v", types.ErrStorageUnavailable, err)
	}

	// Schema creation is additive: every statement is IF NOT EXISTS, so
	// re-opening an existing database never destroys data.
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("%w: applying schema: %v", types.ErrStorageUnavailable, err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("%w: creating index: %v", types.ErrStorageUnavailable, err)
		}
	}

	if err := seedSampleBooks(db); err != nil {
		db.Close()
		return fmt.Errorf("seeding catalog: %w", err)
	}

	s.db = db
	s.config = config
	s.opened = true
	return nil
}

// Close releases the database handle. After Close, all operations return
// ErrStoreClosed. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened {
		return nil // idempotent
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}
	s.opened = false
	return nil
}

// handle returns the live database handle, or ErrStoreClosed.
func (s *Store) handle() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.opened {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}

// Collection accessors. Each accessor is a thin typed view over one
// table; all share the store's single handle.

// Books returns the catalog accessor.
func (s *Store) Books() *Books { return &Books{store: s} }

// Users returns the account accessor.
func (s *Store) Users() *Users { return &Users{store: s} }

// Cart returns the cart accessor.
func (s *Store) Cart() *CartItems { return &CartItems{store: s} }

// Wishlist returns the wishlist accessor.
func (s *Store) Wishlist() *Wishlist { return &Wishlist{store: s} }

// Orders returns the order accessor.
func (s *Store) Orders() *Orders { return &Orders{store: s} }

// Reviews returns the review accessor.
func (s *Store) Reviews() *Reviews { return &Reviews{store: s} }

// Messages returns the newsletter/contact accessor.
func (s *Store) Messages() *Messages { return &Messages{store: s} }

// KV returns the flat key-value accessor.
func (s *Store) KV() *KV { return &KV{store: s} }

// generateUUID generates a new UUID v7 for entity IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
