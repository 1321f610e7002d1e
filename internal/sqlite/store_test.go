package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// setupStore opens a store in a fresh temp directory and registers
// cleanup.
func setupStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore()
	err := store.Open(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestOpen(t *testing.T) {
	t.Run("creates data dir and seeds catalog", func(t *testing.T) {
		store := setupStore(t)

		count, err := store.Books().Count()
		require.NoError(t, err)
		assert.Equal(t, 5, count)
	})

	t.Run("second open returns ErrAlreadyOpen", func(t *testing.T) {
		store := setupStore(t)

		err := store.Open(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
		assert.ErrorIs(t, err, types.ErrAlreadyOpen)
	})

	t.Run("invalid backend rejected", func(t *testing.T) {
		store := NewStore()
		err := store.Open(types.Config{Backend: "postgres", DataDir: t.TempDir()})
		assert.Error(t, err)
	})

	t.Run("seeding happens once", func(t *testing.T) {
		dataDir := t.TempDir()
		config := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}

		store := NewStore()
		require.NoError(t, store.Open(config))
		require.NoError(t, store.Close())

		store = NewStore()
		require.NoError(t, store.Open(config))
		defer store.Close()

		count, err := store.Books().Count()
		require.NoError(t, err)
		assert.Equal(t, 5, count)
	})
}

func TestClose(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		store := setupStore(t)
		require.NoError(t, store.Close())
		assert.NoError(t, store.Close())
	})

	t.Run("operations after close return ErrStoreClosed", func(t *testing.T) {
		store := setupStore(t)
		require.NoError(t, store.Close())

		_, err := store.Books().All()
		assert.ErrorIs(t, err, types.ErrStoreClosed)

		_, _, err = store.KV().Get("anything")
		assert.ErrorIs(t, err, types.ErrStoreClosed)
	})

	t.Run("store can be reopened after close", func(t *testing.T) {
		dataDir := t.TempDir()
		config := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}

		store := NewStore()
		require.NoError(t, store.Open(config))
		require.NoError(t, store.Close())
		require.NoError(t, store.Open(config))
		defer store.Close()

		count, err := store.Books().Count()
		require.NoError(t, err)
		assert.Equal(t, 5, count)
	})
}

func TestBooks(t *testing.T) {
	store := setupStore(t)

	t.Run("All returns seed in id order", func(t *testing.T) {
		books, err := store.Books().All()
		require.NoError(t, err)
		require.Len(t, books, 5)
		assert.Equal(t, 1, books[0].ID)
		assert.Equal(t, "The Great Gatsby", books[0].Title)
		assert.Equal(t, 5, books[4].ID)
	})

	t.Run("Get hit and miss", func(t *testing.T) {
		book, err := store.Books().Get(3)
		require.NoError(t, err)
		assert.Equal(t, "1984", book.Title)

		_, err = store.Books().Get(42)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestUsers(t *testing.T) {
	store := setupStore(t)

	t.Run("Add generates id and returns stored record", func(t *testing.T) {
		user, err := store.Users().Add(types.User{Email: "a@x.com", Name: "Alice", Password: "secret1"})
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)

		stored, err := store.Users().Get("a@x.com")
		require.NoError(t, err)
		assert.Equal(t, user, stored)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := store.Users().Add(types.User{Email: "a@x.com", Name: "Clone"})
		assert.ErrorIs(t, err, types.ErrDuplicateKey)
	})

	t.Run("Put replaces and roundtrips flags", func(t *testing.T) {
		user, err := store.Users().Get("a@x.com")
		require.NoError(t, err)

		user.Newsletter = true
		user.NewReleases = true
		require.NoError(t, store.Users().Put(user))

		stored, err := store.Users().Get("a@x.com")
		require.NoError(t, err)
		assert.True(t, stored.Newsletter)
		assert.False(t, stored.Promotions)
		assert.True(t, stored.NewReleases)
	})

	t.Run("Get miss", func(t *testing.T) {
		_, err := store.Users().Get("nobody@x.com")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestCartItems(t *testing.T) {
	store := setupStore(t)
	cart := store.Cart()

	line := types.CartLine{BookID: 1, Title: "The Great Gatsby", Price: 12.99, Quantity: 2}
	require.NoError(t, cart.Put(line))

	t.Run("Put is keyed by book id", func(t *testing.T) {
		line.Quantity = 3
		require.NoError(t, cart.Put(line))

		count, err := cart.Count()
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		stored, err := cart.Get(1)
		require.NoError(t, err)
		assert.Equal(t, 3, stored.Quantity)
	})

	t.Run("Delete absent line is a no-op", func(t *testing.T) {
		assert.NoError(t, cart.Delete(99))
	})

	t.Run("Clear empties the table", func(t *testing.T) {
		require.NoError(t, cart.Clear())

		lines, err := cart.All()
		require.NoError(t, err)
		assert.Empty(t, lines)
	})
}

func TestOrders(t *testing.T) {
	store := setupStore(t)

	order := types.Order{
		UserEmail: "a@x.com",
		Items: []types.CartLine{
			{BookID: 1, Title: "The Great Gatsby", Price: 12.99, Quantity: 1},
		},
		Shipping:     types.ShippingInfo{FullName: "Alice", Email: "a@x.com", Address: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "USA"},
		Payment:      types.PaymentInfo{CardName: "Alice", CardNumber: "4111111111111111", ExpiryDate: "12/27", CVV: "123"},
		Subtotal:     12.99,
		ShippingCost: 5.00,
		Total:        17.99,
		Status:       types.OrderStatusProcessing,
		Date:         "2026-08-30T10:00:00Z",
	}

	t.Run("Add generates id and roundtrips JSON columns", func(t *testing.T) {
		stored, err := store.Orders().Add(order)
		require.NoError(t, err)
		assert.NotEmpty(t, stored.OrderID)

		got, err := store.Orders().Get(stored.OrderID)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		stored, err := store.Orders().Add(order)
		require.NoError(t, err)

		dup := order
		dup.OrderID = stored.OrderID
		_, err = store.Orders().Add(dup)
		assert.ErrorIs(t, err, types.ErrDuplicateKey)
	})

	t.Run("ForUser filters by owner", func(t *testing.T) {
		orders, err := store.Orders().ForUser("a@x.com")
		require.NoError(t, err)
		assert.Len(t, orders, 2)

		orders, err = store.Orders().ForUser("b@x.com")
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestKV(t *testing.T) {
	store := setupStore(t)
	kv := store.KV()

	t.Run("absent key is not an error", func(t *testing.T) {
		_, ok, err := kv.Get("missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("put get delete roundtrip", func(t *testing.T) {
		require.NoError(t, kv.Put(types.SessionKey, `{"email":"a@x.com"}`))

		value, ok, err := kv.Get(types.SessionKey)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, `{"email":"a@x.com"}`, value)

		// Last write wins.
		require.NoError(t, kv.Put(types.SessionKey, `{"email":"b@x.com"}`))
		value, _, err = kv.Get(types.SessionKey)
		require.NoError(t, err)
		assert.Equal(t, `{"email":"b@x.com"}`, value)

		require.NoError(t, kv.Delete(types.SessionKey))
		_, ok, err = kv.Get(types.SessionKey)
		require.NoError(t, err)
		assert.False(t, ok)

		// Deleting again is a no-op.
		assert.NoError(t, kv.Delete(types.SessionKey))
	})
}

func TestSchemaCoversStandardCollections(t *testing.T) {
	store := setupStore(t)

	db, err := store.handle()
	require.NoError(t, err)

	for _, name := range types.StandardCollectionNames {
		t.Run(name, func(t *testing.T) {
			var count int
			err := db.QueryRow("SELECT COUNT(*) FROM " + name).Scan(&count)
			assert.NoError(t, err)
		})
	}
}

func TestDataPersistsAcrossReopen(t *testing.T) {
	dataDir := t.TempDir()
	config := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}

	store := NewStore()
	require.NoError(t, store.Open(config))
	_, err := store.Users().Add(types.User{Email: "a@x.com", Name: "Alice", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, store.Cart().Put(types.CartLine{BookID: 2, Title: "To Kill a Mockingbird", Price: 14.99, Quantity: 1}))
	require.NoError(t, store.Close())

	store = NewStore()
	require.NoError(t, store.Open(config))
	defer store.Close()

	user, err := store.Users().Get("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	line, err := store.Cart().Get(2)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
}
