package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/bookshop/internal/sqlite"
	"github.com/mesh-intelligence/bookshop/pkg/types"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	store := sqlite.NewStore()
	err := store.Open(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return NewService(store)
}

func TestAddItem(t *testing.T) {
	svc := setupService(t)

	t.Run("new book creates a line with quantity 1", func(t *testing.T) {
		require.NoError(t, svc.AddItem(1))

		lines, err := svc.Lines()
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].BookID)
		assert.Equal(t, "The Great Gatsby", lines[0].Title)
		assert.Equal(t, 12.99, lines[0].Price)
		assert.Equal(t, 1, lines[0].Quantity)
	})

	t.Run("same book increments quantity, no second line", func(t *testing.T) {
		require.NoError(t, svc.AddItem(1))

		lines, err := svc.Lines()
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("unknown book is rejected", func(t *testing.T) {
		err := svc.AddItem(999)
		assert.ErrorIs(t, err, types.ErrNotFound)

		count, err := svc.TotalCount()
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestSetQuantity(t *testing.T) {
	svc := setupService(t)
	require.NoError(t, svc.AddItem(1))

	t.Run("sets an explicit quantity", func(t *testing.T) {
		require.NoError(t, svc.SetQuantity(1, 5))

		count, err := svc.TotalCount()
		require.NoError(t, err)
		assert.Equal(t, 5, count)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		require.NoError(t, svc.SetQuantity(1, 0))

		lines, err := svc.Lines()
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("negative removes the line too", func(t *testing.T) {
		require.NoError(t, svc.AddItem(2))
		require.NoError(t, svc.SetQuantity(2, -3))

		lines, err := svc.Lines()
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("missing line is an error", func(t *testing.T) {
		err := svc.SetQuantity(3, 2)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestRemoveItem(t *testing.T) {
	svc := setupService(t)
	require.NoError(t, svc.AddItem(1))
	require.NoError(t, svc.AddItem(1))
	require.NoError(t, svc.AddItem(2))

	t.Run("removes the whole line regardless of quantity", func(t *testing.T) {
		require.NoError(t, svc.RemoveItem(1))

		lines, err := svc.Lines()
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].BookID)
	})

	t.Run("removing an absent book is a no-op", func(t *testing.T) {
		require.NoError(t, svc.RemoveItem(999))

		count, err := svc.TotalCount()
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestClear(t *testing.T) {
	svc := setupService(t)
	require.NoError(t, svc.AddItem(1))
	require.NoError(t, svc.AddItem(2))

	require.NoError(t, svc.Clear())

	lines, err := svc.Lines()
	require.NoError(t, err)
	assert.Empty(t, lines)

	subtotal, err := svc.Subtotal()
	require.NoError(t, err)
	assert.Zero(t, subtotal)
}

func TestTotals(t *testing.T) {
	svc := setupService(t)

	// Two copies of book 1 (12.99) and one of book 3 (11.99).
	require.NoError(t, svc.AddItem(1))
	require.NoError(t, svc.AddItem(1))
	require.NoError(t, svc.AddItem(3))

	count, err := svc.TotalCount()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	subtotal, err := svc.Subtotal()
	require.NoError(t, err)
	assert.InDelta(t, 2*12.99+11.99, subtotal, 1e-9)
}

func TestSubscribe(t *testing.T) {
	svc := setupService(t)

	var counts []int
	svc.Subscribe(func(n int) { counts = append(counts, n) })

	require.NoError(t, svc.AddItem(1))
	require.NoError(t, svc.AddItem(1))
	require.NoError(t, svc.SetQuantity(1, 4))
	require.NoError(t, svc.RemoveItem(1))
	require.NoError(t, svc.AddItem(2))
	require.NoError(t, svc.Clear())

	// Every successful mutation notified, in order, with the new total.
	assert.Equal(t, []int{1, 2, 4, 0, 1, 0}, counts)
}

func TestCartPersistsAcrossReopen(t *testing.T) {
	dataDir := t.TempDir()
	config := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}

	store := sqlite.NewStore()
	require.NoError(t, store.Open(config))
	svc := NewService(store)
	require.NoError(t, svc.AddItem(1))
	require.NoError(t, svc.AddItem(1))
	require.NoError(t, store.Close())

	store = sqlite.NewStore()
	require.NoError(t, store.Open(config))
	defer store.Close()

	svc = NewService(store)
	lines, err := svc.Lines()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}
