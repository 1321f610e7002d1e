package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/bookshop/internal/auth"
	"github.com/mesh-intelligence/bookshop/internal/cart"
	"github.com/mesh-intelligence/bookshop/internal/sqlite"
	"github.com/mesh-intelligence/bookshop/pkg/types"
)

type fixture struct {
	store    *sqlite.Store
	cart     *cart.Service
	auth     *auth.Service
	checkout *Service
}

func setup(t *testing.T) fixture {
	t.Helper()

	store := sqlite.NewStore()
	err := store.Open(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	cartSvc := cart.NewService(store)
	authSvc := auth.NewService(store)
	return fixture{
		store:    store,
		cart:     cartSvc,
		auth:     authSvc,
		checkout: NewService(store, cartSvc, authSvc),
	}
}

func validShipping() types.ShippingInfo {
	return types.ShippingInfo{
		FullName:   "Alice Smith",
		Email:      "a@x.com",
		Address:    "1 Main St",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "USA",
	}
}

func validPayment() types.PaymentInfo {
	return types.PaymentInfo{
		CardName:   "Alice Smith",
		CardNumber: "4111 1111 1111 1111",
		ExpiryDate: "12/27",
		CVV:        "123",
	}
}

func TestPlaceOrder(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.cart.AddItem(1)) // 12.99
	require.NoError(t, f.cart.AddItem(1))
	require.NoError(t, f.cart.AddItem(3)) // 11.99

	f.checkout.now = func() time.Time {
		return time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	}

	order, err := f.checkout.PlaceOrder(validShipping(), validPayment())
	require.NoError(t, err)

	assert.NotEmpty(t, order.OrderID)
	assert.Empty(t, order.UserEmail) // anonymous checkout
	assert.Len(t, order.Items, 2)
	assert.InDelta(t, 37.97, order.Subtotal, 1e-9)
	assert.Equal(t, FlatShippingCost, order.ShippingCost)
	assert.InDelta(t, 42.97, order.Total, 1e-9)
	assert.Equal(t, types.OrderStatusProcessing, order.Status)
	assert.Equal(t, "2026-08-30T10:00:00Z", order.Date)

	// The cart is emptied by a successful checkout.
	lines, err := f.cart.Lines()
	require.NoError(t, err)
	assert.Empty(t, lines)

	// The order is retrievable as persisted.
	stored, err := f.checkout.Get(order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, order, stored)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	f := setup(t)

	_, err := f.checkout.PlaceOrder(validShipping(), validPayment())
	assert.ErrorIs(t, err, types.ErrEmptyCart)

	count, err := f.store.Orders().Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPlaceOrder_ValidationFailureLeavesCartIntact(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *types.ShippingInfo, p *types.PaymentInfo)
	}{
		{"missing shipping city", func(s *types.ShippingInfo, p *types.PaymentInfo) { s.City = "" }},
		{"short card number", func(s *types.ShippingInfo, p *types.PaymentInfo) { p.CardNumber = "1234" }},
		{"bad expiry month", func(s *types.ShippingInfo, p *types.PaymentInfo) { p.ExpiryDate = "13/27" }},
		{"bad cvv", func(s *types.ShippingInfo, p *types.PaymentInfo) { p.CVV = "12" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			require.NoError(t, f.cart.AddItem(1))

			shipping, payment := validShipping(), validPayment()
			tt.mutate(&shipping, &payment)

			_, err := f.checkout.PlaceOrder(shipping, payment)
			assert.ErrorIs(t, err, types.ErrValidation)

			count, err := f.store.Orders().Count()
			require.NoError(t, err)
			assert.Zero(t, count)

			lines, err := f.cart.Lines()
			require.NoError(t, err)
			assert.Len(t, lines, 1)
		})
	}
}

func TestPlaceOrder_CardNumberAcceptsGrouping(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.cart.AddItem(1))

	payment := validPayment()
	payment.CardNumber = "4111111111111111"

	_, err := f.checkout.PlaceOrder(validShipping(), payment)
	assert.NoError(t, err)
}

func TestPlaceOrder_OwnedBySessionUser(t *testing.T) {
	f := setup(t)
	_, err := f.auth.Register("Alice", "a@x.com", "secret1")
	require.NoError(t, err)
	_, err = f.auth.Login("a@x.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, f.cart.AddItem(2))
	order, err := f.checkout.PlaceOrder(validShipping(), validPayment())
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", order.UserEmail)
}

func TestOrdersFor(t *testing.T) {
	f := setup(t)
	_, err := f.auth.Register("Alice", "a@x.com", "secret1")
	require.NoError(t, err)
	_, err = f.auth.Login("a@x.com", "secret1")
	require.NoError(t, err)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		stamp := base.Add(time.Duration(i) * time.Hour)
		f.checkout.now = func() time.Time { return stamp }
		require.NoError(t, f.cart.AddItem(1))
		_, err := f.checkout.PlaceOrder(validShipping(), validPayment())
		require.NoError(t, err)
	}

	orders, err := f.checkout.OrdersFor("a@x.com")
	require.NoError(t, err)
	require.Len(t, orders, 3)

	// Newest first.
	assert.Equal(t, "2026-08-01T02:00:00Z", orders[0].Date)
	assert.Equal(t, "2026-08-01T00:00:00Z", orders[2].Date)

	// Another account sees nothing.
	orders, err = f.checkout.OrdersFor("b@x.com")
	require.NoError(t, err)
	assert.Empty(t, orders)
}
