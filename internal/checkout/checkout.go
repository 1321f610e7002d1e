// Package checkout turns the cart into an immutable order: validation,
// totals, persistence, and the cart clear that follows.
package checkout

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/bookshop/internal/auth"
	"github.com/mesh-intelligence/bookshop/internal/cart"
	"github.com/mesh-intelligence/bookshop/internal/sqlite"
	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// FlatShippingCost is the flat per-order shipping charge.
const FlatShippingCost = 5.00

// Service places orders and lists order history.
type Service struct {
	orders *sqlite.Orders
	cart   *cart.Service
	auth   *auth.Service

	// now is swappable for deterministic order timestamps in tests.
	now func() time.Time
}

// NewService creates a checkout service over the given store and the
// cart and auth services it consumes.
func NewService(store *sqlite.Store, cartSvc *cart.Service, authSvc *auth.Service) *Service {
	return &Service{
		orders: store.Orders(),
		cart:   cartSvc,
		auth:   authSvc,
		now:    time.Now,
	}
}

// PlaceOrder validates the checkout input against the current cart,
// persists the order, and clears the cart. An empty cart returns
// ErrEmptyCart before any validation runs. The order is owned by the
// session user's email, or left anonymous when no session exists.
// Nothing is persisted and the cart is untouched on any failure.
func (s *Service) PlaceOrder(shipping types.ShippingInfo, payment types.PaymentInfo) (types.Order, error) {
	lines, err := s.cart.Lines()
	if err != nil {
		return types.Order{}, err
	}
	if len(lines) == 0 {
		return types.Order{}, types.ErrEmptyCart
	}

	if err := shipping.Validate(); err != nil {
		return types.Order{}, err
	}
	if err := payment.Validate(); err != nil {
		return types.Order{}, err
	}

	subtotal := 0.0
	for _, l := range lines {
		subtotal += l.LineTotal()
	}

	order := types.Order{
		Items:        lines,
		Shipping:     shipping,
		Payment:      payment,
		Subtotal:     subtotal,
		ShippingCost: FlatShippingCost,
		Total:        subtotal + FlatShippingCost,
		Status:       types.OrderStatusProcessing,
		Date:         s.now().UTC().Format(time.RFC3339),
	}
	if user, ok, err := s.auth.CurrentUser(); err != nil {
		return types.Order{}, err
	} else if ok {
		order.UserEmail = user.Email
	}

	stored, err := s.orders.Add(order)
	if err != nil {
		return types.Order{}, fmt.Errorf("placing order: %w", err)
	}

	if err := s.cart.Clear(); err != nil {
		return types.Order{}, fmt.Errorf("clearing cart after order %s: %w", stored.OrderID, err)
	}
	return stored, nil
}

// OrdersFor returns the order history for an email, newest first.
func (s *Service) OrdersFor(email string) ([]types.Order, error) {
	return s.orders.ForUser(email)
}

// Get retrieves a single order by id.
func (s *Service) Get(orderID string) (types.Order, error) {
	return s.orders.Get(orderID)
}
