// This file implements the orders collection accessor. Order line items
// and the shipping/payment snapshots are stored as JSON columns; they
// are frozen at checkout and never queried field-by-field.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

// Orders provides typed access to placed orders.
type Orders struct {
	store *Store
}

const orderColumns = "order_id, user_email, items, shipping, payment, subtotal, shipping_cost, total, status, created_at"

// Add inserts a new order, generating a UUID when the id is empty.
// Returns ErrDuplicateKey if the order id already exists.
func (o *Orders) Add(order types.Order) (types.Order, error) {
	db, err := o.store.handle()
	if err != nil {
		return types.Order{}, err
	}

	if order.OrderID == "" {
		order.OrderID = generateUUID()
	}

	var exists int
	err = db.QueryRow("SELECT 1 FROM "+types.CollectionOrders+" WHERE order_id = ?", order.OrderID).Scan(&exists)
	if err == nil {
		return types.Order{}, types.ErrDuplicateKey
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return types.Order{}, fmt.Errorf("checking order existence: %w", err)
	}

	items, err := json.Marshal(order.Items)
	if err != nil {
		return types.Order{}, fmt.Errorf("marshaling order items: %w", err)
	}
	shipping, err := json.Marshal(order.Shipping)
	if err != nil {
		return types.Order{}, fmt.Errorf("marshaling shipping info: %w", err)
	}
	payment, err := json.Marshal(order.Payment)
	if err != nil {
		return types.Order{}, fmt.Errorf("marshaling payment info: %w", err)
	}

	_, err = db.Exec(
		"INSERT INTO "+types.CollectionOrders+` (order_id, user_email, items, shipping, payment, subtotal, shipping_cost, total, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.OrderID, order.UserEmail, string(items), string(shipping), string(payment),
		order.Subtotal, order.ShippingCost, order.Total, order.Status, order.Date,
	)
	if err != nil {
		return types.Order{}, fmt.Errorf("inserting order: %w", err)
	}
	return order, nil
}

// Get retrieves an order by id. Returns ErrNotFound on a miss.
func (o *Orders) Get(orderID string) (types.Order, error) {
	db, err := o.store.handle()
	if err != nil {
		return types.Order{}, err
	}

	row := db.QueryRow("SELECT "+orderColumns+" FROM "+types.CollectionOrders+" WHERE order_id = ?", orderID)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Order{}, types.ErrNotFound
		}
		return types.Order{}, fmt.Errorf("getting order %s: %w", orderID, err)
	}
	return order, nil
}

// ForUser returns the orders owned by the given email, newest first.
func (o *Orders) ForUser(email string) ([]types.Order, error) {
	db, err := o.store.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT "+orderColumns+" FROM "+types.CollectionOrders+" WHERE user_email = ? ORDER BY created_at DESC",
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("querying orders for %s: %w", email, err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

// All returns every order, newest first.
func (o *Orders) All() ([]types.Order, error) {
	db, err := o.store.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT " + orderColumns + " FROM " + types.CollectionOrders + " ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

// Count returns the number of placed orders.
func (o *Orders) Count() (int, error) {
	db, err := o.store.handle()
	if err != nil {
		return 0, err
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + types.CollectionOrders).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting orders: %w", err)
	}
	return count, nil
}

func collectOrders(rows *sql.Rows) ([]types.Order, error) {
	orders := []types.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}
	return orders, nil
}

func scanOrder(row rowScanner) (types.Order, error) {
	var o types.Order
	var items, shipping, payment string
	err := row.Scan(&o.OrderID, &o.UserEmail, &items, &shipping, &payment,
		&o.Subtotal, &o.ShippingCost, &o.Total, &o.Status, &o.Date)
	if err != nil {
		return types.Order{}, err
	}
	if err := json.Unmarshal([]byte(items), &o.Items); err != nil {
		return types.Order{}, fmt.Errorf("parsing order items: %w", err)
	}
	if err := json.Unmarshal([]byte(shipping), &o.Shipping); err != nil {
		return types.Order{}, fmt.Errorf("parsing shipping info: %w", err)
	}
	if err := json.Unmarshal([]byte(payment), &o.Payment); err != nil {
		return types.Order{}, fmt.Errorf("parsing payment info: %w", err)
	}
	return o, nil
}
