package types

import (
	"fmt"
	"regexp"
	"strings"
)

// Order statuses.
const (
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
)

// ShippingInfo is the delivery address snapshot frozen into an order.
type ShippingInfo struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// PaymentInfo is the card snapshot frozen into an order. Validation is
// purely structural; no gateway integration exists.
type PaymentInfo struct {
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"` // MM/YY
	CVV        string `json:"cvv"`
}

// Order is an immutable checkout snapshot. Items, monetary fields, and
// the shipping/payment snapshots are frozen at placement time.
type Order struct {
	OrderID      string       `json:"orderId"` // UUID v7, generated at checkout.
	UserEmail    string       `json:"userId"`  // Owning user; empty for anonymous checkout.
	Items        []CartLine   `json:"items"`
	Shipping     ShippingInfo `json:"shipping"`
	Payment      PaymentInfo  `json:"payment"`
	Subtotal     float64      `json:"subtotal"`
	ShippingCost float64      `json:"shippingCost"`
	Total        float64      `json:"total"`
	Status       string       `json:"status"`
	Date         string       `json:"date"` // ISO-8601 timestamp.
}

// Card format patterns. The card number is checked after stripping
// spaces, matching how the number is entered in grouped form.
var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// Validate checks that all shipping fields are present.
// Returns ErrValidation wrapped with the offending field name.
func (s ShippingInfo) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"fullName", s.FullName},
		{"email", s.Email},
		{"address", s.Address},
		{"city", s.City},
		{"postalCode", s.PostalCode},
		{"country", s.Country},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("shipping %s is required: %w", f.name, ErrValidation)
		}
	}
	return nil
}

// Validate checks card field presence and formats: a 16-digit card
// number (spaces ignored), an MM/YY expiry, and a 3-4 digit CVV.
func (p PaymentInfo) Validate() error {
	if strings.TrimSpace(p.CardName) == "" {
		return fmt.Errorf("payment cardName is required: %w", ErrValidation)
	}
	number := strings.ReplaceAll(p.CardNumber, " ", "")
	if !cardNumberPattern.MatchString(number) {
		return fmt.Errorf("card number must be 16 digits: %w", ErrValidation)
	}
	if !expiryPattern.MatchString(p.ExpiryDate) {
		return fmt.Errorf("expiry date must be MM/YY: %w", ErrValidation)
	}
	if !cvvPattern.MatchString(p.CVV) {
		return fmt.Errorf("CVV must be 3 or 4 digits: %w", ErrValidation)
	}
	return nil
}
