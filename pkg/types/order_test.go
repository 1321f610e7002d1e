package types

import (
	"errors"
	"testing"
)

func validShipping() ShippingInfo {
	return ShippingInfo{
		FullName:   "Alice Smith",
		Email:      "a@x.com",
		Address:    "1 Main St",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "USA",
	}
}

func TestShippingInfoValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShippingInfo)
		valid  bool
	}{
		{"all fields present", func(s *ShippingInfo) {}, true},
		{"missing full name", func(s *ShippingInfo) { s.FullName = "" }, false},
		{"missing email", func(s *ShippingInfo) { s.Email = "" }, false},
		{"missing address", func(s *ShippingInfo) { s.Address = "" }, false},
		{"missing city", func(s *ShippingInfo) { s.City = "" }, false},
		{"missing postal code", func(s *ShippingInfo) { s.PostalCode = "" }, false},
		{"missing country", func(s *ShippingInfo) { s.Country = "" }, false},
		{"whitespace-only field", func(s *ShippingInfo) { s.City = "   " }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shipping := validShipping()
			tt.mutate(&shipping)

			err := shipping.Validate()
			if tt.valid && err != nil {
				t.Fatalf("expected nil error, got %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestPaymentInfoValidate(t *testing.T) {
	tests := []struct {
		name    string
		payment PaymentInfo
		valid   bool
	}{
		{
			name:    "valid ungrouped number",
			payment: PaymentInfo{CardName: "Alice", CardNumber: "4111111111111111", ExpiryDate: "12/27", CVV: "123"},
			valid:   true,
		},
		{
			name:    "valid grouped number",
			payment: PaymentInfo{CardName: "Alice", CardNumber: "4111 1111 1111 1111", ExpiryDate: "01/30", CVV: "1234"},
			valid:   true,
		},
		{
			name:    "missing card name",
			payment: PaymentInfo{CardName: " ", CardNumber: "4111111111111111", ExpiryDate: "12/27", CVV: "123"},
		},
		{
			name:    "short card number",
			payment: PaymentInfo{CardName: "Alice", CardNumber: "41111111", ExpiryDate: "12/27", CVV: "123"},
		},
		{
			name:    "card number with letters",
			payment: PaymentInfo{CardName: "Alice", CardNumber: "4111x11111111111", ExpiryDate: "12/27", CVV: "123"},
		},
		{
			name:    "expiry month zero",
			payment: PaymentInfo{CardName: "Alice", CardNumber: "4111111111111111", ExpiryDate: "00/27", CVV: "123"},
		},
		{
			name:    "expiry month thirteen",
			payment: PaymentInfo{CardName: "Alice", CardNumber: "4111111111111111", ExpiryDate: "13/27", CVV: "123"},
		},
		{
			name:    "expiry with four-digit year",
			payment: PaymentInfo{CardName: "Alice", CardNumber: "4111111111111111", ExpiryDate: "12/2027", CVV: "123"},
		},
		{
			name:    "cvv too short",
			payment: PaymentInfo{CardName: "Alice", CardNumber: "4111111111111111", ExpiryDate: "12/27", CVV: "12"},
		},
		{
			name:    "cvv too long",
			payment: PaymentInfo{CardName: "Alice", CardNumber: "4111111111111111", ExpiryDate: "12/27", CVV: "12345"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payment.Validate()
			if tt.valid && err != nil {
				t.Fatalf("expected nil error, got %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}
