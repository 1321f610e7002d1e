package types

import "errors"

// Store lifecycle errors.
var (
	ErrStorageUnavailable = errors.New("storage is unavailable")
	ErrStoreClosed        = errors.New("store is closed")
	ErrAlreadyOpen        = errors.New("store is already open")
)

// Record operation errors.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// Service errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrValidation         = errors.New("validation failed")
	ErrNotLoggedIn        = errors.New("not logged in")
)
