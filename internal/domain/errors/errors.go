package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrEmptyOrder         = errors.New("order has no items")
	ErrInvalidOrderStatus = errors.New("invalid order status transition")
	ErrInvalidFilename    = errors.New("invalid filename")
	ErrPaymentUnverified  = errors.New("payment not verified")
)
